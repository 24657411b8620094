package config

import "time"

// RetentionConfig controls the background purge of finished jobs and their
// event logs.
type RetentionConfig struct {
	// JobRetentionDays is how long terminal jobs are kept.
	JobRetentionDays int `yaml:"job_retention_days"`

	// CleanupInterval is how often the purge runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  6 * time.Hour,
	}
}
