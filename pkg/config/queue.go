package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, leased, and retried.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrently running jobs
	// across ALL replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseDuration is how long a claim holds before another worker may
	// reclaim the job.
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// LeaseRenewalInterval is how often a working handler extends its lease.
	// Must be well under LeaseDuration.
	LeaseRenewalInterval time.Duration `yaml:"lease_renewal_interval"`

	// ClaimRetries is how many claim races a worker loses before yielding.
	ClaimRetries int `yaml:"claim_retries"`

	// JobTimeout is the maximum wall-clock time for one job execution.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max wait for active jobs on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// RetryBackoffBase is the base delay for failed→queued retries; the
	// actual delay is RetryBackoffBase × attempt.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`

	// DefaultMaxAttempts bounds retries for jobs created without one.
	DefaultMaxAttempts int `yaml:"default_max_attempts"`

	// LeaseSweepInterval is how often the pool scans for expired leases on
	// jobs whose attempt budget is exhausted. All pods run the sweep
	// independently — the operations are idempotent.
	LeaseSweepInterval time.Duration `yaml:"lease_sweep_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseDuration:           2 * time.Minute,
		LeaseRenewalInterval:    30 * time.Second,
		ClaimRetries:            3,
		JobTimeout:              10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		RetryBackoffBase:        15 * time.Second,
		DefaultMaxAttempts:      3,
		LeaseSweepInterval:      1 * time.Minute,
	}
}
