// Package cleanup enforces the retention policy for finished jobs.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/services"
)

// Service periodically purges terminal jobs past the retention window. Event
// log rows are removed with their job through the foreign key cascade.
//
// The purge is idempotent and safe to run from multiple pods.
type Service struct {
	config     *config.RetentionConfig
	jobService *services.JobService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, jobService *services.JobService) *Service {
	return &Service{
		config:     cfg,
		jobService: jobService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purgeFinishedJobs(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeFinishedJobs(ctx)
		}
	}
}

func (s *Service) purgeFinishedJobs(_ context.Context) {
	count, err := s.jobService.PurgeFinished(context.Background(), s.config.JobRetentionDays)
	if err != nil {
		slog.Error("Retention: job purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged finished jobs", "count", count)
	}
}
