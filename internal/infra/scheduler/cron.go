// Package scheduler runs background jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/application/usecase/caretask"
)

// sentJobRetentionDays is how long delivered notification jobs are kept
// before the nightly cleanup removes them.
const sentJobRetentionDays = 30

// Scheduler owns the cron runner for the nightly execution-generation sweep.
// The sweep walks every active recurring task and materializes any missing
// TODO executions, so occurrences appear without a caregiver asking for them.
// The same run also prunes old delivered notification jobs.
type Scheduler struct {
	cron          *cron.Cron
	taskRepo      adapter.CareTaskRepository
	executionRepo adapter.ExecutionRepository
	queueRepo     adapter.NotificationQueueRepository
}

// NewScheduler creates a scheduler instance. Jobs are registered by Start.
// queueRepo may be nil; the notification cleanup is then skipped.
func NewScheduler(
	taskRepo adapter.CareTaskRepository,
	executionRepo adapter.ExecutionRepository,
	queueRepo adapter.NotificationQueueRepository,
) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		taskRepo:      taskRepo,
		executionRepo: executionRepo,
		queueRepo:     queueRepo,
	}
}

// Start registers the sweep under the given cron spec and starts the runner.
func (s *Scheduler) Start(cronSpec string) error {
	_, err := s.cron.AddFunc(cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		s.RunSweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("Execution generation scheduler started", "cron_spec", cronSpec)
	return nil
}

// Stop stops the cron runner and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	slog.Info("Execution generation scheduler stopped")
}

// RunSweep materializes missing executions for every active recurring task.
// Failures on one task are logged and do not block the rest of the sweep.
func (s *Scheduler) RunSweep(ctx context.Context) {
	tasks, err := s.taskRepo.FindActiveRecurring(ctx)
	if err != nil {
		slog.Error("Execution sweep failed to list recurring tasks", "error", err)
		return
	}

	totalCreated := 0
	totalSkipped := 0
	failures := 0
	for _, task := range tasks {
		created, skipped, err := caretask.MaterializeExecutions(ctx, s.executionRepo, task)
		if err != nil {
			slog.Error("Execution sweep failed for task",
				"task_id", task.ID,
				"error", err,
			)
			failures++
			continue
		}
		totalCreated += len(created)
		totalSkipped += skipped
	}

	slog.Info("Execution sweep completed",
		"tasks", len(tasks),
		"created", totalCreated,
		"skipped", totalSkipped,
		"failures", failures,
	)

	s.cleanupSentJobs(ctx)
}

// cleanupSentJobs prunes delivered notification jobs past the retention window.
func (s *Scheduler) cleanupSentJobs(ctx context.Context) {
	if s.queueRepo == nil {
		return
	}

	removed, err := s.queueRepo.DeleteOldSentJobs(ctx, sentJobRetentionDays)
	if err != nil {
		slog.Error("Notification cleanup failed", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("Notification cleanup completed", "removed", removed)
	}
}
