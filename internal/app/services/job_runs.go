package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/observability"
)

// JobExecutor runs one job to completion.
type JobExecutor interface {
	Execute(ctx context.Context, job domain.Job) domain.JobResult
}

// JobRunService starts job executions and records them as runs.
type JobRunService struct {
	jobs     ports.JobReader
	runs     ports.RunStore
	executor JobExecutor
	events   ports.RunEventPublisher
	timeout  time.Duration
	logger   *slog.Logger
	now      func() time.Time
	inflight sync.WaitGroup
}

// NewJobRunService constructs a run service. events may be nil.
func NewJobRunService(jobs ports.JobReader, runs ports.RunStore, executor JobExecutor, events ports.RunEventPublisher, timeout time.Duration, logger *slog.Logger) *JobRunService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobRunService{
		jobs:     jobs,
		runs:     runs,
		executor: executor,
		events:   events,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes the named job and waits for its outcome.
func (s *JobRunService) Run(ctx context.Context, name string) (domain.JobRun, error) {
	job, run, err := s.start(ctx, name)
	if err != nil {
		return domain.JobRun{}, err
	}
	return s.finish(ctx, job, run)
}

// RunAsync records the run and executes it in the background. The returned
// run has no outcome yet.
func (s *JobRunService) RunAsync(ctx context.Context, name string) (domain.JobRun, error) {
	job, run, err := s.start(ctx, name)
	if err != nil {
		return domain.JobRun{}, err
	}
	detached := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if _, err := s.finish(detached, job, run); err != nil {
			s.logger.ErrorContext(detached, "async job run failed", "job", job.Name, "run_id", run.ID, "error", err)
		}
	}()
	return run, nil
}

// Wait blocks until background runs started by RunAsync have recorded their
// outcome, or ctx is done.
func (s *JobRunService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background job runs: %w", ctx.Err())
	}
}

// GetRun returns a stored run of the named job.
func (s *JobRunService) GetRun(ctx context.Context, name, id string) (domain.JobRun, error) {
	run, err := s.runs.GetJobRun(ctx, id)
	if err != nil {
		return domain.JobRun{}, err
	}
	if run.Job != name {
		return domain.JobRun{}, fmt.Errorf("%w: run %s of %q", domain.ErrObjectNotFound, id, name)
	}
	return run, nil
}

func (s *JobRunService) start(ctx context.Context, name string) (domain.Job, domain.JobRun, error) {
	job, err := s.jobs.GetJob(ctx, name)
	if err != nil {
		return domain.Job{}, domain.JobRun{}, err
	}
	run := domain.JobRun{ID: uuid.NewString(), Job: job.Name, StartedAt: s.now().UTC()}
	if err := s.runs.CreateJobRun(ctx, run); err != nil {
		return domain.Job{}, domain.JobRun{}, fmt.Errorf("record run of %q: %w", name, err)
	}
	s.logger.Info("job run started", "job", job.Name, "type", job.Type, "run_id", run.ID)
	if s.events != nil {
		if err := s.events.RunStarted(ctx, job, run); err != nil {
			s.logger.Warn("publish run started failed", "run_id", run.ID, "error", err)
		}
	}
	return job, run, nil
}

func (s *JobRunService) finish(ctx context.Context, job domain.Job, run domain.JobRun) (domain.JobRun, error) {
	ctx = observability.WithJobRun(ctx, job.Name, run.ID)
	execCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	run.Results = s.executor.Execute(execCtx, job)
	run.Success = run.Results.Success
	run.EndedAt = s.now().UTC()

	if err := s.runs.FinishJobRun(ctx, run); err != nil {
		return domain.JobRun{}, fmt.Errorf("record outcome of %q: %w", job.Name, err)
	}
	elapsed := run.EndedAt.Sub(run.StartedAt)
	observability.RecordJobRun(ctx, job.Type, run.Success, elapsed)
	s.logger.InfoContext(ctx, "job run finished", "job", job.Name, "success", run.Success, "duration", elapsed)
	if s.events != nil {
		if err := s.events.RunFinished(ctx, job, run); err != nil {
			s.logger.Warn("publish run finished failed", "run_id", run.ID, "error", err)
		}
	}
	return run, nil
}
