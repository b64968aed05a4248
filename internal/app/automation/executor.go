package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/app/services"
	"github.com/fr0stylo/enms/internal/observability"
)

// Executor runs services against their target devices and walks workflow graphs.
type Executor struct {
	jobs   ports.JobReader
	driver ports.DeviceDriver
	client *http.Client
	logger *slog.Logger
	wait   func(ctx context.Context, d time.Duration) error
}

var _ services.JobExecutor = (*Executor)(nil)

// NewExecutor constructs an executor. A nil driver fails every device-facing
// service and a nil client uses http.DefaultClient.
func NewExecutor(jobs ports.JobReader, driver ports.DeviceDriver, client *http.Client, logger *slog.Logger) *Executor {
	if driver == nil {
		driver = UnavailableDriver{}
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		jobs:   jobs,
		driver: driver,
		client: client,
		logger: logger,
		wait:   sleep,
	}
}

// Execute runs one job to completion. Failures are reported in the result,
// never returned.
func (e *Executor) Execute(ctx context.Context, job domain.Job) domain.JobResult {
	return e.execute(ctx, job, nil)
}

func (e *Executor) execute(ctx context.Context, job domain.Job, inherited []string) domain.JobResult {
	ctx, span := observability.StartJobSpan(ctx, job.Name, job.Type, "")
	defer span.End()

	targets := job.Devices
	if len(targets) == 0 {
		targets = inherited
	}

	var result domain.JobResult
	if job.IsWorkflow() {
		workflow, err := e.jobs.GetWorkflow(ctx, job.Name)
		if err != nil {
			result = failed(fmt.Errorf("load workflow: %w", err))
		} else {
			result = e.runWorkflow(ctx, workflow, targets)
		}
	} else {
		result = e.runService(ctx, job, targets)
	}
	if !result.Success && result.Error != "" {
		span.RecordError(errors.New(result.Error))
	}

	if job.WaitingTime > 0 {
		if err := e.wait(ctx, time.Duration(job.WaitingTime)*time.Second); err != nil {
			result.Success = false
			result.Error = err.Error()
		}
	}
	return result
}

func (e *Executor) runService(ctx context.Context, job domain.Job, targets []string) domain.JobResult {
	run, ok := runners[job.Type]
	if !ok {
		return failed(fmt.Errorf("no runner for service type %q", job.Type))
	}

	if len(targets) == 0 {
		output, err := run(ctx, e, job, domain.Device{})
		if err != nil {
			e.logger.WarnContext(ctx, "service failed", "job", job.Name, "type", job.Type, "error", err)
			return domain.JobResult{Output: output, Error: err.Error()}
		}
		return domain.JobResult{Success: true, Output: output}
	}

	result := domain.JobResult{Success: true, Devices: make(map[string]domain.JobResult, len(targets))}
	for _, name := range targets {
		result.Devices[name] = e.runOnDevice(ctx, run, job, name)
		if !result.Devices[name].Success {
			result.Success = false
		}
	}
	return result
}

func (e *Executor) runOnDevice(ctx context.Context, run runner, job domain.Job, name string) domain.JobResult {
	ctx, span := observability.StartJobSpan(ctx, job.Name, job.Type, name)
	defer span.End()

	device, err := e.jobs.GetDevice(ctx, name)
	if err != nil {
		span.RecordError(err)
		return failed(fmt.Errorf("load device: %w", err))
	}
	output, err := run(ctx, e, job, device)
	if err != nil {
		span.RecordError(err)
		e.logger.WarnContext(ctx, "service failed on device", "job", job.Name, "device", name, "error", err)
		return domain.JobResult{Output: output, Error: err.Error()}
	}
	return domain.JobResult{Success: true, Output: output}
}

func failed(err error) domain.JobResult {
	return domain.JobResult{Error: err.Error()}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
