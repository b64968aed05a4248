package ports

import (
	"context"

	"github.com/fr0stylo/enms/internal/app/domain"
)

// DeviceDriver performs device-facing operations for configuration, validation
// and getter services.
type DeviceDriver interface {
	SendConfig(ctx context.Context, device domain.Device, job domain.Job, config string) (string, error)
	SendCommand(ctx context.Context, device domain.Device, job domain.Job, command string) (string, error)
	Rollback(ctx context.Context, device domain.Device, job domain.Job) (string, error)
	Getters(ctx context.Context, device domain.Device, job domain.Job, getters []string) (map[string]any, error)
}

// RunEventPublisher announces job run lifecycle transitions.
type RunEventPublisher interface {
	RunStarted(ctx context.Context, job domain.Job, run domain.JobRun) error
	RunFinished(ctx context.Context, job domain.Job, run domain.JobRun) error
}
