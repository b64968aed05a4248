package automation

import (
	"context"
	"errors"
	"fmt"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
)

// ErrNoDriver is returned by UnavailableDriver for every device operation.
var ErrNoDriver = errors.New("no device driver configured")

// UnavailableDriver is the default DeviceDriver. It fails every operation.
type UnavailableDriver struct{}

var _ ports.DeviceDriver = UnavailableDriver{}

func (UnavailableDriver) SendConfig(_ context.Context, device domain.Device, job domain.Job, _ string) (string, error) {
	return "", unavailable(device, job)
}

func (UnavailableDriver) SendCommand(_ context.Context, device domain.Device, job domain.Job, _ string) (string, error) {
	return "", unavailable(device, job)
}

func (UnavailableDriver) Rollback(_ context.Context, device domain.Device, job domain.Job) (string, error) {
	return "", unavailable(device, job)
}

func (UnavailableDriver) Getters(_ context.Context, device domain.Device, job domain.Job, _ []string) (map[string]any, error) {
	return nil, unavailable(device, job)
}

func unavailable(device domain.Device, job domain.Job) error {
	if device.Name == "" {
		return fmt.Errorf("%w: %s", ErrNoDriver, job.Type)
	}
	return fmt.Errorf("%w: %s on %s", ErrNoDriver, job.Type, device.Name)
}
