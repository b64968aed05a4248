package ports

import (
	"context"
	"errors"

	"github.com/fr0stylo/enms/internal/app/domain"
)

// ErrIntegrityViolation marks a write rejected by a uniqueness or foreign key constraint.
var ErrIntegrityViolation = errors.New("integrity constraint violated")

// UserReader loads users for authentication.
type UserReader interface {
	GetUser(ctx context.Context, name string) (domain.User, error)
}

// InventoryStore persists users, pools, the parameters singleton, devices and links.
// Lookups by name return domain.ErrObjectNotFound when nothing matches.
type InventoryStore interface {
	UserReader
	ListUsers(ctx context.Context) ([]domain.User, error)
	SaveUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, name string) error

	GetPool(ctx context.Context, name string) (domain.Pool, error)
	ListPools(ctx context.Context) ([]domain.Pool, error)
	SavePool(ctx context.Context, pool domain.Pool) (domain.Pool, error)
	DeletePool(ctx context.Context, name string) error

	CreateParameters(ctx context.Context, params domain.Parameters) error
	GetParameters(ctx context.Context) (domain.Parameters, error)

	GetDevice(ctx context.Context, name string) (domain.Device, error)
	ListDevices(ctx context.Context) ([]domain.Device, error)
	SaveDevice(ctx context.Context, device domain.Device) (domain.Device, error)
	DeleteDevice(ctx context.Context, name string) error

	GetLink(ctx context.Context, name string) (domain.Link, error)
	ListLinks(ctx context.Context) ([]domain.Link, error)
	SaveLink(ctx context.Context, link domain.Link) (domain.Link, error)
	DeleteLink(ctx context.Context, name string) error
}

// JobReader loads jobs and workflow graphs.
type JobReader interface {
	GetJob(ctx context.Context, name string) (domain.Job, error)
	GetWorkflow(ctx context.Context, name string) (domain.Workflow, error)
	GetDevice(ctx context.Context, name string) (domain.Device, error)
}

// AutomationStore persists services and workflows.
type AutomationStore interface {
	JobReader
	ListServices(ctx context.Context) ([]domain.Job, error)
	ListWorkflows(ctx context.Context) ([]domain.Workflow, error)
	SaveJob(ctx context.Context, job domain.Job) (domain.Job, error)
	SaveWorkflow(ctx context.Context, workflow domain.Workflow) (domain.Workflow, error)
	DeleteJob(ctx context.Context, name string) error
}

// RunStore records job executions.
type RunStore interface {
	CreateJobRun(ctx context.Context, run domain.JobRun) error
	FinishJobRun(ctx context.Context, run domain.JobRun) error
	GetJobRun(ctx context.Context, id string) (domain.JobRun, error)
	ListJobRuns(ctx context.Context, job string, limit int) ([]domain.JobRun, error)
}

// Store is the aggregate storage contract used by the factory, seeding and the REST layer.
type Store interface {
	InventoryStore
	AutomationStore
	RunStore
	Count(ctx context.Context, kind domain.Kind) (int64, error)
	// WithTx runs fn against a store bound to one transaction. A nested call
	// joins the enclosing transaction.
	WithTx(ctx context.Context, fn func(Store) error) error
}
