package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
)

// Factory creates, updates and reads objects of every kind by name.
type Factory struct {
	store ports.Store
}

// NewFactory constructs a factory over the aggregate store.
func NewFactory(store ports.Store) *Factory {
	return &Factory{store: store}
}

// Create decodes properties onto the object named properties["name"], or onto
// a new object when none exists, and persists it.
func (f *Factory) Create(ctx context.Context, kind domain.Kind, properties map[string]any) (domain.Object, error) {
	return f.save(ctx, kind, properties, false)
}

// Update is Create restricted to objects that already exist.
func (f *Factory) Update(ctx context.Context, kind domain.Kind, properties map[string]any) (domain.Object, error) {
	return f.save(ctx, kind, properties, true)
}

// Fetch returns one object by name.
func (f *Factory) Fetch(ctx context.Context, kind domain.Kind, name string) (domain.Object, error) {
	switch kind {
	case domain.KindDevice:
		return wrapObject(f.store.GetDevice(ctx, name))
	case domain.KindLink:
		return wrapObject(f.store.GetLink(ctx, name))
	case domain.KindPool:
		return wrapObject(f.store.GetPool(ctx, name))
	case domain.KindUser:
		return wrapObject(f.store.GetUser(ctx, name))
	case domain.KindService:
		return wrapObject(f.store.GetJob(ctx, name))
	case domain.KindWorkflow:
		return wrapObject(f.store.GetWorkflow(ctx, name))
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, kind)
	}
}

// FetchAll returns every object of kind.
func (f *Factory) FetchAll(ctx context.Context, kind domain.Kind) ([]domain.Object, error) {
	switch kind {
	case domain.KindDevice:
		return wrapObjects(f.store.ListDevices(ctx))
	case domain.KindLink:
		return wrapObjects(f.store.ListLinks(ctx))
	case domain.KindPool:
		return wrapObjects(f.store.ListPools(ctx))
	case domain.KindUser:
		return wrapObjects(f.store.ListUsers(ctx))
	case domain.KindService:
		return wrapObjects(f.store.ListServices(ctx))
	case domain.KindWorkflow:
		return wrapObjects(f.store.ListWorkflows(ctx))
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, kind)
	}
}

// Query returns every object of kind, restricted to the members of pool when
// pool is set. Pools only apply to devices and links.
func (f *Factory) Query(ctx context.Context, kind domain.Kind, pool string) ([]domain.Object, error) {
	objects, err := f.FetchAll(ctx, kind)
	if err != nil || pool == "" {
		return objects, err
	}
	if !kind.IsInventory() {
		return nil, fmt.Errorf("%w: pools do not apply to %s", domain.ErrUnknownObjectType, kind)
	}
	filter, err := f.store.GetPool(ctx, pool)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Object, 0, len(objects))
	for _, object := range objects {
		var match bool
		switch typed := object.(type) {
		case domain.Device:
			match, err = filter.MatchDevice(typed)
		case domain.Link:
			match, err = filter.MatchLink(typed)
		}
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", pool, err)
		}
		if match {
			out = append(out, object)
		}
	}
	return out, nil
}

// Delete removes one object by name.
func (f *Factory) Delete(ctx context.Context, kind domain.Kind, name string) error {
	switch kind {
	case domain.KindDevice:
		return f.store.DeleteDevice(ctx, name)
	case domain.KindLink:
		return f.store.DeleteLink(ctx, name)
	case domain.KindPool:
		return f.store.DeletePool(ctx, name)
	case domain.KindUser:
		return f.store.DeleteUser(ctx, name)
	case domain.KindService, domain.KindWorkflow:
		return f.store.DeleteJob(ctx, name)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, kind)
	}
}

// Count returns the number of objects of kind.
func (f *Factory) Count(ctx context.Context, kind domain.Kind) (int64, error) {
	return f.store.Count(ctx, kind)
}

// SaveWorkflow validates and persists a workflow graph.
func (f *Factory) SaveWorkflow(ctx context.Context, workflow domain.Workflow) (domain.Workflow, error) {
	if err := workflow.Validate(); err != nil {
		return domain.Workflow{}, err
	}
	return f.store.SaveWorkflow(ctx, workflow)
}

func (f *Factory) save(ctx context.Context, kind domain.Kind, properties map[string]any, mustExist bool) (domain.Object, error) {
	name := propertyName(properties)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	var saved domain.Object
	err := f.store.WithTx(ctx, func(store ports.Store) error {
		var err error
		switch kind {
		case domain.KindDevice:
			saved, err = saveDevice(ctx, store, name, properties, mustExist)
		case domain.KindLink:
			saved, err = saveLink(ctx, store, name, properties, mustExist)
		case domain.KindPool:
			saved, err = savePool(ctx, store, name, properties, mustExist)
		case domain.KindUser:
			saved, err = saveUser(ctx, store, name, properties, mustExist)
		case domain.KindService:
			saved, err = saveService(ctx, store, name, properties, mustExist)
		case domain.KindWorkflow:
			saved, err = saveWorkflow(ctx, store, name, properties, mustExist)
		default:
			err = fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, kind)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("save %s %q: %w", kind, name, err)
	}
	return saved, nil
}

func saveDevice(ctx context.Context, store ports.Store, name string, properties map[string]any, mustExist bool) (domain.Object, error) {
	device, err := store.GetDevice(ctx, name)
	if device, err = orNew(device, err, mustExist, domain.NewDevice); err != nil {
		return nil, err
	}
	if _, err := domain.Decode(properties, &device); err != nil {
		return nil, err
	}
	device.Name = name
	return wrapObject(store.SaveDevice(ctx, device))
}

func saveLink(ctx context.Context, store ports.Store, name string, properties map[string]any, mustExist bool) (domain.Object, error) {
	link, err := store.GetLink(ctx, name)
	if link, err = orNew(link, err, mustExist, func() domain.Link { return domain.Link{} }); err != nil {
		return nil, err
	}
	if _, err := domain.Decode(properties, &link); err != nil {
		return nil, err
	}
	link.Name = name
	return wrapObject(store.SaveLink(ctx, link))
}

func savePool(ctx context.Context, store ports.Store, name string, properties map[string]any, mustExist bool) (domain.Object, error) {
	pool, err := store.GetPool(ctx, name)
	if pool, err = orNew(pool, err, mustExist, func() domain.Pool { return domain.Pool{} }); err != nil {
		return nil, err
	}
	if _, err := domain.Decode(properties, &pool); err != nil {
		return nil, err
	}
	pool.Name = name
	return wrapObject(store.SavePool(ctx, pool))
}

func saveUser(ctx context.Context, store ports.Store, name string, properties map[string]any, mustExist bool) (domain.Object, error) {
	user, err := store.GetUser(ctx, name)
	if user, err = orNew(user, err, mustExist, func() domain.User { return domain.User{} }); err != nil {
		return nil, err
	}
	if _, err := domain.Decode(properties, &user); err != nil {
		return nil, err
	}
	user.Name = name
	return wrapObject(store.SaveUser(ctx, user))
}

func saveService(ctx context.Context, store ports.Store, name string, properties map[string]any, mustExist bool) (domain.Object, error) {
	job, err := store.GetJob(ctx, name)
	if job, err = orNew(job, err, mustExist, func() domain.Job { return domain.Job{} }); err != nil {
		return nil, err
	}
	if job.IsWorkflow() || properties["type"] == domain.TypeWorkflow {
		return saveWorkflow(ctx, store, name, properties, mustExist)
	}
	if err := decodeJob(properties, &job, nil); err != nil {
		return nil, err
	}
	job.Name = name
	if job.Type == "" {
		job.Type = domain.DefaultServiceType
	}
	return wrapObject(store.SaveJob(ctx, job))
}

func saveWorkflow(ctx context.Context, store ports.Store, name string, properties map[string]any, mustExist bool) (domain.Object, error) {
	workflow, err := store.GetWorkflow(ctx, name)
	if workflow, err = orNew(workflow, err, mustExist, func() domain.Workflow { return domain.NewWorkflow(name) }); err != nil {
		return nil, err
	}
	if err := decodeJob(properties, &workflow.Job, &workflow); err != nil {
		return nil, err
	}
	workflow.Name = name
	workflow.Type = domain.TypeWorkflow
	if err := workflow.Validate(); err != nil {
		return nil, err
	}
	return wrapObject(store.SaveWorkflow(ctx, workflow))
}

// decodeJob decodes the common job properties and keeps the rest as
// type-specific parameters. A "jobs" list extends the workflow members.
func decodeJob(properties map[string]any, job *domain.Job, workflow *domain.Workflow) error {
	unused, err := domain.Decode(properties, job)
	if err != nil {
		return err
	}
	if job.Parameters == nil {
		job.Parameters = map[string]any{}
	}
	for _, key := range unused {
		if workflow != nil && key == "jobs" {
			members, err := stringList(properties[key])
			if err != nil {
				return err
			}
			workflow.AddJobs(members...)
			continue
		}
		job.Parameters[key] = properties[key]
	}
	return nil
}

func orNew[T any](found T, err error, mustExist bool, fresh func() T) (T, error) {
	if err == nil {
		return found, nil
	}
	if errors.Is(err, domain.ErrObjectNotFound) && !mustExist {
		return fresh(), nil
	}
	var zero T
	return zero, err
}

func propertyName(properties map[string]any) string {
	switch value := properties["name"].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

func stringList(value any) ([]string, error) {
	switch typed := value.(type) {
	case []string:
		return typed, nil
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			text, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected job name, got %T", item)
			}
			out = append(out, text)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of job names, got %T", value)
	}
}

func wrapObject[T domain.Object](object T, err error) (domain.Object, error) {
	if err != nil {
		return nil, err
	}
	return object, nil
}

func wrapObjects[T domain.Object](objects []T, err error) ([]domain.Object, error) {
	if err != nil {
		return nil, err
	}
	out := make([]domain.Object, 0, len(objects))
	for _, object := range objects {
		out = append(out, object)
	}
	return out, nil
}
