package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	sqliteadapter "github.com/fr0stylo/enms/internal/adapters/sqlite"
	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/db"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "factory-test"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return NewFactory(sqliteadapter.NewStore(database))
}

func TestFactoryCreateUpsertsByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	factory := newTestFactory(t)

	first, err := factory.Create(ctx, domain.KindDevice, map[string]any{
		"name":      "Washington",
		"vendor":    "Arista",
		"longitude": "-77.03",
		"port":      "22",
	})
	if err != nil {
		t.Fatalf("create device: %v", err)
	}
	second, err := factory.Create(ctx, domain.KindDevice, map[string]any{
		"name":        "Washington",
		"description": "capital",
	})
	if err != nil {
		t.Fatalf("upsert device: %v", err)
	}

	count, err := factory.Count(ctx, domain.KindDevice)
	if err != nil {
		t.Fatalf("count devices: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 device, got %d", count)
	}

	device := second.(domain.Device)
	if device.ID != first.(domain.Device).ID {
		t.Fatalf("expected upsert to keep id %d, got %d", first.(domain.Device).ID, device.ID)
	}
	if device.Vendor != "Arista" || device.Description != "capital" {
		t.Fatalf("expected merged properties, got %+v", device)
	}
	if device.Longitude != -77.03 {
		t.Fatalf("expected longitude parsed from string, got %v", device.Longitude)
	}
}

func TestFactoryCreateRequiresName(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)
	_, err := factory.Create(context.Background(), domain.KindPool, map[string]any{"description": "nameless"})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if ClassifyError(err) != ErrorInvalidInput {
		t.Fatalf("expected invalid input classification, got %q", ClassifyError(err))
	}
}

func TestFactoryUpdateRequiresExistingObject(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)
	_, err := factory.Update(context.Background(), domain.KindService, map[string]any{"name": "missing"})
	if !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
	if ClassifyError(err) != ErrorNotFound {
		t.Fatalf("expected not found classification, got %q", ClassifyError(err))
	}
}

func TestFactoryServiceKeepsTypeSpecificParameters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	factory := newTestFactory(t)
	if _, err := factory.Create(ctx, domain.KindDevice, map[string]any{"name": "Washington"}); err != nil {
		t.Fatalf("create device: %v", err)
	}

	created, err := factory.Create(ctx, domain.KindService, map[string]any{
		"name":          "netmiko_check_vrf_test",
		"type":          domain.TypeNetmikoValidation,
		"waiting_time":  "0",
		"devices":       []any{"Washington"},
		"command":       "show vrf",
		"content_match": "test",
		"fast_cli":      "y",
	})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	job := created.(domain.Job)
	if job.Parameters["command"] != "show vrf" {
		t.Fatalf("expected command parameter, got %#v", job.Parameters)
	}

	fetched, err := factory.Fetch(ctx, domain.KindService, "netmiko_check_vrf_test")
	if err != nil {
		t.Fatalf("fetch service: %v", err)
	}
	serialized := fetched.Serialized()
	if serialized["content_match"] != "test" {
		t.Fatalf("expected flattened content_match, got %#v", serialized["content_match"])
	}
	devices := serialized["devices"].([]string)
	if len(devices) != 1 || devices[0] != "Washington" {
		t.Fatalf("expected device Washington, got %v", devices)
	}
}

func TestFactoryServiceUnknownDeviceIsConflict(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)
	_, err := factory.Create(context.Background(), domain.KindService, map[string]any{
		"name":    "orphan",
		"devices": "Nowhere",
	})
	if err == nil {
		t.Fatal("expected unknown device to fail")
	}
	if kind := ClassifyError(err); kind != ErrorNotFound {
		t.Fatalf("expected not found, got %q (%v)", kind, err)
	}
}

func TestFactoryWorkflowStartsWithStartAndEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	factory := newTestFactory(t)
	for _, name := range []string{domain.StartJob, domain.EndJob, "step"} {
		if _, err := factory.Create(ctx, domain.KindService, map[string]any{"name": name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	created, err := factory.Create(ctx, domain.KindWorkflow, map[string]any{
		"name": "wf",
		"jobs": []any{"step"},
	})
	if err != nil {
		t.Fatalf("create workflow: %v", err)
	}
	workflow := created.(domain.Workflow)
	if len(workflow.Jobs) != 3 || workflow.Jobs[0].Name != domain.StartJob || workflow.Jobs[1].Name != domain.EndJob {
		t.Fatalf("expected Start, End, step; got %+v", workflow.Jobs)
	}

	if _, err := workflow.Connect(0, 2, true); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := workflow.Connect(2, 1, true); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := factory.SaveWorkflow(ctx, workflow); err != nil {
		t.Fatalf("save workflow: %v", err)
	}

	services, err := factory.Count(ctx, domain.KindService)
	if err != nil {
		t.Fatalf("count services: %v", err)
	}
	if services != 3 {
		t.Fatalf("expected workflows excluded from service count, got %d", services)
	}

	if _, err := workflow.Connect(1, 0, true); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := factory.SaveWorkflow(ctx, workflow); !errors.Is(err, domain.ErrInvalidWorkflow) {
		t.Fatalf("expected invalid workflow, got %v", err)
	}
}

func TestFactoryQueryFiltersByPool(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	factory := newTestFactory(t)
	for _, props := range []map[string]any{
		{"name": "Washington", "vendor": "Arista"},
		{"name": "Denver", "vendor": "Cisco"},
	} {
		if _, err := factory.Create(ctx, domain.KindDevice, props); err != nil {
			t.Fatalf("create device: %v", err)
		}
	}
	if _, err := factory.Create(ctx, domain.KindPool, map[string]any{
		"name":          "Arista devices",
		"device_vendor": "Arista",
	}); err != nil {
		t.Fatalf("create pool: %v", err)
	}

	objects, err := factory.Query(ctx, domain.KindDevice, "Arista devices")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(objects) != 1 || objects[0].ObjectName() != "Washington" {
		t.Fatalf("expected only Washington, got %v", objects)
	}

	if _, err := factory.Query(ctx, domain.KindService, "Arista devices"); !errors.Is(err, domain.ErrUnknownObjectType) {
		t.Fatalf("expected pool on services to be rejected, got %v", err)
	}
}

func TestFactoryUnknownKind(t *testing.T) {
	t.Parallel()

	factory := newTestFactory(t)
	if _, err := factory.Fetch(context.Background(), domain.Kind("router"), "x"); !errors.Is(err, domain.ErrUnknownObjectType) {
		t.Fatalf("expected ErrUnknownObjectType, got %v", err)
	}
}
