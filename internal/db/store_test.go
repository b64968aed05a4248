package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fr0stylo/enms/internal/db/queries"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	database, err := New(filepath.Join(t.TempDir(), "enms"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func createTestDevice(t *testing.T, ctx context.Context, database *Database, name string) queries.Device {
	t.Helper()

	device, err := database.CreateDevice(ctx, queries.CreateDeviceParams{
		Name:            name,
		Vendor:          "Cisco",
		OperatingSystem: "IOS",
		IpAddress:       "10.0.0.1",
		Port:            22,
	})
	if err != nil {
		t.Fatalf("create device %s: %v", name, err)
	}
	return device
}

func TestParametersSingletonRejectsSecondInsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := newTestDatabase(t)

	params := queries.CreateParametersParams{DefaultLongitude: -96.0, DefaultLatitude: 33.0, DefaultZoomLevel: 5, DefaultView: "2D"}
	if err := database.CreateParameters(ctx, params); err != nil {
		t.Fatalf("create parameters: %v", err)
	}
	if err := database.CreateParameters(ctx, params); err == nil {
		t.Fatal("expected constraint error on second parameters insert")
	}

	count, err := database.CountParameters(ctx)
	if err != nil {
		t.Fatalf("count parameters: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected parameters count: got=%d want=1", count)
	}
}

func TestDeletingDeviceCascadesToLinks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := newTestDatabase(t)
	washington := createTestDevice(t, ctx, database, "Washington")
	boston := createTestDevice(t, ctx, database, "Boston")

	if _, err := database.CreateLink(ctx, queries.CreateLinkParams{
		Name:          "Washington-Boston",
		SourceID:      washington.ID,
		DestinationID: boston.ID,
	}); err != nil {
		t.Fatalf("create link: %v", err)
	}

	link, err := database.GetLinkByName(ctx, "Washington-Boston")
	if err != nil {
		t.Fatalf("get link: %v", err)
	}
	if link.SourceName != "Washington" || link.DestinationName != "Boston" {
		t.Fatalf("unexpected link endpoints: %+v", link)
	}

	if _, err := database.DeleteDeviceByName(ctx, "Boston"); err != nil {
		t.Fatalf("delete device: %v", err)
	}
	count, err := database.CountLinks(ctx)
	if err != nil {
		t.Fatalf("count links: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cascading delete, got %d links", count)
	}
}

func TestWorkflowMembershipListsInPositionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := newTestDatabase(t)

	workflow, err := database.CreateJob(ctx, queries.CreateJobParams{Name: "wf", Type: "workflow", Parameters: "{}"})
	if err != nil {
		t.Fatalf("create workflow: %v", err)
	}
	names := []string{"Start", "End", "check"}
	ids := make(map[string]int64, len(names))
	for i, name := range names {
		job, err := database.CreateJob(ctx, queries.CreateJobParams{Name: name, Type: "swiss_army_knife_service", Parameters: "{}"})
		if err != nil {
			t.Fatalf("create job %s: %v", name, err)
		}
		ids[name] = job.ID
		if err := database.AddWorkflowJob(ctx, queries.AddWorkflowJobParams{WorkflowID: workflow.ID, JobID: job.ID, Position: int64(i)}); err != nil {
			t.Fatalf("add workflow job %s: %v", name, err)
		}
	}
	if err := database.CreateWorkflowEdge(ctx, queries.CreateWorkflowEdgeParams{
		Name: "wf Start -> check", WorkflowID: workflow.ID, Type: 1, SourceID: ids["Start"], DestinationID: ids["check"],
	}); err != nil {
		t.Fatalf("create edge: %v", err)
	}

	jobs, err := database.ListWorkflowJobs(ctx, workflow.ID)
	if err != nil {
		t.Fatalf("list workflow jobs: %v", err)
	}
	if len(jobs) != 3 || jobs[0].Name != "Start" || jobs[1].Name != "End" || jobs[2].Name != "check" {
		t.Fatalf("unexpected workflow jobs: %+v", jobs)
	}

	edges, err := database.ListWorkflowEdges(ctx, workflow.ID)
	if err != nil {
		t.Fatalf("list workflow edges: %v", err)
	}
	if len(edges) != 1 || edges[0].SourceName != "Start" || edges[0].DestinationName != "check" {
		t.Fatalf("unexpected workflow edges: %+v", edges)
	}

	services, err := database.CountServices(ctx)
	if err != nil {
		t.Fatalf("count services: %v", err)
	}
	if services != 3 {
		t.Fatalf("workflows must not count as services: got=%d want=3", services)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := newTestDatabase(t)
	sentinel := errors.New("abort")

	err := database.WithTx(ctx, func(q *queries.Queries) error {
		if _, err := q.CreatePool(ctx, queries.CreatePoolParams{Name: "All objects", Filters: "{}"}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	count, err := database.CountPools(ctx)
	if err != nil {
		t.Fatalf("count pools: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, got %d pools", count)
	}
}

func TestJobRunLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := newTestDatabase(t)

	job, err := database.CreateJob(ctx, queries.CreateJobParams{Name: "GET_Washington", Type: "rest_call_service", Parameters: "{}"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if err := database.CreateJobRun(ctx, queries.CreateJobRunParams{ID: "run-1", JobID: job.ID, StartedAt: "2026-10-19T10:00:00Z"}); err != nil {
		t.Fatalf("create run: %v", err)
	}
	if err := database.FinishJobRun(ctx, queries.FinishJobRunParams{ID: "run-1", Success: 1, Results: `{"success":true}`, EndedAt: "2026-10-19T10:00:01Z"}); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	run, err := database.GetJobRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if run.JobName != "GET_Washington" || run.Success != 1 || run.EndedAt == "" {
		t.Fatalf("unexpected run: %+v", run)
	}

	runs, err := database.ListJobRunsByJob(ctx, queries.ListJobRunsByJobParams{Name: "GET_Washington", Limit: 10})
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("unexpected runs len: got=%d want=1", len(runs))
	}
}
