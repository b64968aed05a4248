package domain

import (
	"errors"
	"testing"
)

func vrfWorkflow(t *testing.T) Workflow {
	t.Helper()

	wf := NewWorkflow("Netmiko_VRF_workflow")
	wf.AddJobs("create", "check", "delete", "check_no")
	for _, pair := range [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}} {
		if _, err := wf.Connect(pair[0], pair[1], true); err != nil {
			t.Fatalf("connect %v: %v", pair, err)
		}
	}
	return wf
}

func TestNewWorkflowStartsWithStartAndEnd(t *testing.T) {
	t.Parallel()

	wf := NewWorkflow("wf")
	if len(wf.Jobs) != 2 || wf.Jobs[0].Name != StartJob || wf.Jobs[1].Name != EndJob {
		t.Fatalf("unexpected initial jobs: %+v", wf.Jobs)
	}
	wf.AddJobs(StartJob, "a", "a")
	if len(wf.Jobs) != 3 {
		t.Fatalf("duplicates must be skipped: %+v", wf.Jobs)
	}
}

func TestConnectNamesEdgesAndReplacesDuplicates(t *testing.T) {
	t.Parallel()

	wf := vrfWorkflow(t)
	if len(wf.Edges) != 5 {
		t.Fatalf("unexpected edges len: got=%d want=5", len(wf.Edges))
	}
	if wf.Edges[0].Name != "Netmiko_VRF_workflow 0 -> 2" || wf.Edges[0].Source != StartJob || wf.Edges[0].Destination != "create" {
		t.Fatalf("unexpected first edge: %+v", wf.Edges[0])
	}
	if _, err := wf.Connect(0, 2, true); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	if len(wf.Edges) != 5 {
		t.Fatalf("reconnect must not duplicate edges: got=%d", len(wf.Edges))
	}
	if err := wf.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestConnectRejectsOutOfRangeIndex(t *testing.T) {
	t.Parallel()

	wf := NewWorkflow("wf")
	if _, err := wf.Connect(0, 7, true); !errors.Is(err, ErrInvalidWorkflow) {
		t.Fatalf("expected ErrInvalidWorkflow, got %v", err)
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	t.Parallel()

	wf := vrfWorkflow(t)
	wf.Edges = append(wf.Edges, WorkflowEdge{Name: "back", Success: true, Source: "check_no", Destination: "create"})
	if err := wf.Validate(); !errors.Is(err, ErrInvalidWorkflow) {
		t.Fatalf("expected cycle rejection, got %v", err)
	}
}

func TestValidateRejectsForeignEndpointAndStartIncoming(t *testing.T) {
	t.Parallel()

	wf := vrfWorkflow(t)
	wf.Edges = append(wf.Edges, WorkflowEdge{Name: "foreign", Success: true, Source: "create", Destination: "ghost"})
	if err := wf.Validate(); !errors.Is(err, ErrInvalidWorkflow) {
		t.Fatalf("expected foreign endpoint rejection, got %v", err)
	}

	wf = vrfWorkflow(t)
	wf.Edges = append(wf.Edges, WorkflowEdge{Name: "into start", Success: false, Source: "check", Destination: StartJob})
	if err := wf.Validate(); !errors.Is(err, ErrInvalidWorkflow) {
		t.Fatalf("expected Start incoming rejection, got %v", err)
	}

	wf = NewWorkflow("wf")
	wf.Jobs = wf.Jobs[:1]
	if err := wf.Validate(); !errors.Is(err, ErrInvalidWorkflow) {
		t.Fatalf("expected missing End rejection, got %v", err)
	}
}

func TestValidateCompleteAcceptsSinglePath(t *testing.T) {
	t.Parallel()

	wf := vrfWorkflow(t)
	if err := wf.ValidateComplete(); err != nil {
		t.Fatalf("validate complete: %v", err)
	}
}

func TestValidateCompleteRejectsUnfinishedGraphs(t *testing.T) {
	t.Parallel()

	cases := map[string][][2]int{
		"end unreachable":    {{0, 2}, {2, 3}},
		"second source":      {{0, 2}, {2, 1}, {3, 1}},
		"isolated member":    {{0, 2}, {2, 1}},
		"start straight end": {{0, 1}, {2, 3}},
	}
	for name, edges := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			wf := NewWorkflow("wf")
			wf.AddJobs("a", "b")
			for _, pair := range edges {
				if _, err := wf.Connect(pair[0], pair[1], true); err != nil {
					t.Fatalf("connect %v: %v", pair, err)
				}
			}
			if err := wf.Validate(); err != nil {
				t.Fatalf("lenient validate should pass: %v", err)
			}
			if err := wf.ValidateComplete(); !errors.Is(err, ErrInvalidWorkflow) {
				t.Fatalf("expected ErrInvalidWorkflow, got %v", err)
			}
		})
	}
}

func TestSuccessorsFollowEdgeType(t *testing.T) {
	t.Parallel()

	wf := NewWorkflow("wf")
	wf.AddJobs("check", "recover")
	if _, err := wf.Connect(2, 1, true); err != nil {
		t.Fatal(err)
	}
	if _, err := wf.Connect(2, 3, false); err != nil {
		t.Fatal(err)
	}
	if got := wf.Successors("check", true); len(got) != 1 || got[0] != EndJob {
		t.Fatalf("unexpected success successors: %v", got)
	}
	if got := wf.Successors("check", false); len(got) != 1 || got[0] != "recover" {
		t.Fatalf("unexpected failure successors: %v", got)
	}
	if got := wf.Predecessors(EndJob); len(got) != 1 || got[0] != "check" {
		t.Fatalf("unexpected predecessors: %v", got)
	}
}

func TestSetPosition(t *testing.T) {
	t.Parallel()

	wf := NewWorkflow("wf")
	if err := wf.SetPosition(1, 200, 0); err != nil {
		t.Fatalf("set position: %v", err)
	}
	if wf.Jobs[1].X != 200 {
		t.Fatalf("unexpected position: %+v", wf.Jobs[1])
	}
	if err := wf.SetPosition(2, 0, 0); !errors.Is(err, ErrInvalidWorkflow) {
		t.Fatalf("expected out of range error, got %v", err)
	}
	positions := wf.Serialized()["positions"].(map[string][2]float64)
	if positions[EndJob] != [2]float64{200, 0} {
		t.Fatalf("unexpected serialized positions: %v", positions)
	}
}
