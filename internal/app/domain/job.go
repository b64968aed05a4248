package domain

import (
	"fmt"
	"slices"
)

// Service types understood by the job runner.
const (
	TypeWorkflow             = "workflow"
	TypeSwissArmyKnife       = "swiss_army_knife_service"
	TypeRestCall             = "rest_call_service"
	TypeNetmikoConfiguration = "netmiko_configuration_service"
	TypeNetmikoValidation    = "netmiko_validation_service"
	TypeNapalmConfiguration  = "napalm_configuration_service"
	TypeNapalmRollback       = "napalm_rollback_service"
	TypeNapalmGetters        = "napalm_getters_service"
	TypeConfigureBGP         = "configure_bgp_service"
	DefaultServiceType       = TypeSwissArmyKnife
	StartJob                 = "Start"
	EndJob                   = "End"
)

// Job is a runnable automation unit. Properties outside the common set are
// kept in Parameters and interpreted by the runner of the job's type.
type Job struct {
	ID              int64          `mapstructure:"-"`
	Name            string         `mapstructure:"name"`
	Type            string         `mapstructure:"type"`
	Description     string         `mapstructure:"description"`
	Hidden          bool           `mapstructure:"hidden"`
	WaitingTime     int            `mapstructure:"waiting_time"`
	Vendor          string         `mapstructure:"vendor"`
	OperatingSystem string         `mapstructure:"operating_system"`
	Devices         []string       `mapstructure:"devices"`
	Parameters      map[string]any `mapstructure:"-"`
}

// ObjectName implements Object.
func (j Job) ObjectName() string { return j.Name }

// IsWorkflow reports whether the job is a workflow.
func (j Job) IsWorkflow() bool { return j.Type == TypeWorkflow }

// Param returns one type-specific parameter.
func (j Job) Param(key string) (any, bool) {
	value, ok := j.Parameters[key]
	return value, ok
}

// Serialized returns the job with its parameters flattened next to the common properties.
func (j Job) Serialized() map[string]any {
	out := make(map[string]any, len(j.Parameters)+9)
	for key, value := range j.Parameters {
		out[key] = value
	}
	devices := j.Devices
	if devices == nil {
		devices = []string{}
	}
	out["id"] = j.ID
	out["name"] = j.Name
	out["type"] = j.Type
	out["description"] = j.Description
	out["hidden"] = j.Hidden
	out["waiting_time"] = j.WaitingTime
	out["vendor"] = j.Vendor
	out["operating_system"] = j.OperatingSystem
	out["devices"] = devices
	return out
}

// WorkflowJob is one member of a workflow with its display position.
type WorkflowJob struct {
	Name string
	X    float64
	Y    float64
}

// WorkflowEdge connects two member jobs. Success edges are followed when the
// source job succeeds, failure edges when it fails.
type WorkflowEdge struct {
	Name        string
	Success     bool
	Source      string
	Destination string
}

// Workflow is a job whose execution walks a graph of member jobs.
type Workflow struct {
	Job
	Jobs  []WorkflowJob
	Edges []WorkflowEdge
}

// NewWorkflow returns an empty workflow whose first two members are Start and End.
func NewWorkflow(name string) Workflow {
	wf := Workflow{Job: Job{Name: name, Type: TypeWorkflow}}
	wf.AddJobs(StartJob, EndJob)
	return wf
}

// Serialized returns the workflow job, its members, edges and positions.
func (w Workflow) Serialized() map[string]any {
	out := w.Job.Serialized()
	names := make([]string, 0, len(w.Jobs))
	positions := make(map[string][2]float64, len(w.Jobs))
	for _, job := range w.Jobs {
		names = append(names, job.Name)
		positions[job.Name] = [2]float64{job.X, job.Y}
	}
	edges := make([]map[string]any, 0, len(w.Edges))
	for _, edge := range w.Edges {
		edges = append(edges, map[string]any{
			"name":        edge.Name,
			"type":        edge.Success,
			"source":      edge.Source,
			"destination": edge.Destination,
		})
	}
	out["jobs"] = names
	out["edges"] = edges
	out["positions"] = positions
	return out
}

// JobIndex returns the position of a member job, or -1.
func (w *Workflow) JobIndex(name string) int {
	return slices.IndexFunc(w.Jobs, func(job WorkflowJob) bool { return job.Name == name })
}

// AddJobs appends member jobs that are not already part of the workflow.
func (w *Workflow) AddJobs(names ...string) {
	for _, name := range names {
		if w.JobIndex(name) >= 0 {
			continue
		}
		w.Jobs = append(w.Jobs, WorkflowJob{Name: name})
	}
}

// Connect adds an edge between the members at indices x and y. An edge with
// the same name is replaced.
func (w *Workflow) Connect(x, y int, success bool) (WorkflowEdge, error) {
	if x < 0 || x >= len(w.Jobs) || y < 0 || y >= len(w.Jobs) {
		return WorkflowEdge{}, fmt.Errorf("%w: edge %d -> %d outside %d jobs", ErrInvalidWorkflow, x, y, len(w.Jobs))
	}
	edge := WorkflowEdge{
		Name:        fmt.Sprintf("%s %d -> %d", w.Name, x, y),
		Success:     success,
		Source:      w.Jobs[x].Name,
		Destination: w.Jobs[y].Name,
	}
	for i := range w.Edges {
		if w.Edges[i].Name == edge.Name {
			w.Edges[i] = edge
			return edge, nil
		}
	}
	w.Edges = append(w.Edges, edge)
	return edge, nil
}

// SetPosition sets the display position of the member at index.
func (w *Workflow) SetPosition(index int, x, y float64) error {
	if index < 0 || index >= len(w.Jobs) {
		return fmt.Errorf("%w: position index %d outside %d jobs", ErrInvalidWorkflow, index, len(w.Jobs))
	}
	w.Jobs[index].X = x
	w.Jobs[index].Y = y
	return nil
}

// Successors returns the destinations of edges leaving name whose type equals success.
func (w *Workflow) Successors(name string, success bool) []string {
	var out []string
	for _, edge := range w.Edges {
		if edge.Source == name && edge.Success == success {
			out = append(out, edge.Destination)
		}
	}
	return out
}

// Predecessors returns the sources of every edge entering name.
func (w *Workflow) Predecessors(name string) []string {
	var out []string
	for _, edge := range w.Edges {
		if edge.Destination == name {
			out = append(out, edge.Source)
		}
	}
	return out
}

// Validate checks that Start and End are members, that edges stay inside the
// member list, that Start has no incoming and End no outgoing edge, and that
// the graph has no cycle.
func (w *Workflow) Validate() error {
	for _, required := range []string{StartJob, EndJob} {
		if w.JobIndex(required) < 0 {
			return fmt.Errorf("%w: %s: missing %s job", ErrInvalidWorkflow, w.Name, required)
		}
	}

	indegree := make(map[string]int, len(w.Jobs))
	for _, job := range w.Jobs {
		indegree[job.Name] = 0
	}
	for _, edge := range w.Edges {
		if _, ok := indegree[edge.Source]; !ok {
			return fmt.Errorf("%w: %s: edge %q source %q is not a member", ErrInvalidWorkflow, w.Name, edge.Name, edge.Source)
		}
		if _, ok := indegree[edge.Destination]; !ok {
			return fmt.Errorf("%w: %s: edge %q destination %q is not a member", ErrInvalidWorkflow, w.Name, edge.Name, edge.Destination)
		}
		if edge.Destination == StartJob {
			return fmt.Errorf("%w: %s: edge %q enters %s", ErrInvalidWorkflow, w.Name, edge.Name, StartJob)
		}
		if edge.Source == EndJob {
			return fmt.Errorf("%w: %s: edge %q leaves %s", ErrInvalidWorkflow, w.Name, edge.Name, EndJob)
		}
		indegree[edge.Destination]++
	}

	queue := make([]string, 0, len(indegree))
	for _, job := range w.Jobs {
		if indegree[job.Name] == 0 {
			queue = append(queue, job.Name)
		}
	}
	visited := 0
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		visited++
		for _, edge := range w.Edges {
			if edge.Source != name {
				continue
			}
			indegree[edge.Destination]--
			if indegree[edge.Destination] == 0 {
				queue = append(queue, edge.Destination)
			}
		}
	}
	if visited != len(w.Jobs) {
		return fmt.Errorf("%w: %s: edges form a cycle", ErrInvalidWorkflow, w.Name)
	}
	return nil
}

// ValidateComplete applies Validate and additionally requires a finished
// graph: Start is the only member without an incoming edge and End is
// reachable from Start. Workflows edited step by step use Validate alone.
func (w *Workflow) ValidateComplete() error {
	if err := w.Validate(); err != nil {
		return err
	}

	entered := make(map[string]bool, len(w.Jobs))
	for _, edge := range w.Edges {
		entered[edge.Destination] = true
	}
	for _, job := range w.Jobs {
		if job.Name != StartJob && !entered[job.Name] {
			return fmt.Errorf("%w: %s: %q has no incoming edge", ErrInvalidWorkflow, w.Name, job.Name)
		}
	}

	reached := map[string]bool{StartJob: true}
	queue := []string{StartJob}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, edge := range w.Edges {
			if edge.Source == name && !reached[edge.Destination] {
				reached[edge.Destination] = true
				queue = append(queue, edge.Destination)
			}
		}
	}
	if !reached[EndJob] {
		return fmt.Errorf("%w: %s: %s is not reachable from %s", ErrInvalidWorkflow, w.Name, EndJob, StartJob)
	}
	return nil
}
