package domain

import "time"

// JobResult is the outcome of one job. Device results are keyed by device
// name and workflow member results by job name.
type JobResult struct {
	Success bool                 `json:"success"`
	Output  any                  `json:"output,omitempty"`
	Error   string               `json:"error,omitempty"`
	Devices map[string]JobResult `json:"devices,omitempty"`
	Jobs    map[string]JobResult `json:"jobs,omitempty"`
}

// JobRun is one recorded execution of a job.
type JobRun struct {
	ID        string
	Job       string
	Success   bool
	Results   JobResult
	StartedAt time.Time
	EndedAt   time.Time
}

// Finished reports whether the run has an end time.
func (r JobRun) Finished() bool {
	return !r.EndedAt.IsZero()
}
