package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/db"
	"github.com/fr0stylo/enms/internal/db/queries"
)

// GetJob fetches a service or workflow job by name, without workflow members.
func (s *Store) GetJob(ctx context.Context, name string) (domain.Job, error) {
	row, err := s.q.GetJobByName(ctx, name)
	if err != nil {
		return domain.Job{}, readErr(domain.KindService, name, err)
	}
	return s.loadJob(ctx, row)
}

// ListServices lists non-workflow jobs ordered by name.
func (s *Store) ListServices(ctx context.Context) ([]domain.Job, error) {
	rows, err := s.q.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Job, 0, len(rows))
	for _, row := range rows {
		job, err := s.loadJob(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, nil
}

// SaveJob inserts or updates a job and replaces its target devices.
func (s *Store) SaveJob(ctx context.Context, job domain.Job) (domain.Job, error) {
	var saved domain.Job
	err := s.WithTx(ctx, func(tx ports.Store) error {
		var err error
		saved, err = tx.(*Store).saveJob(ctx, job)
		return err
	})
	return saved, err
}

// GetWorkflow fetches a workflow with its members and edges.
func (s *Store) GetWorkflow(ctx context.Context, name string) (domain.Workflow, error) {
	row, err := s.q.GetJobByName(ctx, name)
	if err != nil {
		return domain.Workflow{}, readErr(domain.KindWorkflow, name, err)
	}
	if row.Type != domain.TypeWorkflow {
		return domain.Workflow{}, fmt.Errorf("%w: workflow %q", domain.ErrObjectNotFound, name)
	}
	return s.loadWorkflow(ctx, row)
}

// ListWorkflows lists workflows ordered by name.
func (s *Store) ListWorkflows(ctx context.Context) ([]domain.Workflow, error) {
	rows, err := s.q.ListWorkflows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Workflow, 0, len(rows))
	for _, row := range rows {
		wf, err := s.loadWorkflow(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, wf)
	}
	return out, nil
}

// SaveWorkflow saves the workflow job and replaces its members and edges.
// Member jobs must already exist.
func (s *Store) SaveWorkflow(ctx context.Context, workflow domain.Workflow) (domain.Workflow, error) {
	workflow.Type = domain.TypeWorkflow
	err := s.WithTx(ctx, func(tx ports.Store) error {
		store := tx.(*Store)
		job, err := store.saveJob(ctx, workflow.Job)
		if err != nil {
			return err
		}
		workflow.Job = job

		if err := store.q.DeleteWorkflowEdges(ctx, job.ID); err != nil {
			return writeErr("clear workflow edges", err)
		}
		if err := store.q.DeleteWorkflowJobs(ctx, job.ID); err != nil {
			return writeErr("clear workflow jobs", err)
		}

		ids := make(map[string]int64, len(workflow.Jobs))
		for position, member := range workflow.Jobs {
			row, err := store.q.GetJobByName(ctx, member.Name)
			if err != nil {
				return fmt.Errorf("workflow %q member: %w", workflow.Name, readErr(domain.KindService, member.Name, err))
			}
			ids[member.Name] = row.ID
			if err := store.q.AddWorkflowJob(ctx, queries.AddWorkflowJobParams{
				WorkflowID: job.ID,
				JobID:      row.ID,
				Position:   int64(position),
				X:          member.X,
				Y:          member.Y,
			}); err != nil {
				return writeErr("add workflow job", err)
			}
		}
		for _, edge := range workflow.Edges {
			sourceID, ok := ids[edge.Source]
			if !ok {
				return fmt.Errorf("%w: edge %q source %q is not a member", domain.ErrInvalidWorkflow, edge.Name, edge.Source)
			}
			destinationID, ok := ids[edge.Destination]
			if !ok {
				return fmt.Errorf("%w: edge %q destination %q is not a member", domain.ErrInvalidWorkflow, edge.Name, edge.Destination)
			}
			if err := store.q.CreateWorkflowEdge(ctx, queries.CreateWorkflowEdgeParams{
				Name:          edge.Name,
				WorkflowID:    job.ID,
				Type:          db.BoolToInt(edge.Success),
				SourceID:      sourceID,
				DestinationID: destinationID,
			}); err != nil {
				return writeErr("create workflow edge", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Workflow{}, err
	}
	return workflow, nil
}

// DeleteJob removes a service or workflow by name.
func (s *Store) DeleteJob(ctx context.Context, name string) error {
	affected, err := s.q.DeleteJobByName(ctx, name)
	return deleteErr(domain.KindService, name, affected, err)
}

func (s *Store) saveJob(ctx context.Context, job domain.Job) (domain.Job, error) {
	if job.Type == "" {
		job.Type = domain.DefaultServiceType
	}
	params := job.Parameters
	if params == nil {
		params = map[string]any{}
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return domain.Job{}, fmt.Errorf("encode job %q parameters: %w", job.Name, err)
	}

	if job.ID == 0 {
		row, err := s.q.CreateJob(ctx, queries.CreateJobParams{
			Name:            job.Name,
			Type:            job.Type,
			Description:     job.Description,
			Hidden:          db.BoolToInt(job.Hidden),
			WaitingTime:     int64(job.WaitingTime),
			Vendor:          job.Vendor,
			OperatingSystem: job.OperatingSystem,
			Parameters:      string(encoded),
		})
		if err != nil {
			return domain.Job{}, writeErr("create job", err)
		}
		job.ID = row.ID
	} else if err := s.q.UpdateJob(ctx, queries.UpdateJobParams{
		Type:            job.Type,
		Description:     job.Description,
		Hidden:          db.BoolToInt(job.Hidden),
		WaitingTime:     int64(job.WaitingTime),
		Vendor:          job.Vendor,
		OperatingSystem: job.OperatingSystem,
		Parameters:      string(encoded),
		ID:              job.ID,
	}); err != nil {
		return domain.Job{}, writeErr("update job", err)
	}

	if err := s.q.DeleteJobDevices(ctx, job.ID); err != nil {
		return domain.Job{}, writeErr("clear job devices", err)
	}
	for _, name := range job.Devices {
		device, err := s.q.GetDeviceByName(ctx, name)
		if err != nil {
			return domain.Job{}, fmt.Errorf("job %q target: %w", job.Name, readErr(domain.KindDevice, name, err))
		}
		if err := s.q.AddJobDevice(ctx, queries.AddJobDeviceParams{JobID: job.ID, DeviceID: device.ID}); err != nil {
			return domain.Job{}, writeErr("add job device", err)
		}
	}
	return job, nil
}

func (s *Store) loadJob(ctx context.Context, row queries.Job) (domain.Job, error) {
	params := map[string]any{}
	if row.Parameters != "" {
		if err := json.Unmarshal([]byte(row.Parameters), &params); err != nil {
			return domain.Job{}, fmt.Errorf("decode job %q parameters: %w", row.Name, err)
		}
	}
	devices, err := s.q.ListJobDeviceNames(ctx, row.ID)
	if err != nil {
		return domain.Job{}, err
	}
	return domain.Job{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		Description:     row.Description,
		Hidden:          row.Hidden != 0,
		WaitingTime:     int(row.WaitingTime),
		Vendor:          row.Vendor,
		OperatingSystem: row.OperatingSystem,
		Devices:         devices,
		Parameters:      params,
	}, nil
}

func (s *Store) loadWorkflow(ctx context.Context, row queries.Job) (domain.Workflow, error) {
	job, err := s.loadJob(ctx, row)
	if err != nil {
		return domain.Workflow{}, err
	}
	members, err := s.q.ListWorkflowJobs(ctx, row.ID)
	if err != nil {
		return domain.Workflow{}, err
	}
	edges, err := s.q.ListWorkflowEdges(ctx, row.ID)
	if err != nil {
		return domain.Workflow{}, err
	}

	wf := domain.Workflow{Job: job}
	for _, member := range members {
		wf.Jobs = append(wf.Jobs, domain.WorkflowJob{Name: member.Name, X: member.X, Y: member.Y})
	}
	for _, edge := range edges {
		wf.Edges = append(wf.Edges, domain.WorkflowEdge{
			Name:        edge.Name,
			Success:     edge.Type != 0,
			Source:      edge.SourceName,
			Destination: edge.DestinationName,
		})
	}
	return wf, nil
}
