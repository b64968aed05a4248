package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/db"
	"github.com/fr0stylo/enms/internal/db/queries"
)

// CreateJobRun records the start of a run.
func (s *Store) CreateJobRun(ctx context.Context, run domain.JobRun) error {
	job, err := s.q.GetJobByName(ctx, run.Job)
	if err != nil {
		return readErr(domain.KindService, run.Job, err)
	}
	return writeErr("create job run", s.q.CreateJobRun(ctx, queries.CreateJobRunParams{
		ID:        run.ID,
		JobID:     job.ID,
		StartedAt: formatTime(run.StartedAt),
	}))
}

// FinishJobRun stores the outcome of a run.
func (s *Store) FinishJobRun(ctx context.Context, run domain.JobRun) error {
	results, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("encode run %s results: %w", run.ID, err)
	}
	return writeErr("finish job run", s.q.FinishJobRun(ctx, queries.FinishJobRunParams{
		Success: db.BoolToInt(run.Success),
		Results: string(results),
		EndedAt: formatTime(run.EndedAt),
		ID:      run.ID,
	}))
}

// GetJobRun fetches a run by id.
func (s *Store) GetJobRun(ctx context.Context, id string) (domain.JobRun, error) {
	row, err := s.q.GetJobRun(ctx, id)
	if err != nil {
		return domain.JobRun{}, readErr("job run", id, err)
	}
	return mapJobRun(queries.ListJobRunsByJobRow(row))
}

// ListJobRuns lists the most recent runs of a job.
func (s *Store) ListJobRuns(ctx context.Context, job string, limit int) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.q.ListJobRunsByJob(ctx, queries.ListJobRunsByJobParams{Name: job, Limit: int64(limit)})
	if err != nil {
		return nil, err
	}
	out := make([]domain.JobRun, 0, len(rows))
	for _, row := range rows {
		run, err := mapJobRun(row)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, nil
}

func mapJobRun(row queries.ListJobRunsByJobRow) (domain.JobRun, error) {
	run := domain.JobRun{
		ID:        row.ID,
		Job:       row.JobName,
		Success:   row.Success != 0,
		StartedAt: parseTime(row.StartedAt),
		EndedAt:   parseTime(row.EndedAt),
	}
	if row.Results != "" {
		if err := json.Unmarshal([]byte(row.Results), &run.Results); err != nil {
			return domain.JobRun{}, fmt.Errorf("decode run %s results: %w", row.ID, err)
		}
	}
	return run, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
