package automation

import (
	"context"
	"fmt"
	"slices"

	"github.com/fr0stylo/enms/internal/app/domain"
)

// runWorkflow walks the graph from Start. A job runs once every predecessor
// reached so far has run; its successors are the destinations of the edges
// whose type equals the job's outcome. The workflow succeeds when End runs.
func (e *Executor) runWorkflow(ctx context.Context, workflow domain.Workflow, targets []string) domain.JobResult {
	result := domain.JobResult{Jobs: make(map[string]domain.JobResult, len(workflow.Jobs))}
	if workflow.JobIndex(domain.StartJob) < 0 {
		result.Error = fmt.Sprintf("workflow %q has no %s job", workflow.Name, domain.StartJob)
		return result
	}

	reached := map[string]bool{domain.StartJob: true}
	queue := []string{domain.StartJob}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			result.Error = err.Error()
			return result
		}

		name := queue[0]
		queue = queue[1:]
		if _, done := result.Jobs[name]; done {
			continue
		}
		if slices.ContainsFunc(workflow.Predecessors(name), func(source string) bool {
			_, done := result.Jobs[source]
			return reached[source] && !done
		}) {
			queue = append(queue, name)
			continue
		}

		outcome := e.runMember(ctx, name, targets)
		result.Jobs[name] = outcome
		e.logger.DebugContext(ctx, "workflow step", "workflow", workflow.Name, "job", name, "success", outcome.Success)
		if name == domain.EndJob {
			result.Success = true
			continue
		}
		for _, next := range workflow.Successors(name, outcome.Success) {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}

	if !result.Success {
		result.Error = fmt.Sprintf("workflow %q did not reach %s", workflow.Name, domain.EndJob)
	}
	return result
}

func (e *Executor) runMember(ctx context.Context, name string, targets []string) domain.JobResult {
	job, err := e.jobs.GetJob(ctx, name)
	if err != nil {
		return failed(fmt.Errorf("load job: %w", err))
	}
	return e.execute(ctx, job, targets)
}
