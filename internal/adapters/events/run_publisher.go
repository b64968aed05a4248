package events

import (
	"context"
	"net/url"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/pkg/eventpublisher"
)

// RunPublisher announces job runs as CDEvents: workflows as pipeline runs,
// services as task runs.
type RunPublisher struct {
	client  eventpublisher.Client
	source  string
	baseURL string
}

var _ ports.RunEventPublisher = (*RunPublisher)(nil)

// NewRunPublisher constructs a publisher. baseURL, when set, is used to link
// each event to its /rest/result resource.
func NewRunPublisher(client eventpublisher.Client, source, baseURL string) *RunPublisher {
	if source == "" {
		source = "enms"
	}
	return &RunPublisher{client: client, source: source, baseURL: baseURL}
}

func (p *RunPublisher) RunStarted(ctx context.Context, job domain.Job, run domain.JobRun) error {
	event := p.event(job, run)
	event.Type = runType(job, "started")
	_, err := p.client.Publish(ctx, event)
	return err
}

func (p *RunPublisher) RunFinished(ctx context.Context, job domain.Job, run domain.JobRun) error {
	event := p.event(job, run)
	event.Type = runType(job, "finished")
	event.Outcome = "failure"
	if run.Success {
		event.Outcome = "success"
	}
	event.Errors = run.Results.Error
	_, err := p.client.Publish(ctx, event)
	return err
}

func (p *RunPublisher) event(job domain.Job, run domain.JobRun) eventpublisher.Event {
	event := eventpublisher.Event{
		Source:    p.source,
		SubjectID: run.ID,
		Name:      job.Name,
	}
	if p.baseURL != "" {
		event.URL = p.baseURL + "/rest/result/" + url.PathEscape(job.Name) + "/" + url.PathEscape(run.ID)
	}
	return event
}

func runType(job domain.Job, stage string) string {
	if job.IsWorkflow() {
		return "pipelinerun." + stage
	}
	return "taskrun." + stage
}
