package eventpublisher

import (
	"fmt"
	"strings"

	cdeventsapi "github.com/cdevents/sdk-go/pkg/api"
	cdeventsv05 "github.com/cdevents/sdk-go/pkg/api/v05"
	ceevent "github.com/cloudevents/sdk-go/v2/event"
)

// BuildCloudEvent renders a run transition as a CloudEvent carrying a CDEvent.
// It returns the resolved CDEvents type.
func BuildCloudEvent(event Event) (*ceevent.Event, string, error) {
	cd, err := buildCDEvent(event)
	if err != nil {
		return nil, "", err
	}
	if err := cdeventsapi.Validate(cd); err != nil {
		return nil, "", fmt.Errorf("validate %s: %w", cd.GetType(), err)
	}
	ce, err := cdeventsapi.AsCloudEvent(cd)
	if err != nil {
		return nil, "", fmt.Errorf("convert %s: %w", cd.GetType(), err)
	}
	return ce, cd.GetType().String(), nil
}

func buildCDEvent(event Event) (cdeventsapi.CDEvent, error) {
	source := strings.TrimSpace(event.Source)
	if source == "" {
		source = "enms"
	}
	subjectID := strings.TrimSpace(event.SubjectID)
	if subjectID == "" {
		return nil, fmt.Errorf("subject id is required")
	}
	name := strings.TrimSpace(event.Name)

	switch resolved := normalizeType(event.Type); resolved {
	case typePipelineRunStarted:
		e, err := cdeventsv05.NewPipelineRunStartedEvent()
		if err != nil {
			return nil, err
		}
		e.SetSource(source)
		e.SetSubjectId(subjectID)
		e.SetSubjectPipelineName(name)
		e.SetSubjectUri(event.URL)
		return e, nil
	case typePipelineRunFinished:
		e, err := cdeventsv05.NewPipelineRunFinishedEvent()
		if err != nil {
			return nil, err
		}
		e.SetSource(source)
		e.SetSubjectId(subjectID)
		e.SetSubjectPipelineName(name)
		e.SetSubjectUri(event.URL)
		e.SetSubjectOutcome(normalizeOutcome(event.Outcome))
		e.SetSubjectErrors(event.Errors)
		return e, nil
	case typeTaskRunStarted:
		e, err := cdeventsv05.NewTaskRunStartedEvent()
		if err != nil {
			return nil, err
		}
		e.SetSource(source)
		e.SetSubjectId(subjectID)
		e.SetSubjectTaskName(name)
		e.SetSubjectUri(event.URL)
		if run := strings.TrimSpace(event.PipelineRun); run != "" {
			e.SetSubjectPipelineRun(&cdeventsapi.Reference{Id: run})
		}
		return e, nil
	case typeTaskRunFinished:
		e, err := cdeventsv05.NewTaskRunFinishedEvent()
		if err != nil {
			return nil, err
		}
		e.SetSource(source)
		e.SetSubjectId(subjectID)
		e.SetSubjectTaskName(name)
		e.SetSubjectUri(event.URL)
		e.SetSubjectOutcome(normalizeOutcome(event.Outcome))
		e.SetSubjectErrors(event.Errors)
		if run := strings.TrimSpace(event.PipelineRun); run != "" {
			e.SetSubjectPipelineRun(&cdeventsapi.Reference{Id: run})
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unsupported event type %q", event.Type)
	}
}
