package eventpublisher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cdeventsv05 "github.com/cdevents/sdk-go/pkg/api/v05"
	cebinding "github.com/cloudevents/sdk-go/v2/binding"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
)

func TestBuildCloudEventSupportsRunTypes(t *testing.T) {
	types := map[string]string{
		"pipelinerun.started":                 "dev.cdevents.pipelinerun.started.",
		"pipelinerun.finished":                "dev.cdevents.pipelinerun.finished.",
		"taskrun.started":                     "dev.cdevents.taskrun.started.",
		"dev.cdevents.taskrun.finished.0.2.0": "dev.cdevents.taskrun.finished.",
	}
	for typ, prefix := range types {
		t.Run(typ, func(t *testing.T) {
			ce, resolved, err := BuildCloudEvent(Event{
				Type:        typ,
				Source:      "enms/test",
				SubjectID:   "run-1",
				Name:        "Netmiko_VRF_workflow",
				PipelineRun: "run-0",
				Outcome:     "success",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(resolved, prefix) {
				t.Fatalf("unexpected resolved type: %s", resolved)
			}
			if ce.Type() != resolved {
				t.Fatalf("cloudevent type %s differs from %s", ce.Type(), resolved)
			}
			if ce.Source() != "enms/test" {
				t.Fatalf("unexpected source: %s", ce.Source())
			}
		})
	}
}

func TestBuildCloudEventCarriesSubjectURI(t *testing.T) {
	const resultURL = "http://127.0.0.1:5000/rest/result/Netmiko_VRF_workflow/run-1"

	built, err := buildCDEvent(Event{Type: "pipelinerun.started", SubjectID: "run-1", Name: "Netmiko_VRF_workflow", URL: resultURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	started, ok := built.(*cdeventsv05.PipelineRunStartedEvent)
	if !ok {
		t.Fatalf("unexpected event %T", built)
	}
	if started.Subject.Content.Uri != resultURL {
		t.Fatalf("unexpected subject uri %q", started.Subject.Content.Uri)
	}

	ce, _, err := BuildCloudEvent(Event{Type: "taskrun.finished", SubjectID: "run-2", Name: "GET_Washington", URL: resultURL, Outcome: "success"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := cdeventsv05.NewFromJsonBytes(ce.Data())
	if err != nil {
		t.Fatalf("decode cdevent: %v", err)
	}
	finished, ok := decoded.(*cdeventsv05.TaskRunFinishedEvent)
	if !ok {
		t.Fatalf("unexpected decoded event %T", decoded)
	}
	if finished.Subject.Content.Uri != resultURL {
		t.Fatalf("uri lost in cloudevent data: %q", finished.Subject.Content.Uri)
	}
}

func TestBuildCloudEventRejectsUnknownTypeAndMissingSubject(t *testing.T) {
	if _, _, err := BuildCloudEvent(Event{Type: "service.deployed", SubjectID: "x"}); err == nil {
		t.Fatalf("expected unsupported type error")
	}
	if _, _, err := BuildCloudEvent(Event{Type: "taskrun.started"}); err == nil {
		t.Fatalf("expected missing subject error")
	}
}

func TestClientPublishSendsBinaryCloudEvent(t *testing.T) {
	var gotAuth string
	var gotSignature string
	var gotOutcome string
	var gotType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSignature = r.Header.Get("X-Webhook-Signature")

		ce, err := cebinding.ToEvent(r.Context(), cehttp.NewMessageFromHttpRequest(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotType = ce.Type()
		cd, err := cdeventsv05.NewFromJsonBytes(ce.Data())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if finished, ok := cd.(*cdeventsv05.PipelineRunFinishedEvent); ok {
			gotOutcome = finished.Subject.Content.Outcome
		}
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := Client{
		Endpoint: server.URL,
		Token:    "token-123",
		Secret:   "secret-123",
	}

	resolvedType, err := client.Publish(context.Background(), Event{
		Type:      "pipelinerun.finished",
		Source:    "enms/test",
		SubjectID: "run-1",
		Name:      "Netmiko_VRF_workflow",
		Outcome:   "failure",
		Errors:    "workflow did not reach End",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if gotType != resolvedType {
		t.Fatalf("sink received %q, want %q", gotType, resolvedType)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotSignature == "" {
		t.Fatalf("expected signature header to be set")
	}
	if gotOutcome != "failure" {
		t.Fatalf("unexpected outcome: %q", gotOutcome)
	}
}

func TestClientPublishReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := Client{Endpoint: server.URL}.Publish(context.Background(), Event{Type: "taskrun.started", SubjectID: "run-1", Name: "GET_Washington"})
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected rejection error, got %v", err)
	}
}
