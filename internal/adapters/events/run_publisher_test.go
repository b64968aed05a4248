package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	cebinding "github.com/cloudevents/sdk-go/v2/binding"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/pkg/eventpublisher"
)

func TestRunPublisherMapsJobKinds(t *testing.T) {
	var mu sync.Mutex
	var received []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ce, err := cebinding.ToEvent(r.Context(), cehttp.NewMessageFromHttpRequest(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		received = append(received, ce.Type())
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	publisher := NewRunPublisher(eventpublisher.Client{Endpoint: server.URL}, "enms/test", "http://enms.local")
	run := domain.JobRun{ID: "run-1", StartedAt: time.Now()}
	workflow := domain.Job{Name: "Netmiko_VRF_workflow", Type: domain.TypeWorkflow}
	service := domain.Job{Name: "GET_Washington", Type: domain.TypeRestCall}

	ctx := context.Background()
	require.NoError(t, publisher.RunStarted(ctx, workflow, run))
	require.NoError(t, publisher.RunFinished(ctx, workflow, run))
	require.NoError(t, publisher.RunStarted(ctx, service, run))
	run.Success = true
	require.NoError(t, publisher.RunFinished(ctx, service, run))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 4)
	require.Contains(t, received[0], "pipelinerun.started")
	require.Contains(t, received[1], "pipelinerun.finished")
	require.Contains(t, received[2], "taskrun.started")
	require.Contains(t, received[3], "taskrun.finished")
}

func TestRunPublisherSurfacesSinkErrors(t *testing.T) {
	publisher := NewRunPublisher(eventpublisher.Client{Endpoint: "http://127.0.0.1:1", Timeout: time.Second}, "", "")
	err := publisher.RunStarted(context.Background(), domain.Job{Name: "x"}, domain.JobRun{ID: "run-1"})
	require.Error(t, err)
}
