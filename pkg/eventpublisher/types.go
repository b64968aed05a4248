package eventpublisher

import (
	"net/http"
	"time"
)

// Client posts CDEvents as binary-mode CloudEvents to one sink.
type Client struct {
	Endpoint   string
	Token      string
	Secret     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Event describes one pipeline or task run transition.
type Event struct {
	Type        string
	Source      string
	SubjectID   string
	Name        string
	PipelineRun string
	URL         string
	Outcome     string
	Errors      string
}
