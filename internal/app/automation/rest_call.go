package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fr0stylo/enms/internal/app/domain"
)

// runRestCall issues the configured HTTP call. The response body is decoded as
// JSON when possible and checked against content_match.
func runRestCall(ctx context.Context, e *Executor, job domain.Job, _ domain.Device) (any, error) {
	method := strings.ToUpper(stringParam(job, "call_type"))
	if method == "" {
		method = http.MethodGet
	}
	url := stringParam(job, "url")
	if url == "" {
		return nil, fmt.Errorf("rest call %q: url is required", job.Name)
	}

	body, err := restPayload(job)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if username := stringParam(job, "username"); username != "" {
		req.SetBasicAuth(username, stringParam(job, "password"))
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var decoded any = string(raw)
	var parsed any
	if json.Unmarshal(raw, &parsed) == nil {
		decoded = parsed
	}
	output := map[string]any{"status_code": resp.StatusCode, "response": decoded}

	if resp.StatusCode >= http.StatusBadRequest {
		return output, fmt.Errorf("%s %s: status %d", method, url, resp.StatusCode)
	}
	return output, matchOutput(job, string(raw))
}

func restPayload(job domain.Job) (io.Reader, error) {
	value, ok := job.Param("payload")
	if !ok || value == nil {
		return nil, nil
	}
	switch typed := value.(type) {
	case string:
		if strings.TrimSpace(typed) == "" {
			return nil, nil
		}
		return strings.NewReader(typed), nil
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		return bytes.NewReader(encoded), nil
	}
}
