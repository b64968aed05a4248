package eventpublisher

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	cebinding "github.com/cloudevents/sdk-go/v2/binding"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
)

// Publish builds and sends one event. It returns the resolved CDEvents type.
func (c Client) Publish(ctx context.Context, event Event) (string, error) {
	ce, resolvedType, err := BuildCloudEvent(event)
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimSpace(c.Endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("endpoint is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := cehttp.WriteRequest(ctx, cebinding.ToMessage(ce), req); err != nil {
		return "", fmt.Errorf("encode cloudevent: %w", err)
	}
	if err := c.send(req, ce.Data()); err != nil {
		return "", err
	}
	return resolvedType, nil
}

func (c Client) send(req *http.Request, body []byte) error {
	if token := strings.TrimSpace(c.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if secret := strings.TrimSpace(c.Secret); secret != "" {
		req.Header.Set("X-Webhook-Signature", sign(body, secret))
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))

	httpClient := c.HTTPClient
	if httpClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sink rejected event: status=%s body=%s", resp.Status, strings.TrimSpace(string(payload)))
	}
	return nil
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
