package relay

//go:generate mockgen -destination=./clients_mock_test.go -package=relay -source=clients.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"analyse-relay/internal/metrics"
)

// ChatClient defines the contract for an external client that talks to the Cohere chat API.
type ChatClient interface {
	// Chat sends one chat request and returns the decoded response body.
	// A non-2xx answer is returned as an *UpstreamError.
	Chat(ctx context.Context, apiKey string, req *ChatRequest) (Payload, error)
}

// CredentialSource supplies the upstream API key. It is read on every request.
type CredentialSource interface {
	// APIKey returns the key, or a *MissingCredentialError when it is not configured.
	APIKey() (string, error)
}

// httpCohereClient is the real ChatClient.
type httpCohereClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewHTTPCohereClient is the constructor for the Cohere client. A zero timeout means
// the request is bounded only by its context.
func NewHTTPCohereClient(endpoint string, timeout time.Duration) ChatClient {
	return &httpCohereClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

// Chat makes the http call to Cohere.
func (c *httpCohereClient) Chat(ctx context.Context, apiKey string, chatReq *ChatRequest) (Payload, error) {
	reqBody, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("could not marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create chat http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.UpstreamDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("could not read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(raw),
		}
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("could not decode chat response: %w", err)
	}
	return payload, nil
}

// upstreamMessage picks the most useful error text out of a failed Cohere response:
// its message field, then its error field, then the whole body.
func upstreamMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "Cohere API error"
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return string(raw)
	}
	for _, key := range []string{"message", "error"} {
		switch v := payload[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
	}

	compact, err := json.Marshal(payload)
	if err != nil {
		return string(raw)
	}
	return string(compact)
}
