package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const httpTimeout = 30 * time.Second

// HTTPClassifier calls a remote inference endpoint accepting
// {"text": "..."} and answering with a "prediction" or "label" field.
type HTTPClassifier struct {
	endpoint string
	client   *http.Client
}

var _ Classifier = (*HTTPClassifier)(nil)

func NewHTTPClassifier(endpoint string) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: httpTimeout},
	}
}

// Classify submits the (truncated) text and returns the normalized label.
// Network errors, non-success statuses, malformed responses, and absent
// label fields all degrade to Unknown.
func (c *HTTPClassifier) Classify(ctx context.Context, text string) string {
	label, err := c.predict(ctx, truncate(text))
	if err != nil {
		slog.Warn("Classification failed", "endpoint", c.endpoint, "error", err)
		return Unknown
	}

	if label == "" {
		return Unknown
	}

	return normalizeLabel(label)
}

func (c *HTTPClassifier) predict(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var payload struct {
		Prediction string `json:"prediction"`
		Label      string `json:"label"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Prediction != "" {
		return payload.Prediction, nil
	}
	return payload.Label, nil
}
