package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// webhookPayload is the downstream contract: the deck travels base64-encoded
// inside a JSON envelope.
type webhookPayload struct {
	Filename    string `json:"filename"`
	FileContent string `json:"fileContent"`
}

// WebhookDeliverer POSTs finished decks to a configured webhook endpoint.
type WebhookDeliverer struct {
	endpoint string
	client   *http.Client
}

// NewWebhookDeliverer creates a deliverer for the given endpoint. The timeout
// bounds the whole POST including the body upload.
func NewWebhookDeliverer(endpoint string, timeout time.Duration) *WebhookDeliverer {
	return &WebhookDeliverer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Deliver sends one deck. Any non-2xx response counts as a failed delivery.
func (w *WebhookDeliverer) Deliver(ctx context.Context, filename string, deck []byte) error {
	body, err := sonic.ConfigStd.Marshal(webhookPayload{
		Filename:    filename,
		FileContent: base64.StdEncoding.EncodeToString(deck),
	})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
