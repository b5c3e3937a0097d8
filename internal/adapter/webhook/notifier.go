// Package webhook forwards registrations to the marketing list sync
// endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"funnel-engine/internal/core/domain"
	"funnel-engine/internal/core/port"
)

// Notifier posts each registration notice as JSON to a fixed URL.
type Notifier struct {
	url    string
	client *http.Client
}

var _ port.RegistrationListener = (*Notifier)(nil)

// NewNotifier returns a notifier posting to url with the given per-request
// timeout.
func NewNotifier(url string, timeout time.Duration) *Notifier {
	return &Notifier{url: url, client: &http.Client{Timeout: timeout}}
}

// OnRegistration delivers n once. Non-2xx responses are errors; there is no
// retry.
func (n *Notifier) OnRegistration(ctx context.Context, notice domain.RegistrationNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook %s: unexpected status %d", n.url, resp.StatusCode)
	}
	return nil
}
