package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/notify"
)

// HTTPNotifier delivers webhook payloads to the external automation endpoint.
// Deliveries are best-effort: callers log failures and never retry.
type HTTPNotifier struct {
	client            *http.Client
	profileURL        string
	recommendationURL string
	logger            coreport.Logger
}

// NewHTTPNotifier creates a notifier with the configured endpoint URLs.
// An empty URL disables that delivery.
func NewHTTPNotifier(profileURL, recommendationURL string, timeout time.Duration, logger coreport.Logger) notify.Notifier {
	return &HTTPNotifier{
		client:            &http.Client{Timeout: timeout},
		profileURL:        profileURL,
		recommendationURL: recommendationURL,
		logger:            logger,
	}
}

// ProfileSaved posts the profile payload after a profile save commits
func (n *HTTPNotifier) ProfileSaved(ctx context.Context, payload map[string]any) error {
	return n.post(ctx, n.profileURL, "profile_saved", payload)
}

// RecommendationSubmitted posts the recommendation payload after a
// submission commits
func (n *HTTPNotifier) RecommendationSubmitted(ctx context.Context, payload map[string]any) error {
	return n.post(ctx, n.recommendationURL, "recommendation_submitted", payload)
}

func (n *HTTPNotifier) post(ctx context.Context, url, event string, payload map[string]any) error {
	if url == "" {
		n.logger.Debug("Webhook delivery skipped, no endpoint configured", map[string]any{
			"event": event,
		})
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal webhook payload: %v", errs.ErrExternalService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build webhook request: %v", errs.ErrExternalService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", event)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: deliver webhook: %v", errs.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: webhook endpoint returned %d", errs.ErrExternalService, resp.StatusCode)
	}

	n.logger.Debug("Webhook delivered", map[string]any{
		"event":  event,
		"status": resp.StatusCode,
	})
	return nil
}
