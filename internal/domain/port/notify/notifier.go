package notify

import "context"

// Notifier delivers best-effort webhook notifications to the external
// automation endpoint. Deliveries never gate the primary operation: callers
// log failures and move on, and no delivery is retried.
type Notifier interface {
	// ProfileSaved posts the full profile payload after a profile save commits
	ProfileSaved(ctx context.Context, payload map[string]any) error

	// RecommendationSubmitted posts the full recommendation payload after a
	// submission commits
	RecommendationSubmitted(ctx context.Context, payload map[string]any) error
}
