// Package host abstracts the extension host runtime: cart snapshot reads,
// cart change subscriptions, capability-gated mutations, and toasts. The
// upsell surfaces receive these as injected interfaces so they can run
// against the real runtime or an in-memory double.
package host

import (
	"context"

	"merchant-upsell/internal/domain"
)

// Capabilities are the host-reported cart permission flags.
type Capabilities struct {
	CanAddCartLine    bool
	CanUpdateCartLine bool
}

// CartSource reads the current cart and pushes new snapshots on change.
type CartSource interface {
	// Current returns the latest cart snapshot.
	Current() domain.CartSnapshot

	// Subscribe registers fn for cart change pushes and returns an
	// unsubscribe function. The host delivers a fresh snapshot after every
	// committed mutation; writes never mutate a snapshot already handed out.
	Subscribe(fn func(domain.CartSnapshot)) (unsubscribe func())
}

// CartMutator applies line changes to the host cart. All writes go through
// the host; the updated state arrives via the CartSource subscription.
type CartMutator interface {
	Capabilities() Capabilities
	AddLine(ctx context.Context, merchandiseGID string, quantity int) error
	SetLineQuantity(ctx context.Context, lineID string, quantity int) error
}

// Toaster shows a transient user-visible notice.
type Toaster interface {
	Show(message string)
}

// NopToaster discards all notices.
type NopToaster struct{}

func (NopToaster) Show(string) {}
