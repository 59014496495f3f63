package host

import (
	"context"
	"errors"
	"sync"

	"merchant-upsell/internal/domain"

	"github.com/google/uuid"
)

// MemoryHost is an in-process CartSource/CartMutator used by tests and the
// simulator. It mimics the real runtime: mutations commit to internal state
// and subscribers receive a fresh snapshot copy afterwards.
type MemoryHost struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	caps    Capabilities
	subs    map[int]func(domain.CartSnapshot)
	nextSub int

	// FailMutations makes every mutation return an error, emulating a
	// host-rejected write.
	FailMutations bool
}

func NewMemoryHost(caps Capabilities, lines ...domain.CartLine) *MemoryHost {
	return &MemoryHost{
		lines: lines,
		caps:  caps,
		subs:  make(map[int]func(domain.CartSnapshot)),
	}
}

func (h *MemoryHost) Current() domain.CartSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *MemoryHost) Subscribe(fn func(domain.CartSnapshot)) func() {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

func (h *MemoryHost) Capabilities() Capabilities {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.caps
}

func (h *MemoryHost) AddLine(_ context.Context, merchandiseGID string, quantity int) error {
	h.mu.Lock()
	if h.FailMutations {
		h.mu.Unlock()
		return errors.New("host rejected add")
	}
	h.lines = append(h.lines, domain.CartLine{
		ID:             uuid.NewString(),
		MerchandiseGID: merchandiseGID,
		Quantity:       quantity,
	})
	snap, subs := h.snapshotLocked(), h.subscribersLocked()
	h.mu.Unlock()

	push(snap, subs)
	return nil
}

func (h *MemoryHost) SetLineQuantity(_ context.Context, lineID string, quantity int) error {
	h.mu.Lock()
	if h.FailMutations {
		h.mu.Unlock()
		return errors.New("host rejected update")
	}
	found := false
	for i := range h.lines {
		if h.lines[i].ID == lineID {
			h.lines[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		h.mu.Unlock()
		return errors.New("line not found")
	}
	snap, subs := h.snapshotLocked(), h.subscribersLocked()
	h.mu.Unlock()

	push(snap, subs)
	return nil
}

// SetLines replaces the cart wholesale and notifies subscribers, emulating
// edits the buyer makes outside the extension.
func (h *MemoryHost) SetLines(lines []domain.CartLine) {
	h.mu.Lock()
	h.lines = append([]domain.CartLine(nil), lines...)
	snap, subs := h.snapshotLocked(), h.subscribersLocked()
	h.mu.Unlock()

	push(snap, subs)
}

func (h *MemoryHost) snapshotLocked() domain.CartSnapshot {
	lines := make([]domain.CartLine, len(h.lines))
	copy(lines, h.lines)
	return domain.CartSnapshot{Lines: lines}
}

func (h *MemoryHost) subscribersLocked() []func(domain.CartSnapshot) {
	subs := make([]func(domain.CartSnapshot), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	return subs
}

// push runs outside the host lock so a subscriber may call back into the
// host without deadlocking.
func push(snap domain.CartSnapshot, subs []func(domain.CartSnapshot)) {
	for _, fn := range subs {
		fn(snap)
	}
}
