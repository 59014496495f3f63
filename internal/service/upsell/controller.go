// Package upsell implements the recommendation flow shared by the POS and
// checkout surfaces: watch the cart, fetch recommendations for its variant
// set, and apply capability-gated adds back through the host.
package upsell

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"merchant-upsell/internal/debounce"
	"merchant-upsell/internal/domain"
	"merchant-upsell/internal/gid"
	"merchant-upsell/internal/host"
)

// Recommender fetches a sanitized recommendation list for the given numeric
// cart variant IDs.
type Recommender interface {
	Recommend(ctx context.Context, cartVariantIDs []string) ([]domain.Recommendation, error)
}

// Hydrator enriches a recommendation list. Hydration is best-effort; it
// never fails the fetch.
type Hydrator interface {
	Hydrate(ctx context.Context, recs []domain.Recommendation) []domain.Recommendation
}

// Options tune the controller per surface.
type Options struct {
	// Debounce is the settle delay after the last cart signature change
	// before fetching. Zero fetches immediately (POS action surfaces).
	Debounce time.Duration

	// Hydrator, when set, runs on successful non-empty fetches (POS modal).
	Hydrator Hydrator

	// Toaster, when set, receives add confirmations.
	Toaster host.Toaster
}

// Controller owns the per-surface upsell state: fetch status, the current
// recommendation list, the in-flight adding set, and the banner.
type Controller struct {
	source      host.CartSource
	mutator     host.CartMutator
	recommender Recommender
	hydrator    Hydrator
	toaster     host.Toaster
	logger      *log.Logger
	deb         *debounce.Debouncer

	mu            sync.Mutex
	status        domain.FetchStatus
	recs          []domain.Recommendation
	message       string
	bannerVisible bool
	adding        map[string]struct{}
	suppressNext  bool
	signature     string
	generation    uint64
	unsubscribe   func()
}

func New(source host.CartSource, mutator host.CartMutator, recommender Recommender, logger *log.Logger, opts Options) *Controller {
	return &Controller{
		source:      source,
		mutator:     mutator,
		recommender: recommender,
		hydrator:    opts.Hydrator,
		toaster:     opts.Toaster,
		logger:      logger,
		deb:         debounce.New(opts.Debounce),
		status:      domain.StatusIdle,
		adding:      make(map[string]struct{}),
	}
}

// Start subscribes to cart pushes and processes the current snapshot. ctx
// bounds all fetches triggered by cart changes.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.unsubscribe == nil {
		c.unsubscribe = c.source.Subscribe(func(snap domain.CartSnapshot) {
			c.onCartChanged(ctx, snap)
		})
	}
	c.mu.Unlock()

	c.onCartChanged(ctx, c.source.Current())
}

// Stop unsubscribes and drops any pending scheduled fetch.
func (c *Controller) Stop() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	c.deb.Cancel()
}

func (c *Controller) onCartChanged(ctx context.Context, snap domain.CartSnapshot) {
	sig := strings.Join(cartVariantIDs(snap), ",")

	c.mu.Lock()
	if c.suppressNext {
		// This push is the echo of our own add; consume the flag and keep
		// the current list instead of refetching.
		c.suppressNext = false
		c.signature = sig
		c.mu.Unlock()
		return
	}
	if sig == c.signature && c.status.Terminal() {
		// Quantity-only edits keep the variant set and need no refetch.
		c.mu.Unlock()
		return
	}
	c.signature = sig

	if sig == "" {
		// Empty cart settles without a network call.
		c.generation++
		c.recs = nil
		c.transitionLocked(domain.StatusEmpty, "")
		c.mu.Unlock()
		c.deb.Cancel()
		return
	}
	c.mu.Unlock()

	c.deb.Trigger(func() { c.refresh(ctx) })
}

// Refresh forces an immediate fetch, bypassing the debounce. This is the
// user-tapped retry path.
func (c *Controller) Refresh(ctx context.Context) {
	c.deb.Cancel()
	c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) {
	ids := cartVariantIDs(c.source.Current())

	c.mu.Lock()
	c.generation++
	if len(ids) == 0 {
		c.recs = nil
		c.transitionLocked(domain.StatusEmpty, "")
		c.mu.Unlock()
		return
	}
	myGen := c.generation
	c.transitionLocked(domain.StatusLoading, "")
	c.mu.Unlock()

	recs, err := c.recommender.Recommend(ctx, ids)
	if err == nil && len(recs) > 0 && c.hydrator != nil {
		recs = c.hydrator.Hydrate(ctx, recs)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if myGen != c.generation {
		// A newer fetch superseded this one; drop the stale result.
		return
	}
	switch {
	case err != nil:
		c.logger.Printf("recommendation fetch failed: %v", err)
		c.recs = nil
		c.transitionLocked(domain.StatusError, "Couldn't load recommendations. Try again.")
	case len(recs) == 0:
		c.recs = nil
		c.transitionLocked(domain.StatusEmpty, "No recommendations for this cart yet.")
	default:
		c.recs = recs
		c.transitionLocked(domain.StatusSuccess, "")
	}
}

// CanAdd reports whether the host permits any cart write. When false the
// entire add feature is disabled on the surface.
func (c *Controller) CanAdd() bool {
	caps := c.mutator.Capabilities()
	return caps.CanAddCartLine || caps.CanUpdateCartLine
}

// Add applies one recommendation to the cart: a quantity increment when the
// variant is already a cart line and updates are permitted, otherwise a new
// line with quantity 1. Concurrent adds for the same variant are rejected
// with ErrAddInFlight; adds for different variants may overlap.
func (c *Controller) Add(ctx context.Context, rec domain.Recommendation) error {
	caps := c.mutator.Capabilities()
	if !caps.CanAddCartLine && !caps.CanUpdateCartLine {
		return domain.ErrAddsUnavailable
	}

	c.mu.Lock()
	if _, inFlight := c.adding[rec.VariantID]; inFlight {
		c.mu.Unlock()
		return domain.ErrAddInFlight
	}
	c.adding[rec.VariantID] = struct{}{}
	// Set before the mutation so the host's own push cannot outrun the
	// flag; cleared below if the mutation fails.
	c.suppressNext = true
	c.mu.Unlock()

	err := c.applyAdd(ctx, rec, caps)

	c.mu.Lock()
	delete(c.adding, rec.VariantID)
	if err != nil {
		c.suppressNext = false
		c.transitionLocked(domain.StatusError, fmt.Sprintf("Couldn't add %s to the cart.", rec.ProductTitle))
	}
	c.mu.Unlock()

	if err != nil {
		return err
	}
	if c.toaster != nil {
		c.toaster.Show(fmt.Sprintf("Added %s", rec.ProductTitle))
	}
	return nil
}

func (c *Controller) applyAdd(ctx context.Context, rec domain.Recommendation, caps host.Capabilities) error {
	globalID := gid.ToGlobalID(rec.VariantID)

	if line, ok := c.source.Current().LineByMerchandise(globalID); ok && caps.CanUpdateCartLine {
		return c.mutator.SetLineQuantity(ctx, line.ID, line.Quantity+1)
	}
	if !caps.CanAddCartLine {
		return domain.ErrAddsUnavailable
	}
	return c.mutator.AddLine(ctx, globalID, 1)
}

// AddAll applies every current recommendation sequentially, awaiting each
// host mutation before issuing the next to avoid concurrent cart writes.
// Adds already in flight are skipped; the first hard failure stops the run.
func (c *Controller) AddAll(ctx context.Context) error {
	for _, rec := range c.Recommendations() {
		if err := c.Add(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrAddInFlight) {
				continue
			}
			return err
		}
	}
	return nil
}

// Status returns the current fetch status.
func (c *Controller) Status() domain.FetchStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Recommendations returns a copy of the current list.
func (c *Controller) Recommendations() []domain.Recommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Recommendation, len(c.recs))
	copy(out, c.recs)
	return out
}

// Adding reports whether an add for the variant is in flight, for disabling
// its button.
func (c *Controller) Adding(variantID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.adding[variantID]
	return ok
}

// Banner returns the banner visibility and its message.
func (c *Controller) Banner() (visible bool, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bannerVisible, c.message
}

// DismissBanner hides the banner until the next transition that carries new
// information.
func (c *Controller) DismissBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bannerVisible = false
}

func (c *Controller) transitionLocked(status domain.FetchStatus, message string) {
	if status != c.status || message != c.message {
		c.bannerVisible = true
	}
	c.status = status
	c.message = message
}

// cartVariantIDs normalizes the snapshot's merchandise IDs to unique numeric
// IDs, preserving line order.
func cartVariantIDs(snap domain.CartSnapshot) []string {
	ids := make([]string, 0, len(snap.Lines))
	seen := make(map[string]struct{}, len(snap.Lines))
	for _, line := range snap.Lines {
		numeric, ok := gid.ToNumeric(line.MerchandiseGID)
		if !ok {
			continue
		}
		if _, dup := seen[numeric]; dup {
			continue
		}
		seen[numeric] = struct{}{}
		ids = append(ids, numeric)
	}
	return ids
}
