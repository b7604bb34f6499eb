package board

import (
	"context"
	"log"
	"sync"

	"github.com/blub-trading/board-proxy/config"
	vl "github.com/blub-trading/board-proxy/volumes_leaderboard"
)

// PageFetcher fetches one leaderboard page for a query state
type PageFetcher interface {
	FetchPage(ctx context.Context, state vl.QueryState) (*vl.PageEnvelope, error)
}

// Controller owns the single current query state and the last fetched page,
// replacing both atomically. Every fetch is tagged with the state it was
// issued for; a response that arrives after the state has moved on is
// discarded, so a slow stale response can never overwrite a newer one.
type Controller struct {
	fetcher  PageFetcher
	config   *config.Config
	debounce *Debouncer

	ctx context.Context

	mu            sync.Mutex
	state         vl.QueryState
	pendingSearch string
	latest        *vl.PageEnvelope
	loading       bool
	lastErr       error
}

// NewController creates a controller starting from the default query state
func NewController(fetcher PageFetcher, cfg *config.Config) *Controller {
	c := &Controller{
		fetcher: fetcher,
		config:  cfg,
		state:   vl.DefaultQueryState(),
	}
	c.debounce = NewDebouncer(DefaultSearchDebounce, c.applySearch)
	return c
}

// Start loads the initial page. The given context is also used for fetches
// triggered later by debounced search input.
func (c *Controller) Start(ctx context.Context) error {
	c.ctx = ctx
	return c.Refresh(ctx)
}

// Stop cancels any pending debounced search
func (c *Controller) Stop() {
	c.debounce.Stop()
}

// Refresh fetches the page for the current state. If the state changes while
// the request is in flight the response is dropped.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	issued := c.state
	c.loading = true
	c.mu.Unlock()

	page, err := c.fetcher.FetchPage(ctx, issued)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Once the state has moved on, loading and lastErr belong to the
	// superseding fetch. A stale result, success or error, must not touch them.
	if c.state != issued {
		log.Printf("Board: Discarding stale response for page %d (state moved on)", issued.Page)
		return nil
	}

	c.loading = false
	if err != nil {
		c.lastErr = err
		return err
	}

	c.lastErr = nil
	c.latest = page
	return nil
}

// SetSearch records new search input. The fetch is debounced so a burst of
// keystrokes coalesces into one request.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	c.pendingSearch = text
	c.mu.Unlock()

	c.debounce.Call()
}

// applySearch runs after the debounce window settles
func (c *Controller) applySearch() {
	c.mu.Lock()
	next := c.state.WithSearch(c.pendingSearch)
	if next == c.state {
		c.mu.Unlock()
		return
	}
	c.state = next
	ctx := c.ctx
	c.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.Refresh(ctx); err != nil {
		log.Printf("Board: Search fetch failed: %v", err)
	}
}

// SetPage moves to the given page and fetches it
func (c *Controller) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.state = c.state.WithPage(page)
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetLimit changes the page size, back on page 1. Page sizes outside the
// allowed set are rejected.
func (c *Controller) SetLimit(ctx context.Context, limit int) error {
	if !c.config.Leaderboard.LimitAllowed(limit) {
		return ErrLimitNotAllowed
	}

	c.mu.Lock()
	c.state = c.state.WithLimit(limit)
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// RequestSort applies the sort toggle for a UI column key and fetches page 1
// of the new order. Unmapped keys fail fast.
func (c *Controller) RequestSort(ctx context.Context, key string) error {
	if _, err := vl.APIFieldForUIKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	c.state = c.state.WithSort(key)
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// State returns the current query state
func (c *Controller) State() vl.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Latest returns the last successfully fetched page, or nil
func (c *Controller) Latest() *vl.PageEnvelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

// Loading reports whether a fetch for the current state is outstanding
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the last completed fetch, if any
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Window computes the pagination controls for the last fetched page
func (c *Controller) Window() []PageItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest == nil {
		return nil
	}
	return WindowPages(c.latest.Pagination.Page, c.latest.Pagination.Pages)
}
