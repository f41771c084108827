// Package sync implements the content synchronization loop: conditional
// fetches keyed by ETag, a fixed polling interval, broadcast-triggered
// refreshes, a static fallback document, and a local preview override.
//
// The loop is single-threaded cooperative: one fetch in flight at a time
// per client; a fetch already in progress suppresses a new one triggered by
// the timer or a broadcast signal.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"livecontent/internal/common"
)

// Applier receives each newly resolved document. The document is passed
// explicitly; the client holds the only cached copy.
type Applier func(doc Document)

// CacheEntry is the last successfully fetched document plus the ETag it was
// served with. It is never discarded on a failed fetch and replaced only by
// a strictly newer successful fetch.
type CacheEntry struct {
	Document Document
	ETag     string
}

// Options configures a sync client.
type Options struct {
	// BaseURL is the content service base URL.
	BaseURL string

	// FallbackPath is the bundled static document used when the primary
	// endpoint reports not found (server not deployed).
	FallbackPath string

	// PollInterval is the fixed polling cadence. Zero disables the timer;
	// broadcast signals still trigger fetches.
	PollInterval time.Duration

	// RequestTimeout bounds a single fetch attempt.
	RequestTimeout time.Duration

	// Override holds the local preview document, may be nil.
	Override *Override

	// Broadcaster distributes refresh signals, may be nil.
	Broadcaster *Broadcaster

	// Apply is called with the resolved document after each applied fetch.
	Apply Applier
}

type Client struct {
	opts       Options
	httpClient *http.Client

	mu           sync.Mutex
	cache        CacheEntry
	fellBack     bool
	inFlight     atomic.Bool
}

func NewClient(opts Options) *Client {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 4 * time.Second
	}
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.RequestTimeout},
	}
}

// Cache returns a copy of the current cache entry.
func (c *Client) Cache() CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache
}

// FetchOnce performs one fetch cycle. It never clears the cached document:
// a failure keeps the previous state so stale-but-valid content keeps being
// shown instead of a blank page.
func (c *Client) FetchOnce(ctx context.Context) Result {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{Outcome: OutcomeSkipped}
	}
	defer c.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/api/content", nil)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}
	if etag := c.Cache().ETag; etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("%w: %v", common.ErrNetwork, err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotModified:
		return Result{Outcome: OutcomeUnchanged}

	case http.StatusOK:
		var doc Document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)}
		}
		c.applyFetched(doc, resp.Header.Get("ETag"))
		return Result{Outcome: OutcomeApplied}

	case http.StatusNotFound:
		// Server not deployed or endpoint unconfigured: use the bundled
		// static document as the base.
		return c.fetchFallback()

	default:
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}
}

func (c *Client) fetchFallback() Result {
	c.mu.Lock()
	alreadyFellBack := c.fellBack
	c.mu.Unlock()
	if alreadyFellBack {
		// The fallback document is static; one load is enough.
		return Result{Outcome: OutcomeUnchanged, Fallback: true}
	}

	if c.opts.FallbackPath == "" {
		return Result{Outcome: OutcomeFailed, Err: common.ErrNotFound, Fallback: true}
	}

	raw, err := os.ReadFile(c.opts.FallbackPath)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err, Fallback: true}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("%w: %v", common.ErrInvalidPayload, err), Fallback: true}
	}

	c.mu.Lock()
	c.fellBack = true
	c.mu.Unlock()

	c.applyFetched(doc, "")
	return Result{Outcome: OutcomeApplied, Fallback: true}
}

func (c *Client) applyFetched(doc Document, etag string) {
	c.mu.Lock()
	c.cache = CacheEntry{Document: doc, ETag: etag}
	c.mu.Unlock()

	if c.opts.Apply != nil {
		c.opts.Apply(c.Resolved())
	}
}

// Resolved returns the cached document with the local override shallow-merged
// over its top level.
func (c *Client) Resolved() Document {
	cache := c.Cache()
	return MergeOverride(cache.Document, c.opts.Override.Load())
}

// Run fetches immediately, then loops on the poll timer and broadcast
// signals until ctx is canceled. Page unload is simply ctx cancellation;
// there is no separate cancel API.
func (c *Client) Run(ctx context.Context) {
	var signals <-chan struct{}
	if c.opts.Broadcaster != nil {
		ch, cancel := c.opts.Broadcaster.Subscribe()
		defer cancel()
		signals = ch
	}

	c.FetchOnce(ctx)

	var tick <-chan time.Time
	if c.opts.PollInterval > 0 {
		ticker := time.NewTicker(c.opts.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			c.FetchOnce(ctx)
		case <-signals:
			c.FetchOnce(ctx)
		}
	}
}
