// Package leaderboard is the asynchronous score-store collaborator.
// Submissions are fire-and-forget and fetches are polled, so callers on
// the tick loop never block on disk or network I/O.
package leaderboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultTop is the number of entries shown on the leaderboard screen.
const DefaultTop = 5

const (
	queueSize      = 32
	defaultTimeout = 5 * time.Second
)

// ErrClosed is returned for work queued after Close.
var ErrClosed = errors.New("leaderboard: client closed")

// Entry is one leaderboard row.
type Entry struct {
	Name  string
	Score int
}

// Backend stores scores. Implementations may block.
// SubmitScore keeps one row per name and only raises it.
type Backend interface {
	SubmitScore(ctx context.Context, name string, score int) error
	TopScores(ctx context.Context, n int) ([]Entry, error)
}

// Fetch is an in-flight top-N request. Poll never blocks.
type Fetch struct {
	done    chan struct{}
	entries []Entry
}

func newFetch() *Fetch {
	return &Fetch{done: make(chan struct{})}
}

// Resolved returns a fetch that is already complete.
func Resolved(entries []Entry) *Fetch {
	f := newFetch()
	f.resolve(entries)
	return f
}

func (f *Fetch) resolve(entries []Entry) {
	f.entries = entries
	close(f.done)
}

// Poll returns the entries and true once the fetch has completed.
func (f *Fetch) Poll() ([]Entry, bool) {
	select {
	case <-f.done:
		return f.entries, true
	default:
		return nil, false
	}
}

// Done is closed when the fetch completes.
func (f *Fetch) Done() <-chan struct{} {
	return f.done
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each backend call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// Client serializes score-store work on one background worker, so a fetch
// queued after a submit observes it.
type Client struct {
	backend Backend
	log     *log.Logger
	timeout time.Duration

	jobs  chan func()
	group errgroup.Group

	mu     sync.Mutex
	closed bool
	cache  []Entry
}

// NewClient starts a client over backend.
func NewClient(backend Backend, logger *log.Logger, opts ...Option) *Client {
	c := &Client{
		backend: backend,
		log:     logger,
		timeout: defaultTimeout,
		jobs:    make(chan func(), queueSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.group.Go(func() error {
		for job := range c.jobs {
			job()
		}
		return nil
	})
	return c
}

// enqueue schedules job unless the client is closed or the queue is full.
func (c *Client) enqueue(job func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.jobs <- job:
		return nil
	default:
		return errors.New("leaderboard: queue full")
	}
}

// Submit records a score in the background. Failures are logged and dropped.
func (c *Client) Submit(name string, score int) {
	err := c.enqueue(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.backend.SubmitScore(ctx, name, score); err != nil {
			c.log.Warn("score submit failed", "name", name, "score", score, "err", err)
			return
		}
		c.log.Debug("score submitted", "name", name, "score", score)
	})
	if err != nil {
		c.log.Warn("score submit dropped", "name", name, "score", score, "err", err)
	}
}

// FetchTop requests the best n entries. On failure, or when ctx is canceled,
// the fetch resolves to the last good list (possibly empty).
func (c *Client) FetchTop(ctx context.Context, n int) *Fetch {
	f := newFetch()
	err := c.enqueue(func() {
		if ctx.Err() != nil {
			f.resolve(c.Cached())
			return
		}
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		entries, err := c.backend.TopScores(callCtx, n)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.log.Warn("leaderboard fetch failed, using cached list", "err", err)
			}
			f.resolve(c.Cached())
			return
		}
		entries = Top(entries, n)
		c.mu.Lock()
		c.cache = entries
		c.mu.Unlock()
		f.resolve(append([]Entry(nil), entries...))
	})
	if err != nil {
		c.log.Warn("leaderboard fetch dropped", "err", err)
		f.resolve(c.Cached())
	}
	return f
}

// Cached returns a copy of the last successfully fetched list.
func (c *Client) Cached() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.cache...)
}

// Close stops accepting work and waits for queued work to finish.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.jobs)
	c.mu.Unlock()
	return c.group.Wait()
}

// Top sorts entries by score descending (name ascending on ties) and keeps n.
func Top(entries []Entry, n int) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
