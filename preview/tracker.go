package preview

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Status of one URL's preview slot.
type Status int

const (
	// StatusUnknown means the URL has never been requested.
	StatusUnknown Status = iota
	// StatusLoading means a probe is in flight.
	StatusLoading
	// StatusReady means the last probe resolved to a loadable image.
	StatusReady
	// StatusBroken means the last probe failed; the slot renders no preview.
	StatusBroken
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusBroken:
		return "broken"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Tracker owns preview state for the image URLs a draft array references.
// Probes are fire-and-forget with no ordering guarantee: each result lands
// only in its own URL's slot, and a result arriving for a slot that was
// forgotten or re-requested in the meantime is discarded. There is no
// cancellation path; discard-on-arrival covers removal races.
type Tracker struct {
	prober *Prober
	logger *zap.Logger

	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	generation int
	status     Status
}

// NewTracker builds a tracker probing through prober.
func NewTracker(prober *Prober, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		prober: prober,
		logger: logger,
		slots:  make(map[string]*slot),
	}
}

// Request marks the URL's slot loading and starts a probe for it. A later
// Request for the same URL supersedes the in-flight probe; the superseded
// result is discarded when it arrives.
func (t *Tracker) Request(url string) {
	t.mu.Lock()
	s, ok := t.slots[url]
	if !ok {
		s = &slot{}
		t.slots[url] = s
	}
	s.generation++
	s.status = StatusLoading
	generation := s.generation
	t.mu.Unlock()

	go t.probe(url, generation)
}

func (t *Tracker) probe(url string, generation int) {
	ctx, cancel := context.WithTimeout(context.Background(), t.prober.cfg.Timeout)
	defer cancel()
	res := t.prober.Check(ctx, url)

	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots[url]
	if !ok || s.generation != generation {
		t.logger.Debug("Discarding stale image probe result",
			zap.String("url", url),
			zap.Bool("ok", res.OK),
		)
		return
	}
	if res.OK {
		s.status = StatusReady
	} else {
		s.status = StatusBroken
	}
}

// Status reports the current preview state for url.
func (t *Tracker) Status(url string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.slots[url]; ok {
		return s.status
	}
	return StatusUnknown
}

// Forget drops the slot for url. An in-flight probe for it is discarded on
// arrival.
func (t *Tracker) Forget(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.slots, url)
}

// Reset drops every slot, for workflow teardown.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots = make(map[string]*slot)
}
