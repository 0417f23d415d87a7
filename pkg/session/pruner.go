package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner runs a store's Prune on a cron schedule. It exists for long-lived
// deployments on the file or Postgres backend; a process that handles one
// request and exits should prune out of band instead.
type Pruner struct {
	store    Prunable
	cron     *cron.Cron
	log      *slog.Logger
	schedule string
	maxAge   time.Duration
	timeout  time.Duration
}

// PrunerOption configures a Pruner.
type PrunerOption func(*Pruner)

// WithPruneSchedule sets the cron schedule. Accepts standard five-field
// specs and descriptors like "@hourly", the default.
func WithPruneSchedule(spec string) PrunerOption {
	return func(p *Pruner) {
		if spec != "" {
			p.schedule = spec
		}
	}
}

// WithPruneMaxAge sets how old a record must be to be discarded. Defaults
// to 24h.
func WithPruneMaxAge(maxAge time.Duration) PrunerOption {
	return func(p *Pruner) {
		if maxAge > 0 {
			p.maxAge = maxAge
		}
	}
}

// WithPruneLogger sets the logger for prune runs. Defaults to discarding.
func WithPruneLogger(log *slog.Logger) PrunerOption {
	return func(p *Pruner) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPruner wraps a prunable store with a scheduler. Call Start to begin and
// Stop to drain.
func NewPruner(store Prunable, opts ...PrunerOption) *Pruner {
	p := &Pruner{
		store:    store,
		cron:     cron.New(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		schedule: "@hourly",
		maxAge:   24 * time.Hour,
		timeout:  time.Minute,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start registers the schedule and starts the scheduler in its own
// goroutine. It fails only on an unparsable schedule.
func (p *Pruner) Start() error {
	if _, err := p.cron.AddFunc(p.schedule, p.run); err != nil {
		return fmt.Errorf("schedule session prune: %w", err)
	}
	p.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for an in-flight run to finish.
func (p *Pruner) Stop() {
	<-p.cron.Stop().Done()
}

// Run prunes once, immediately. Start does not call it; schedule descriptors
// fire at the next boundary, so a caller wanting a sweep on boot runs this
// first.
func (p *Pruner) Run(ctx context.Context) (int, error) {
	return p.store.Prune(ctx, p.maxAge)
}

func (p *Pruner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	n, err := p.store.Prune(ctx, p.maxAge)
	if err != nil {
		p.log.Error("session prune failed", "error", err)
		return
	}
	if n > 0 {
		p.log.Info("pruned expired sessions", "count", n)
	}
}
