package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Poller periodically retries pending remote writes and re-merges artifacts
// for the sessions this process is serving. It backs up the artifact event
// consumer when events are lost or disabled.
type Poller struct {
	rec      *Reconciler
	interval time.Duration
	batch    int64
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewPoller(rec *Reconciler, interval time.Duration, batch int64, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batch <= 0 {
		batch = 50
	}
	return &Poller{rec: rec, interval: interval, batch: batch, logger: logger}
}

func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(context.WithoutCancel(ctx))
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Tick(ctx)
			}
		}
	}()
	p.logger.Info("draft poller started", "interval", p.interval, "batch", p.batch)
}

func (p *Poller) Stop(ctx context.Context) error {
	p.once.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
	})
	if p.done != nil {
		select {
		case <-p.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.rec.Drain()
	p.logger.Info("draft poller stopped")
	return nil
}

// Tick runs one polling round.
func (p *Poller) Tick(ctx context.Context) {
	n, err := p.rec.RetryPending(ctx, p.batch)
	if err != nil {
		p.logger.Warn("pending draft scan failed", "error", err)
	} else if n > 0 {
		p.logger.Info("retried pending drafts", "count", n)
	}

	if n := p.rec.Evict(ctx); n > 0 {
		p.logger.Debug("forgot idle draft sessions", "count", n)
	}

	if p.rec.lookup == nil {
		return
	}
	sessions := p.rec.Sessions()
	if int64(len(sessions)) > p.batch {
		sessions = sessions[:p.batch]
	}
	for _, id := range sessions {
		if ctx.Err() != nil {
			return
		}
		p.remerge(ctx, id)
	}
}

// remerge does not count as session activity, so idle sessions still age out.
func (p *Poller) remerge(ctx context.Context, sessionID string) {
	if _, ok := p.rec.localCopy(ctx, sessionID); !ok {
		return
	}
	refs, err := p.rec.lookup.RefsBySession(ctx, sessionID)
	if err != nil {
		p.logger.Warn("artifact lookup failed", "session_id", sessionID, "error", err)
		return
	}
	if len(refs) == 0 {
		return
	}
	_, added, err := p.rec.merge(ctx, p.rec.session(sessionID, false), sessionID, refs)
	if err != nil {
		p.logger.Warn("artifact merge failed", "session_id", sessionID, "error", err)
		return
	}
	if added > 0 {
		p.logger.Info("merged late artifacts", "session_id", sessionID, "added", added)
	}
}
