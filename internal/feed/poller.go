package feed

import (
	"context"
	"errors"
	"time"

	"minilcd/internal/comm"
	"minilcd/internal/logx"
)

// Sender accepts messages bound for the display core.
type Sender interface {
	Send(msg comm.Message)
}

// Poller fetches from a Source at most once per interval and forwards each
// parsed sample. Fetches run inline, so only one is ever in flight.
type Poller struct {
	src      Source
	out      Sender
	log      *logx.Logger
	interval uint64
	timeout  time.Duration

	polled bool
	last   uint64

	sent     int
	failures int
}

// NewPoller polls src every interval ms. A zero interval polls on every
// Process call. A zero timeout leaves the fetch bounded only by ctx.
func NewPoller(src Source, out Sender, log *logx.Logger, interval uint64, timeout time.Duration) *Poller {
	return &Poller{src: src, out: out, log: log, interval: interval, timeout: timeout}
}

// Process polls if the interval has elapsed since the last attempt.
func (p *Poller) Process(ctx context.Context, now uint64) {
	if p.polled && now-p.last < p.interval {
		return
	}
	p.polled = true
	p.last = now

	fctx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	body, err := p.src.Fetch(fctx)
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			p.failures++
			p.log.Warnf("fetch failed: %v", err)
		}
		return
	}
	msg, err := Parse(body)
	if err != nil {
		p.failures++
		p.log.Warnf("%v", err)
		return
	}
	p.out.Send(msg)
	p.sent++
	p.log.Debugf("measurements sent to display core")
}

// Sent returns the number of messages forwarded so far.
func (p *Poller) Sent() int { return p.sent }

// Failures counts fetch and parse errors.
func (p *Poller) Failures() int { return p.failures }
