package app

import (
	"context"
	"time"

	"minilcd/hal"
	"minilcd/internal/comm"
	"minilcd/internal/feed"
	"minilcd/internal/logx"
)

// Network is the producing core: it polls the feed and frames the results
// onto the cross-core FIFO.
type Network struct {
	clock  hal.Clock
	sender *comm.Sender
	poller *feed.Poller
}

// NewNetwork polls src every interval ms.
func NewNetwork(h hal.HAL, src feed.Source, interval uint64, timeout time.Duration, log *logx.Logger) *Network {
	sender := comm.NewSender(h.FIFO(), log.With("comm"))
	return &Network{
		clock:  h.Clock(),
		sender: sender,
		poller: feed.NewPoller(src, sender, log.With("feed"), interval, timeout),
	}
}

// Step polls when due and writes at most one queued message.
func (n *Network) Step(ctx context.Context) {
	n.poller.Process(ctx, n.clock.Millis())
	n.sender.Process()
}

// Run steps until ctx is done.
func (n *Network) Run(ctx context.Context) {
	for ctx.Err() == nil {
		n.Step(ctx)
		time.Sleep(time.Millisecond)
	}
}

// Sender is the queue feeding the display core.
func (n *Network) Sender() *comm.Sender { return n.sender }
