package notify

import (
	"context"
	"sync"
	"time"

	"art-auction/internal/metrics"
	model "art-auction/internal/models"
	"art-auction/utils"

	"golang.org/x/sync/semaphore"
)

// BidEvent describes an accepted, durably committed bid
type BidEvent struct {
	ProductID   string  `json:"product_id"`
	BidderID    string  `json:"bidder_id"`
	Amount      float64 `json:"amount"`
	NextMinBid  float64 `json:"next_min_bid"`
	BidderName  string  `json:"-"`
	BidderEmail string  `json:"-"`
}

// Mailer is the email collaborator, invoked as a best-effort side-effect
type Mailer interface {
	NotifyBidAccepted(ctx context.Context, bidderName, bidderEmail string) error
}

// SnapshotFunc returns the rolling latest-bids snapshot pushed after each event
type SnapshotFunc func(ctx context.Context) ([]model.BidView, error)

// Dispatcher decouples fan-out from the placement path. Events go through a bounded
// queue drained by Run; a full queue drops the event.
type Dispatcher struct {
	hub          *Hub
	mailer       Mailer
	snapshot     SnapshotFunc
	queue        chan BidEvent
	emails       *semaphore.Weighted
	emailTimeout time.Duration
	wg           sync.WaitGroup
}

// NewDispatcher wires the hub, an optional mailer and an optional snapshot source
func NewDispatcher(hub *Hub, mailer Mailer, snapshot SnapshotFunc, queueSize, emailConcurrency int) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	if emailConcurrency < 1 {
		emailConcurrency = 1
	}
	return &Dispatcher{
		hub:          hub,
		mailer:       mailer,
		snapshot:     snapshot,
		queue:        make(chan BidEvent, queueSize),
		emails:       semaphore.NewWeighted(int64(emailConcurrency)),
		emailTimeout: 15 * time.Second,
	}
}

// BidAccepted enqueues an event and never blocks
func (d *Dispatcher) BidAccepted(evt BidEvent) {
	select {
	case d.queue <- evt:
	default:
		metrics.FanoutDropped.WithLabelValues("queue").Inc()
		utils.Warn("dispatcher: queue full, event dropped", map[string]any{
			"product_id": evt.ProductID,
			"amount":     evt.Amount,
		})
	}
}

// Run delivers queued events until ctx is cancelled, then waits for in-flight emails
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.wg.Wait()
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-d.queue:
			d.deliver(ctx, evt)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, evt BidEvent) {
	d.hub.Broadcast(Message{Event: EventBidUpdated, Data: evt})

	if d.snapshot != nil {
		latest, err := d.snapshot(ctx)
		if err != nil {
			utils.Warn("dispatcher: latest bids snapshot failed", map[string]any{"error": err.Error()})
		} else {
			d.hub.Broadcast(Message{Event: EventLatestBids, Data: latest})
		}
	}

	d.sendEmail(ctx, evt)
}

func (d *Dispatcher) sendEmail(ctx context.Context, evt BidEvent) {
	if d.mailer == nil || evt.BidderEmail == "" {
		return
	}
	if !d.emails.TryAcquire(1) {
		metrics.FanoutDropped.WithLabelValues("email").Inc()
		utils.Warn("dispatcher: email concurrency exhausted, email dropped", map[string]any{
			"bidder_id": evt.BidderID,
		})
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.emails.Release(1)
		defer func() {
			if r := recover(); r != nil {
				utils.Error("dispatcher: mailer panicked", map[string]any{"panic": r})
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.emailTimeout)
		defer cancel()
		if err := d.mailer.NotifyBidAccepted(ctx, evt.BidderName, evt.BidderEmail); err != nil {
			utils.Warn("dispatcher: bid email failed", map[string]any{
				"bidder_id": evt.BidderID,
				"error":     err.Error(),
			})
		}
	}()
}
