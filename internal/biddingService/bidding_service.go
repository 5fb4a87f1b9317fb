package bidding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"art-auction/internal/biddingerrors"
	"art-auction/internal/metrics"
	"art-auction/internal/models"
	"art-auction/internal/notify"
	"art-auction/internal/repository"
	"art-auction/utils"

	"github.com/jpillora/backoff"
	"github.com/shopspring/decimal"
)

const (
	// TopBidsLimit is the size of a product's ranked bid list
	TopBidsLimit = 5
	// LatestBidsLimit is the size of the rolling latest-bids snapshot
	LatestBidsLimit = 5

	monetaryPrecision int32 = 2
)

// Notifier receives accepted bids after they are committed. Implementations must not block.
type Notifier interface {
	BidAccepted(evt notify.BidEvent)
}

type noopNotifier struct{}

func (noopNotifier) BidAccepted(notify.BidEvent) {}

// BiddingService is the bid placement engine. It is the only path that creates bids.
type BiddingService struct {
	ledger   repository.BidLedger
	catalog  repository.Catalog
	bidders  repository.BidderDirectory
	notifier Notifier
	locks    *productLocks
	now      func() time.Time

	linkAttempts   int
	linkBackoffMin time.Duration
	linkBackoffMax time.Duration
	commitTimeout  time.Duration
}

// Option customizes a BiddingService
type Option func(*BiddingService)

// WithNotifier sets the fan-out target for accepted bids
func WithNotifier(n Notifier) Option {
	return func(s *BiddingService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLinkRetry sets how often and how patiently a failed product link is retried
func WithLinkRetry(attempts int, min, max time.Duration) Option {
	return func(s *BiddingService) {
		if attempts > 0 {
			s.linkAttempts = attempts
		}
		s.linkBackoffMin = min
		s.linkBackoffMax = max
	}
}

// WithClock overrides the bid timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) { s.now = now }
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(ledger repository.BidLedger, catalog repository.Catalog, bidders repository.BidderDirectory, opts ...Option) *BiddingService {
	s := &BiddingService{
		ledger:         ledger,
		catalog:        catalog,
		bidders:        bidders,
		notifier:       noopNotifier{},
		locks:          newProductLocks(),
		now:            func() time.Time { return time.Now().UTC() },
		linkAttempts:   3,
		linkBackoffMin: 50 * time.Millisecond,
		linkBackoffMax: time.Second,
		commitTimeout:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid validates and commits a bid for a product.
// Rule failures are detected before any write; once the bid is appended the placement
// succeeds even if the product link has to be left to the reconciler.
func (s *BiddingService) PlaceBid(ctx context.Context, productID, bidderID string, amount float64) (models.PlacedBid, error) {
	start := time.Now()
	placed, err := s.placeBid(ctx, productID, bidderID, amount)
	metrics.PlacementDuration.Observe(time.Since(start).Seconds())
	metrics.BidPlacements.WithLabelValues(resultLabel(err)).Inc()
	return placed, err
}

func (s *BiddingService) placeBid(ctx context.Context, productID, bidderID string, amount float64) (models.PlacedBid, error) {
	if err := validateInput(productID, bidderID, amount); err != nil {
		return models.PlacedBid{}, err
	}

	bidder, err := s.bidders.GetBidder(ctx, bidderID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrBidderNotFound) {
			return models.PlacedBid{}, fmt.Errorf("service: %w - unknown bidder %s", biddingerrors.ErrInvalidBid, bidderID)
		}
		return models.PlacedBid{}, fmt.Errorf("service: failed to resolve bidder %s: %w", bidderID, err)
	}

	release, err := s.locks.acquire(ctx, productID)
	if err != nil {
		return models.PlacedBid{}, fmt.Errorf("service: waiting for product %s: %w", productID, err)
	}
	bid, err := s.commit(ctx, productID, bidderID, amount)
	if err != nil {
		release()
		return models.PlacedBid{}, err
	}

	placed := models.PlacedBid{
		Bid:        models.BidView{Bid: bid, Bidder: bidder},
		NextMinBid: bid.Amount + 1,
	}

	// enqueueing never blocks; doing it before release keeps events in commit order
	s.notifier.BidAccepted(notify.BidEvent{
		ProductID:   bid.ProductID,
		BidderID:    bid.BidderID,
		Amount:      bid.Amount,
		NextMinBid:  placed.NextMinBid,
		BidderName:  bidder.Name,
		BidderEmail: bidder.Email,
	})
	release()

	return placed, nil
}

// commit runs the read-compare-write sequence. The caller holds the product lock.
func (s *BiddingService) commit(ctx context.Context, productID, bidderID string, amount float64) (models.Bid, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	if product.SoldOut {
		return models.Bid{}, fmt.Errorf("service: %w - product %s is sold out", biddingerrors.ErrAuctionClosed, productID)
	}

	floor := product.MinimumBid
	highest, ok, err := s.ledger.HighestActive(ctx, productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to check highest bid: %w", err)
	}
	if ok {
		floor = highest
	}
	if !ExceedsFloor(amount, floor) {
		return models.Bid{}, fmt.Errorf("service: %w", &biddingerrors.BidTooLowError{Floor: floor})
	}

	// Past this point the request's cancellation no longer applies: the append and
	// the link either both happen or the bid is flagged for reconciliation.
	if err := ctx.Err(); err != nil {
		return models.Bid{}, fmt.Errorf("service: placement abandoned before commit: %w", err)
	}
	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.commitTimeout)
	defer cancel()

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ProductID: productID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: s.now(),
	}
	if err := s.ledger.Append(commitCtx, bid); err != nil {
		if !errors.Is(err, biddingerrors.ErrStore) {
			err = biddingerrors.StoreError("append bid", err)
		}
		return models.Bid{}, fmt.Errorf("service: failed to record bid for product %s by bidder %s: %w", productID, bidderID, err)
	}

	if err := s.link(commitCtx, bid); err != nil {
		if errors.Is(err, biddingerrors.ErrProductNotFound) {
			return models.Bid{}, fmt.Errorf("service: product %s removed during placement: %w", productID, err)
		}
		var linkErr *biddingerrors.LinkInconsistencyError
		if errors.As(err, &linkErr) {
			utils.Error("service: bid committed without product link, queued for reconciliation", map[string]any{
				"bid_id":     linkErr.BidID,
				"product_id": linkErr.ProductID,
				"error":      linkErr.Error(),
			})
		}
	}
	return bid, nil
}

// link attaches a committed bid to its product, retrying with backoff. On final
// failure the bid is flagged for the reconciler. A product deleted since the floor
// read withdraws the bid and reports ErrProductNotFound.
func (s *BiddingService) link(ctx context.Context, bid models.Bid) error {
	b := &backoff.Backoff{Min: s.linkBackoffMin, Max: s.linkBackoffMax, Factor: 2, Jitter: true}

	var err error
retry:
	for attempt := 1; attempt <= s.linkAttempts; attempt++ {
		if err = s.catalog.LinkBid(ctx, bid.ProductID, bid.BidID); err == nil {
			return nil
		}
		if errors.Is(err, biddingerrors.ErrProductNotFound) {
			return s.withdraw(ctx, bid, err)
		}
		if attempt == s.linkAttempts {
			break
		}
		utils.Warn("service: product link failed, retrying", map[string]any{
			"bid_id":  bid.BidID,
			"attempt": attempt,
			"error":   err.Error(),
		})
		select {
		case <-time.After(b.Duration()):
		case <-ctx.Done():
			break retry
		}
	}

	return s.orphan(ctx, bid, err)
}

// withdraw soft-deletes a bid whose product disappeared before the link. If the
// delete fails too the bid is left to the reconciler, which cascades it.
func (s *BiddingService) withdraw(ctx context.Context, bid models.Bid, cause error) error {
	if _, err := s.ledger.SoftDelete(context.WithoutCancel(ctx), []string{bid.BidID}); err != nil {
		utils.Warn("service: failed to withdraw bid of deleted product", map[string]any{
			"bid_id":     bid.BidID,
			"product_id": bid.ProductID,
			"error":      err.Error(),
		})
		return s.orphan(ctx, bid, cause)
	}
	utils.Info("service: bid withdrawn, product deleted during placement", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
	})
	return cause
}

func (s *BiddingService) orphan(ctx context.Context, bid models.Bid, err error) error {
	metrics.OrphanedBids.Inc()
	linkErr := &biddingerrors.LinkInconsistencyError{BidID: bid.BidID, ProductID: bid.ProductID, Err: err}
	if markErr := s.ledger.MarkOrphaned(context.WithoutCancel(ctx), bid.BidID); markErr != nil {
		utils.Error("service: failed to flag orphaned bid", map[string]any{
			"bid_id": bid.BidID,
			"error":  markErr.Error(),
		})
	}
	return linkErr
}

// TopBids returns the highest active bids for a product with bidder details
func (s *BiddingService) TopBids(ctx context.Context, productID string) ([]models.BidView, error) {
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.ledger.TopN(ctx, productID, TopBidsLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get top bids for product %s: %w", productID, err)
	}
	return s.resolve(ctx, bids), nil
}

// LatestBids returns the most recent active bids across all products
func (s *BiddingService) LatestBids(ctx context.Context) ([]models.BidView, error) {
	bids, err := s.ledger.LatestN(ctx, LatestBidsLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get latest bids: %w", err)
	}
	return s.resolve(ctx, bids), nil
}

// ListBids returns one page of the active ledger, newest first
func (s *BiddingService) ListBids(ctx context.Context, page, limit int) (models.Page[models.BidView], error) {
	page, limit = models.NormalizePage(page, limit)

	bids, total, err := s.ledger.List(ctx, page, limit)
	if err != nil {
		return models.Page[models.BidView]{}, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return models.NewPage(s.withProducts(ctx, s.resolve(ctx, bids)), total, page, limit), nil
}

// withProducts attaches product summaries. A product that no longer loads is left out.
func (s *BiddingService) withProducts(ctx context.Context, views []models.BidView) []models.BidView {
	cache := make(map[string]*models.ProductSummary)
	for i := range views {
		productID := views[i].ProductID
		summary, ok := cache[productID]
		if !ok {
			p, err := s.catalog.GetProduct(ctx, productID)
			if err != nil {
				utils.Debug("service: product not resolved", map[string]any{"product_id": productID, "error": err.Error()})
			} else {
				summary = &models.ProductSummary{ProductID: p.ProductID, Title: p.Title, MinimumBid: p.MinimumBid}
			}
			cache[productID] = summary
		}
		views[i].Product = summary
	}
	return views
}

// DeleteBids soft-deletes bids and reports how many changed
func (s *BiddingService) DeleteBids(ctx context.Context, ids []string) (int64, error) {
	ids = compactIDs(ids)
	if len(ids) == 0 {
		return 0, fmt.Errorf("service: %w - no bid IDs provided", biddingerrors.ErrInvalidBid)
	}

	n, err := s.ledger.SoftDelete(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("service: failed to delete bids: %w", err)
	}
	return n, nil
}

// resolve attaches bidder details. An unresolvable bidder keeps only its id.
func (s *BiddingService) resolve(ctx context.Context, bids []models.Bid) []models.BidView {
	cache := make(map[string]models.Bidder)
	views := make([]models.BidView, 0, len(bids))
	for _, b := range bids {
		bidder, ok := cache[b.BidderID]
		if !ok {
			var err error
			bidder, err = s.bidders.GetBidder(ctx, b.BidderID)
			if err != nil {
				utils.Debug("service: bidder not resolved", map[string]any{"bidder_id": b.BidderID, "error": err.Error()})
				bidder = models.Bidder{UserID: b.BidderID}
			}
			cache[b.BidderID] = bidder
		}
		views = append(views, models.BidView{Bid: b, Bidder: bidder})
	}
	return views
}

// ExceedsFloor reports whether amount is strictly greater than floor, compared at
// monetaryPrecision to avoid float drift
func ExceedsFloor(amount, floor float64) bool {
	a := decimal.NewFromFloat(amount).Round(monetaryPrecision)
	f := decimal.NewFromFloat(floor).Round(monetaryPrecision)
	return a.GreaterThan(f)
}

// validateInput checks presence and shape of the placement inputs
func validateInput(productID, bidderID string, amount float64) error {
	if productID == "" || bidderID == "" {
		return fmt.Errorf("service: %w - missing productID or bidderID", biddingerrors.ErrInvalidBid)
	}
	if !(amount > 0) || math.IsInf(amount, 1) {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	return nil
}

func compactIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultAccepted
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return metrics.ResultTooLow
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return metrics.ResultClosed
	case errors.Is(err, biddingerrors.ErrProductNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
