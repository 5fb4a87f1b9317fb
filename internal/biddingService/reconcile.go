package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"art-auction/internal/biddingerrors"
	"art-auction/internal/metrics"
	"art-auction/internal/models"
	"art-auction/utils"
)

const reconcileBatch = 100

// Reconcile re-links bids whose product link failed at placement time.
// A bid whose product has since been deleted is cascaded instead of linked.
func (s *BiddingService) Reconcile(ctx context.Context) (int, error) {
	orphans, err := s.ledger.ListOrphaned(ctx, reconcileBatch)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list orphaned bids: %w", err)
	}

	fixed := 0
	for _, bid := range orphans {
		ok, err := s.reconcileBid(ctx, bid)
		if err != nil {
			return fixed, err
		}
		if ok {
			metrics.ReconciledBids.Inc()
			fixed++
		}
	}

	if fixed > 0 {
		utils.Info("reconciler: orphaned bids repaired", map[string]any{"count": fixed, "pending": len(orphans) - fixed})
	}
	return fixed, nil
}

// reconcileBid repairs one orphan inside its product's section, so the re-link never
// interleaves with a placement. A re-linked id lands after ids placed since the
// orphan was created; ranking reads the ledger, not BidIDs.
func (s *BiddingService) reconcileBid(ctx context.Context, bid models.Bid) (bool, error) {
	release, err := s.locks.acquire(ctx, bid.ProductID)
	if err != nil {
		return false, fmt.Errorf("service: waiting for product %s: %w", bid.ProductID, err)
	}
	defer release()

	err = s.catalog.LinkBid(ctx, bid.ProductID, bid.BidID)
	switch {
	case err == nil:
	case errors.Is(err, biddingerrors.ErrProductNotFound):
		if _, err := s.ledger.SoftDelete(ctx, []string{bid.BidID}); err != nil {
			utils.Warn("reconciler: cascade delete failed", map[string]any{"bid_id": bid.BidID, "error": err.Error()})
			return false, nil
		}
	default:
		utils.Warn("reconciler: link still failing", map[string]any{"bid_id": bid.BidID, "error": err.Error()})
		return false, nil
	}

	if err := s.ledger.ClearOrphaned(ctx, bid.BidID); err != nil {
		utils.Warn("reconciler: failed to clear flag", map[string]any{"bid_id": bid.BidID, "error": err.Error()})
		return false, nil
	}
	return true, nil
}

// RunReconciler calls Reconcile every interval until ctx is cancelled
func (s *BiddingService) RunReconciler(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Reconcile(ctx); err != nil && ctx.Err() == nil {
				utils.Error("reconciler: pass failed", map[string]any{"error": err.Error()})
			}
		}
	}
}
