package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of BidLedger, Catalog
// and BidderDirectory
type MemoryRepo struct {
	mu        sync.RWMutex
	bids      map[string]*model.Bid     // key: bidID -> value: bid
	bidOrder  []string                  // all bidIDs in append order
	byProduct map[string][]string       // key: productID -> value: bidIDs in append order
	products  map[string]*model.Product // key: productID -> value: product
	prodOrder []string                  // productIDs in creation order
	artists   map[string]*model.Artist  // key: artistID -> value: artist
	artOrder  []string                  // artistIDs in creation order
	bidders   map[string]model.Bidder   // key: userID -> value: bidder
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:      make(map[string]*model.Bid),
		byProduct: make(map[string][]string),
		products:  make(map[string]*model.Product),
		artists:   make(map[string]*model.Artist),
		bidders:   make(map[string]model.Bidder),
	}
}

// Append records a new bid. A bid id that already exists is rejected, each bid is a new entity.
func (r *MemoryRepo) Append(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.BidID == "" || bid.ProductID == "" {
		return biddingerrors.StoreError("append bid", fmt.Errorf("bid and product ids are required"))
	}
	if _, ok := r.bids[bid.BidID]; ok {
		return biddingerrors.StoreError("append bid", fmt.Errorf("duplicate bid id %s", bid.BidID))
	}

	b := bid
	r.bids[b.BidID] = &b
	r.bidOrder = append(r.bidOrder, b.BidID)
	r.byProduct[b.ProductID] = append(r.byProduct[b.ProductID], b.BidID)
	return nil
}

// TopN returns the n highest active bids for a product, ties broken by earliest creation
func (r *MemoryRepo) TopN(_ context.Context, productID string, n int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := r.activeForProduct(productID)
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Amount != active[j].Amount {
			return active[i].Amount > active[j].Amount
		}
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	if n >= 0 && len(active) > n {
		active = active[:n]
	}
	return active, nil
}

// LatestN returns the n most recent active bids across all products, newest first
func (r *MemoryRepo) LatestN(_ context.Context, n int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make([]model.Bid, 0, n)
	for i := len(r.bidOrder) - 1; i >= 0 && len(latest) < n; i-- {
		if b := r.bids[r.bidOrder[i]]; !b.IsDeleted {
			latest = append(latest, *b)
		}
	}
	return latest, nil
}

// List returns one page of the active ledger, newest first, and the total active count
func (r *MemoryRepo) List(_ context.Context, page, limit int) ([]model.Bid, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skip := offset(page, limit)
	var total int64
	out := make([]model.Bid, 0, limit)
	for i := len(r.bidOrder) - 1; i >= 0; i-- {
		b := r.bids[r.bidOrder[i]]
		if b.IsDeleted {
			continue
		}
		if total >= int64(skip) && len(out) < limit {
			out = append(out, *b)
		}
		total++
	}
	return out, total, nil
}

// SoftDelete flags the given bids as deleted and reports how many actually changed
func (r *MemoryRepo) SoftDelete(_ context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for _, id := range ids {
		if b, ok := r.bids[id]; ok && !b.IsDeleted {
			b.IsDeleted = true
			changed++
		}
	}
	return changed, nil
}

// SoftDeleteByProduct flags every bid of the given products as deleted
func (r *MemoryRepo) SoftDeleteByProduct(_ context.Context, productIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for _, pid := range productIDs {
		for _, id := range r.byProduct[pid] {
			if b := r.bids[id]; !b.IsDeleted {
				b.IsDeleted = true
				changed++
			}
		}
	}
	return changed, nil
}

// HighestActive returns the maximum active amount for a product, ok is false when there is none
func (r *MemoryRepo) HighestActive(_ context.Context, productID string) (float64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var highest float64
	found := false
	for _, id := range r.byProduct[productID] {
		b := r.bids[id]
		if b.IsDeleted {
			continue
		}
		if !found || b.Amount > highest {
			highest = b.Amount
			found = true
		}
	}
	return highest, found, nil
}

// MarkOrphaned flags a bid whose product link could not be written
func (r *MemoryRepo) MarkOrphaned(_ context.Context, bidID string) error {
	return r.setReconcile(bidID, true)
}

// ClearOrphaned removes the reconcile flag once the link exists
func (r *MemoryRepo) ClearOrphaned(_ context.Context, bidID string) error {
	return r.setReconcile(bidID, false)
}

// ListOrphaned returns up to limit bids waiting for reconciliation, oldest first
func (r *MemoryRepo) ListOrphaned(_ context.Context, limit int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, id := range r.bidOrder {
		if len(out) == limit {
			break
		}
		if b := r.bids[id]; b.NeedsReconcile {
			out = append(out, *b)
		}
	}
	return out, nil
}

// GetBidder resolves a bidder identity
func (r *MemoryRepo) GetBidder(_ context.Context, userID string) (model.Bidder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bidders[userID]
	if !ok {
		return model.Bidder{}, fmt.Errorf("get bidder %s: %w", userID, biddingerrors.ErrBidderNotFound)
	}
	return b, nil
}

// AddBidder registers a bidder identity. Registration itself lives in the auth system,
// this is for seeding and tests.
func (r *MemoryRepo) AddBidder(b model.Bidder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bidders[b.UserID] = b
}

func (r *MemoryRepo) setReconcile(bidID string, flag bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[bidID]
	if !ok {
		return biddingerrors.StoreError("set reconcile flag", fmt.Errorf("bid %s does not exist", bidID))
	}
	b.NeedsReconcile = flag
	return nil
}

// activeForProduct copies the active bids of a product in append order. Caller holds the lock.
func (r *MemoryRepo) activeForProduct(productID string) []model.Bid {
	ids := r.byProduct[productID]
	active := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		if b := r.bids[id]; !b.IsDeleted {
			active = append(active, *b)
		}
	}
	return active
}
