package repository

import (
	"context"
	"fmt"
	"strings"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"
)

// CreateProduct stores a new product. The bid reference list always starts empty.
func (r *MemoryRepo) CreateProduct(_ context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ProductID]; ok {
		return biddingerrors.StoreError("create product", fmt.Errorf("duplicate product id %s", p.ProductID))
	}
	p.BidIDs = []string{}
	r.products[p.ProductID] = &p
	r.prodOrder = append(r.prodOrder, p.ProductID)
	return nil
}

// GetProduct returns a copy of a non-deleted product
func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok || p.IsDeleted {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	return copyProduct(p), nil
}

// UpdateProduct replaces the catalog fields of a product. BidIDs and CreatedAt are preserved.
func (r *MemoryRepo) UpdateProduct(_ context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[p.ProductID]
	if !ok || existing.IsDeleted {
		return fmt.Errorf("update product %s: %w", p.ProductID, biddingerrors.ErrProductNotFound)
	}
	p.BidIDs = existing.BidIDs
	p.CreatedAt = existing.CreatedAt
	p.IsDeleted = false
	*existing = p
	return nil
}

// ListProducts returns a page of non-deleted products, newest first
func (r *MemoryRepo) ListProducts(_ context.Context, f model.ProductFilter) ([]model.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(f.Search)
	skip := offset(f.Page, f.Limit)
	var total int64
	out := make([]model.Product, 0, f.Limit)
	for i := len(r.prodOrder) - 1; i >= 0; i-- {
		p := r.products[r.prodOrder[i]]
		if p.IsDeleted || (f.ActiveOnly && !p.IsActive) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if total >= int64(skip) && len(out) < f.Limit {
			out = append(out, copyProduct(p))
		}
		total++
	}
	return out, total, nil
}

// SoftDeleteProducts flags products as deleted. Bids are cascaded by the catalog service.
func (r *MemoryRepo) SoftDeleteProducts(_ context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for _, id := range ids {
		if p, ok := r.products[id]; ok && !p.IsDeleted {
			p.IsDeleted = true
			changed++
		}
	}
	return changed, nil
}

// LinkBid appends a bid reference to a product. Linking the same bid twice is a no-op.
func (r *MemoryRepo) LinkBid(_ context.Context, productID, bidID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok || p.IsDeleted {
		return fmt.Errorf("link bid %s: %w", bidID, biddingerrors.ErrProductNotFound)
	}
	for _, id := range p.BidIDs {
		if id == bidID {
			return nil
		}
	}
	p.BidIDs = append(p.BidIDs, bidID)
	return nil
}

// CreateArtist stores a new artist
func (r *MemoryRepo) CreateArtist(_ context.Context, a model.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.artists[a.ArtistID]; ok {
		return biddingerrors.StoreError("create artist", fmt.Errorf("duplicate artist id %s", a.ArtistID))
	}
	r.artists[a.ArtistID] = &a
	r.artOrder = append(r.artOrder, a.ArtistID)
	return nil
}

// GetArtist returns a non-deleted artist
func (r *MemoryRepo) GetArtist(_ context.Context, artistID string) (model.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.artists[artistID]
	if !ok || a.IsDeleted {
		return model.Artist{}, fmt.Errorf("get artist %s: %w", artistID, biddingerrors.ErrArtistNotFound)
	}
	return *a, nil
}

// UpdateArtist replaces a non-deleted artist, keeping its creation time
func (r *MemoryRepo) UpdateArtist(_ context.Context, a model.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.artists[a.ArtistID]
	if !ok || existing.IsDeleted {
		return fmt.Errorf("update artist %s: %w", a.ArtistID, biddingerrors.ErrArtistNotFound)
	}
	a.CreatedAt = existing.CreatedAt
	a.IsDeleted = false
	*existing = a
	return nil
}

// ListArtists returns a page of non-deleted artists matching the filter, newest first
func (r *MemoryRepo) ListArtists(_ context.Context, f model.ArtistFilter) ([]model.Artist, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(f.Search)
	skip := offset(f.Page, f.Limit)
	var total int64
	out := make([]model.Artist, 0, f.Limit)
	for i := len(r.artOrder) - 1; i >= 0; i-- {
		a := r.artists[r.artOrder[i]]
		if a.IsDeleted || (f.ActiveOnly && !a.IsActive) || (f.FeaturedOnly && !a.IsFeatured) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.Country), search) {
			continue
		}
		if total >= int64(skip) && len(out) < f.Limit {
			out = append(out, *a)
		}
		total++
	}
	return out, total, nil
}

// SoftDeleteArtists flags artists as deleted and reports how many changed
func (r *MemoryRepo) SoftDeleteArtists(_ context.Context, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for _, id := range ids {
		if a, ok := r.artists[id]; ok && !a.IsDeleted {
			a.IsDeleted = true
			changed++
		}
	}
	return changed, nil
}

func copyProduct(p *model.Product) model.Product {
	out := *p
	out.BidIDs = append([]string{}, p.BidIDs...)
	return out
}
