package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"art-auction/internal/biddingerrors"
	"art-auction/internal/models"
	"art-auction/internal/repository"
	"art-auction/utils"
)

// CatalogService manages products and artists. Bids are never created here; deleting
// a product cascades to its bids through the ledger.
type CatalogService struct {
	catalog repository.Catalog
	ledger  repository.BidLedger
	now     func() time.Time
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(catalog repository.Catalog, ledger repository.BidLedger) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		ledger:  ledger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateProduct validates and stores a new product with an empty bid list
func (s *CatalogService) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if err := s.validateProduct(ctx, p); err != nil {
		return models.Product{}, err
	}

	now := s.now()
	p.ProductID = utils.GenerateID()
	p.BidIDs = []string{}
	p.IsDeleted = false
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.catalog.CreateProduct(ctx, p); err != nil {
		return models.Product{}, fmt.Errorf("catalog: failed to create product: %w", err)
	}
	utils.Info("catalog: product created", map[string]any{"product_id": p.ProductID, "title": p.Title})
	return p, nil
}

// GetProduct returns a non-deleted product
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("catalog: %w - empty product ID", biddingerrors.ErrInvalidInput)
	}
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog: failed to get product %s: %w", productID, err)
	}
	return p, nil
}

// UpdateProduct replaces a product's catalog fields. Its bid references are left alone.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, p models.Product) (models.Product, error) {
	if err := s.validateProduct(ctx, p); err != nil {
		return models.Product{}, err
	}

	existing, err := s.GetProduct(ctx, productID)
	if err != nil {
		return models.Product{}, err
	}

	p.ProductID = productID
	p.BidIDs = existing.BidIDs
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()
	if err := s.catalog.UpdateProduct(ctx, p); err != nil {
		return models.Product{}, fmt.Errorf("catalog: failed to update product %s: %w", productID, err)
	}
	return p, nil
}

// ListProducts returns one page of non-deleted products, newest first
func (s *CatalogService) ListProducts(ctx context.Context, f models.ProductFilter) (models.Page[models.Product], error) {
	f.Page, f.Limit = models.NormalizePage(f.Page, f.Limit)
	f.Search = strings.TrimSpace(f.Search)

	products, total, err := s.catalog.ListProducts(ctx, f)
	if err != nil {
		return models.Page[models.Product]{}, fmt.Errorf("catalog: failed to list products: %w", err)
	}
	return models.NewPage(products, total, f.Page, f.Limit), nil
}

// DeleteProducts soft-deletes products and every bid placed on them
func (s *CatalogService) DeleteProducts(ctx context.Context, ids []string) (int64, error) {
	ids = compactIDs(ids)
	if len(ids) == 0 {
		return 0, fmt.Errorf("catalog: %w - no product IDs provided", biddingerrors.ErrInvalidInput)
	}

	n, err := s.catalog.SoftDeleteProducts(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("catalog: failed to delete products: %w", err)
	}
	bids, err := s.ledger.SoftDeleteByProduct(ctx, ids)
	if err != nil {
		return n, fmt.Errorf("catalog: products deleted but their bids were not: %w", err)
	}

	utils.Info("catalog: products deleted", map[string]any{"products": n, "bids": bids})
	return n, nil
}

func (s *CatalogService) validateProduct(ctx context.Context, p models.Product) error {
	v := &biddingerrors.ValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		v.Add("title", "Title is required")
	}
	if !(p.MinimumBid > 0) {
		v.Add("minimum_bid", "Minimum bid must be greater than zero")
	}
	if !p.AuctionStart.IsZero() && !p.AuctionEnd.IsZero() && !p.AuctionStart.Before(p.AuctionEnd) {
		v.Add("auction_end", "Auction end must be after auction start")
	}
	if p.ArtistID != "" {
		if _, err := s.catalog.GetArtist(ctx, p.ArtistID); err != nil {
			if !errors.Is(err, biddingerrors.ErrArtistNotFound) {
				return fmt.Errorf("catalog: failed to check artist %s: %w", p.ArtistID, err)
			}
			v.Add("artist_id", "Artist not found")
		}
	}
	return v.OrNil()
}

func compactIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
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
