package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"

	model "art-auction/internal/models"
)

// BidLedger is the append-only bid store. Bids are never updated in place; the only
// mutations after Append are the soft-delete and reconcile flags.
type BidLedger interface {
	Append(ctx context.Context, bid model.Bid) error
	TopN(ctx context.Context, productID string, n int) ([]model.Bid, error)
	LatestN(ctx context.Context, n int) ([]model.Bid, error)
	List(ctx context.Context, page, limit int) ([]model.Bid, int64, error)
	SoftDelete(ctx context.Context, ids []string) (int64, error)
	SoftDeleteByProduct(ctx context.Context, productIDs []string) (int64, error)
	HighestActive(ctx context.Context, productID string) (float64, bool, error)
	MarkOrphaned(ctx context.Context, bidID string) error
	ListOrphaned(ctx context.Context, limit int) ([]model.Bid, error)
	ClearOrphaned(ctx context.Context, bidID string) error
}

// Catalog holds products and artists. Soft-deleted records are invisible to every read.
type Catalog interface {
	CreateProduct(ctx context.Context, p model.Product) error
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	UpdateProduct(ctx context.Context, p model.Product) error
	ListProducts(ctx context.Context, f model.ProductFilter) ([]model.Product, int64, error)
	SoftDeleteProducts(ctx context.Context, ids []string) (int64, error)
	LinkBid(ctx context.Context, productID, bidID string) error

	CreateArtist(ctx context.Context, a model.Artist) error
	GetArtist(ctx context.Context, artistID string) (model.Artist, error)
	UpdateArtist(ctx context.Context, a model.Artist) error
	ListArtists(ctx context.Context, f model.ArtistFilter) ([]model.Artist, int64, error)
	SoftDeleteArtists(ctx context.Context, ids []string) (int64, error)
}

// BidderDirectory resolves bidder identities issued by the auth system
type BidderDirectory interface {
	GetBidder(ctx context.Context, userID string) (model.Bidder, error)
}

// offset converts a 1-based page into a skip count
func offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
