package models

import "time"

// Bidder is the identity behind a bid, as resolved from the bidder directory
type Bidder struct {
	UserID string `json:"user_id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
}

// Artist represents the creator of auctioned works
type Artist struct {
	ArtistID   string    `json:"artist_id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Bio        string    `json:"bio" bson:"bio"`
	Country    string    `json:"country" bson:"country"`
	IsActive   bool      `json:"is_active" bson:"isActive"`
	IsFeatured bool      `json:"is_featured" bson:"isFeatured"`
	IsDeleted  bool      `json:"-" bson:"isDeleted"`
	CreatedAt  time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updatedAt"`
}

// Product represents an auctioned item.
// BidIDs is kept in submission order and is only appended to by the placement engine.
type Product struct {
	ProductID    string    `json:"product_id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Image        string    `json:"image" bson:"image"`
	MinimumBid   float64   `json:"minimum_bid" bson:"minimumBid"`
	AuctionStart time.Time `json:"auction_start" bson:"auctionStart"`
	AuctionEnd   time.Time `json:"auction_end" bson:"auctionEnd"`
	SoldOut      bool      `json:"sold_out" bson:"soldOut"`
	IsActive     bool      `json:"is_active" bson:"isActive"`
	IsDeleted    bool      `json:"-" bson:"isDeleted"`
	BidIDs       []string  `json:"bid_ids" bson:"bids"`
	ArtistID     string    `json:"artist_id,omitempty" bson:"artistId,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}

// Bid represents a bidder's offer on a product. Bids are never edited after creation,
// only soft-deleted.
type Bid struct {
	BidID          string    `json:"bid_id" bson:"_id"`
	ProductID      string    `json:"product_id" bson:"productId"`
	BidderID       string    `json:"bidder_id" bson:"bidderId"`
	Amount         float64   `json:"amount" bson:"amount"`
	CreatedAt      time.Time `json:"created_at" bson:"createdAt"`
	IsDeleted      bool      `json:"-" bson:"isDeleted"`
	NeedsReconcile bool      `json:"-" bson:"needsReconcile"`
}

// ProductSummary is the slice of a product shown next to ledger rows
type ProductSummary struct {
	ProductID  string  `json:"product_id"`
	Title      string  `json:"title"`
	MinimumBid float64 `json:"minimum_bid"`
}

// BidView is a bid with its bidder details resolved. Product is only set by ledger listings.
type BidView struct {
	Bid
	Bidder  Bidder          `json:"bidder"`
	Product *ProductSummary `json:"product,omitempty"`
}

// PlacedBid is the outcome of an accepted placement
type PlacedBid struct {
	Bid        BidView `json:"bid"`
	NextMinBid float64 `json:"next_min_bid"`
}

// ProductFilter narrows catalog product listings
type ProductFilter struct {
	Search     string
	ActiveOnly bool
	Page       int
	Limit      int
}

// ArtistFilter narrows catalog artist listings
type ArtistFilter struct {
	Search       string
	ActiveOnly   bool
	FeaturedOnly bool
	Page         int
	Limit        int
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is one slice of a paginated listing
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// NewPage builds a Page, computing the page count from total and limit
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Page[T]{Items: items, Total: total, CurrentPage: page, TotalPages: pages}
}

// NormalizePage clamps page and limit into usable values
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}
