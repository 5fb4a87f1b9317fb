package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidderResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

type ProductSummaryResponse struct {
	Title      string  `json:"title"`
	MinimumBid float64 `json:"minimum_bid"`
}

type BidResponse struct {
	BidID     string                  `json:"bid_id"`
	ProductID string                  `json:"product_id"`
	Product   *ProductSummaryResponse `json:"product,omitempty"`
	Bidder    BidderResponse          `json:"bidder"`
	Amount    float64                 `json:"amount"`
	CreatedAt string                  `json:"created_at"`
}

type PlaceBidResponse struct {
	Bid        BidResponse `json:"bid"`
	NextMinBid float64     `json:"next_min_bid"`
}

type BidPageResponse struct {
	Bids        []BidResponse `json:"bids"`
	Total       int64         `json:"total"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

// DeleteRequest carries the ids of a multi soft delete
type DeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type DeleteResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}
