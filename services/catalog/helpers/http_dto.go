package helpers

import (
	"time"

	model "art-auction/internal/models"
)

// Request DTOs. Required fields are checked by the catalog service so that every
// missing field is reported at once.
type ProductRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	MinimumBid   float64   `json:"minimum_bid"`
	AuctionStart time.Time `json:"auction_start"`
	AuctionEnd   time.Time `json:"auction_end"`
	SoldOut      bool      `json:"sold_out"`
	IsActive     *bool     `json:"is_active"`
	ArtistID     string    `json:"artist_id"`
}

type ArtistRequest struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Country    string `json:"country"`
	IsActive   *bool  `json:"is_active"`
	IsFeatured bool   `json:"is_featured"`
}

// ToProduct converts the request; products are active unless stated otherwise
func (r ProductRequest) ToProduct() model.Product {
	return model.Product{
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		MinimumBid:   r.MinimumBid,
		AuctionStart: r.AuctionStart,
		AuctionEnd:   r.AuctionEnd,
		SoldOut:      r.SoldOut,
		IsActive:     r.IsActive == nil || *r.IsActive,
		ArtistID:     r.ArtistID,
	}
}

// ToArtist converts the request; artists are active unless stated otherwise
func (r ArtistRequest) ToArtist() model.Artist {
	return model.Artist{
		Name:       r.Name,
		Bio:        r.Bio,
		Country:    r.Country,
		IsActive:   r.IsActive == nil || *r.IsActive,
		IsFeatured: r.IsFeatured,
	}
}

type ProductPageResponse struct {
	Products    []model.Product `json:"products"`
	Total       int64           `json:"total"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

type ArtistPageResponse struct {
	Artists     []model.Artist `json:"artists"`
	Total       int64          `json:"total"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
}
