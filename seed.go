package main

import (
	"context"
	"fmt"
	"time"

	model "art-auction/internal/models"
	"art-auction/internal/repository"
)

// seedDemo adds sample artists, products and bidders to the in-memory repo
func seedDemo(ctx context.Context, repo *repository.MemoryRepo) error {
	now := time.Now().UTC()

	artists := []model.Artist{
		{ArtistID: "artist1", Name: "Amina Yusuf", Bio: "Oil painter", Country: "Nigeria", IsActive: true, IsFeatured: true},
		{ArtistID: "artist2", Name: "Leo Marchetti", Bio: "Sculptor", Country: "Italy", IsActive: true},
	}
	for _, a := range artists {
		a.CreatedAt, a.UpdatedAt = now, now
		if err := repo.CreateArtist(ctx, a); err != nil {
			return fmt.Errorf("seed artist %s: %w", a.ArtistID, err)
		}
	}

	products := []model.Product{
		{ProductID: "product1", Title: "Harmattan Morning", Description: "Oil on canvas", MinimumBid: 100, ArtistID: "artist1"},
		{ProductID: "product2", Title: "Bronze Wave", Description: "Cast bronze", MinimumBid: 250, ArtistID: "artist2"},
		{ProductID: "product3", Title: "Untitled Study", Description: "Charcoal on paper", MinimumBid: 50},
	}
	for _, p := range products {
		p.IsActive = true
		p.AuctionStart, p.AuctionEnd = now, now.Add(7*24*time.Hour)
		p.CreatedAt, p.UpdatedAt = now, now
		if err := repo.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ProductID, err)
		}
	}

	for _, b := range []model.Bidder{
		{UserID: "user1", Name: "Grace Hopper", Email: "grace@example.com"},
		{UserID: "user2", Name: "Alan Turing", Email: "alan@example.com"},
		{UserID: "user3", Name: "Ada Lovelace", Email: "ada@example.com"},
	} {
		repo.AddBidder(b)
	}
	return nil
}
