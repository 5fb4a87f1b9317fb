package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Product
func newProduct(productID, title string, minimumBid float64) model.Product {
	now := time.Now().UTC()
	return model.Product{
		ProductID:    productID,
		Title:        title,
		Description:  fmt.Sprintf("%s description", title),
		MinimumBid:   minimumBid,
		AuctionStart: now,
		AuctionEnd:   now.Add(24 * time.Hour),
		IsActive:     true,
		CreatedAt:    now,
	}
}

// Helper to create a new Bid
func newBid(bidID, productID, bidderID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		ProductID: productID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

func amounts(bids []model.Bid) []float64 {
	out := make([]float64, 0, len(bids))
	for _, b := range bids {
		out = append(out, b.Amount)
	}
	return out
}

// Test Append
func TestMemoryRepo_Append(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now()

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: newBid("bid1", "product1", "user1", 100, now), wantError: false},
		{name: "second_bid_same_product", bid: newBid("bid2", "product1", "user2", 120, now), wantError: false},
		{name: "duplicate_bid_id", bid: newBid("bid1", "product1", "user3", 150, now), wantError: true},
		{name: "empty_bid_id", bid: newBid("", "product1", "user1", 100, now), wantError: true},
		{name: "empty_productID", bid: newBid("bid3", "", "user1", 100, now), wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Append(ctx, tc.bid)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, biddingerrors.ErrStore))
				return
			}
			require.NoError(t, err)
		})
	}

	// duplicate append must not have replaced the original record
	top, err := repo.TopN(ctx, "product1", 5)
	require.NoError(t, err)
	require.Equal(t, []float64{120, 100}, amounts(top))
	require.Equal(t, "user1", top[1].BidderID)

	t.Run("concurrent_appends", func(t *testing.T) {
		repo := NewMemoryRepo()

		var wg sync.WaitGroup
		concurrentCount := 50
		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "product1", fmt.Sprintf("user-%d", i), float64(100+i), time.Now())
				require.NoError(t, repo.Append(ctx, b))
			}()
		}
		wg.Wait()

		bids, total, err := repo.List(ctx, 1, 100)
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
		require.EqualValues(t, concurrentCount, total)
	})
}

// Test TopN
func TestMemoryRepo_TopN(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now()

	require.NoError(t, repo.Append(ctx, newBid("b1", "product1", "u1", 30, now)))
	require.NoError(t, repo.Append(ctx, newBid("b2", "product1", "u2", 90, now.Add(time.Second))))
	require.NoError(t, repo.Append(ctx, newBid("b3", "product1", "u3", 60, now.Add(2*time.Second))))

	// ties broken by earliest creation
	require.NoError(t, repo.Append(ctx, newBid("t-late", "product2", "u1", 70, now.Add(time.Minute))))
	require.NoError(t, repo.Append(ctx, newBid("t-early", "product2", "u2", 70, now)))

	for i := 0; i < 8; i++ {
		require.NoError(t, repo.Append(ctx, newBid(fmt.Sprintf("m%d", i), "product3", "u1", float64(10*(i+1)), now)))
	}
	_, err := repo.SoftDelete(ctx, []string{"m7"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		productID   string
		n           int
		wantAmounts []float64
		wantFirstID string
	}{
		{name: "three_bids_ranked", productID: "product1", n: 5, wantAmounts: []float64{90, 60, 30}},
		{name: "tie_earliest_first", productID: "product2", n: 5, wantAmounts: []float64{70, 70}, wantFirstID: "t-early"},
		{name: "limit_and_deleted_excluded", productID: "product3", n: 5, wantAmounts: []float64{70, 60, 50, 40, 30}},
		{name: "no_bids", productID: "unknown", n: 5, wantAmounts: []float64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bids, err := repo.TopN(ctx, tc.productID, tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.wantAmounts, amounts(bids))
			if tc.wantFirstID != "" {
				require.Equal(t, tc.wantFirstID, bids[0].BidID)
			}
		})
	}
}

// Test LatestN and List
func TestMemoryRepo_LatestAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now()

	for i := 0; i < 12; i++ {
		productID := fmt.Sprintf("product%d", i%3)
		require.NoError(t, repo.Append(ctx, newBid(fmt.Sprintf("bid%02d", i), productID, "u1", float64(100+i), now.Add(time.Duration(i)*time.Second))))
	}
	n, err := repo.SoftDelete(ctx, []string{"bid11", "bid05"})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	latest, err := repo.LatestN(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{110, 109, 108, 107, 106}, amounts(latest))

	tests := []struct {
		name        string
		page, limit int
		wantAmounts []float64
	}{
		{name: "first_page", page: 1, limit: 4, wantAmounts: []float64{110, 109, 108, 107}},
		{name: "second_page", page: 2, limit: 4, wantAmounts: []float64{106, 104, 103, 102}},
		{name: "last_page_partial", page: 3, limit: 4, wantAmounts: []float64{101, 100}},
		{name: "past_the_end", page: 9, limit: 4, wantAmounts: []float64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bids, total, err := repo.List(ctx, tc.page, tc.limit)
			require.NoError(t, err)
			require.EqualValues(t, 10, total)
			require.Equal(t, tc.wantAmounts, amounts(bids))
		})
	}
}

// Test SoftDelete and cascade
func TestMemoryRepo_SoftDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now()

	require.NoError(t, repo.Append(ctx, newBid("a1", "productA", "u1", 10, now)))
	require.NoError(t, repo.Append(ctx, newBid("a2", "productA", "u2", 20, now)))
	require.NoError(t, repo.Append(ctx, newBid("b1", "productB", "u1", 30, now)))

	t.Run("idempotent", func(t *testing.T) {
		n, err := repo.SoftDelete(ctx, []string{"a1", "missing"})
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = repo.SoftDelete(ctx, []string{"a1"})
		require.NoError(t, err)
		require.EqualValues(t, 0, n)
	})

	t.Run("cascade_is_disjoint", func(t *testing.T) {
		n, err := repo.SoftDeleteByProduct(ctx, []string{"productA"})
		require.NoError(t, err)
		require.EqualValues(t, 1, n) // a1 was already deleted

		a, err := repo.TopN(ctx, "productA", 5)
		require.NoError(t, err)
		require.Empty(t, a)

		b, err := repo.TopN(ctx, "productB", 5)
		require.NoError(t, err)
		require.Len(t, b, 1)
		require.Equal(t, "b1", b[0].BidID)
	})
}

// Test HighestActive
func TestMemoryRepo_HighestActive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now()

	require.NoError(t, repo.Append(ctx, newBid("b1", "product1", "u1", 51, now)))
	require.NoError(t, repo.Append(ctx, newBid("b2", "product1", "u2", 75, now)))

	highest, ok, err := repo.HighestActive(ctx, "product1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 75.0, highest)

	_, err = repo.SoftDelete(ctx, []string{"b2"})
	require.NoError(t, err)
	highest, ok, err = repo.HighestActive(ctx, "product1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 51.0, highest)

	_, ok, err = repo.HighestActive(ctx, "product2")
	require.NoError(t, err)
	require.False(t, ok)
}

// Test orphan bookkeeping
func TestMemoryRepo_Orphaned(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.Append(ctx, newBid("b1", "product1", "u1", 10, time.Now())))
	require.NoError(t, repo.Append(ctx, newBid("b2", "product1", "u1", 20, time.Now())))

	require.NoError(t, repo.MarkOrphaned(ctx, "b2"))
	require.Error(t, repo.MarkOrphaned(ctx, "missing"))

	orphans, err := repo.ListOrphaned(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	require.Equal(t, "b2", orphans[0].BidID)

	require.NoError(t, repo.ClearOrphaned(ctx, "b2"))
	orphans, err = repo.ListOrphaned(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, orphans)
}

// Test product catalog operations
func TestMemoryRepo_Products(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("p1", "Blue Horizon", 50)))
	require.Error(t, repo.CreateProduct(ctx, newProduct("p1", "Duplicate", 50)))

	t.Run("link_bid_keeps_submission_order_and_is_idempotent", func(t *testing.T) {
		require.NoError(t, repo.LinkBid(ctx, "p1", "bid-b"))
		require.NoError(t, repo.LinkBid(ctx, "p1", "bid-a"))
		require.NoError(t, repo.LinkBid(ctx, "p1", "bid-b"))

		p, err := repo.GetProduct(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, []string{"bid-b", "bid-a"}, p.BidIDs)
	})

	t.Run("update_never_touches_bid_references", func(t *testing.T) {
		update := newProduct("p1", "Blue Horizon II", 75)
		update.BidIDs = nil
		require.NoError(t, repo.UpdateProduct(ctx, update))

		p, err := repo.GetProduct(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, "Blue Horizon II", p.Title)
		require.Equal(t, []string{"bid-b", "bid-a"}, p.BidIDs)
	})

	t.Run("returned_product_is_a_copy", func(t *testing.T) {
		p, err := repo.GetProduct(ctx, "p1")
		require.NoError(t, err)
		p.BidIDs[0] = "tampered"

		again, err := repo.GetProduct(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, "bid-b", again.BidIDs[0])
	})

	t.Run("soft_deleted_product_is_invisible", func(t *testing.T) {
		require.NoError(t, repo.CreateProduct(ctx, newProduct("p2", "Red Dawn", 10)))
		n, err := repo.SoftDeleteProducts(ctx, []string{"p2", "p2", "missing"})
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		_, err = repo.GetProduct(ctx, "p2")
		require.True(t, errors.Is(err, biddingerrors.ErrProductNotFound))
		require.True(t, errors.Is(repo.LinkBid(ctx, "p2", "x"), biddingerrors.ErrProductNotFound))
		require.True(t, errors.Is(repo.UpdateProduct(ctx, newProduct("p2", "again", 10)), biddingerrors.ErrProductNotFound))
	})
}

// Test ListProducts
func TestMemoryRepo_ListProducts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	titles := []string{"Golden Field", "Silver Lake", "golden hour", "Night Owl"}
	for i, title := range titles {
		p := newProduct(fmt.Sprintf("p%d", i), title, 10)
		p.IsActive = i != 3
		require.NoError(t, repo.CreateProduct(ctx, p))
	}

	tests := []struct {
		name      string
		filter    model.ProductFilter
		wantIDs   []string
		wantTotal int64
	}{
		{name: "all_newest_first", filter: model.ProductFilter{Page: 1, Limit: 10}, wantIDs: []string{"p3", "p2", "p1", "p0"}, wantTotal: 4},
		{name: "active_only", filter: model.ProductFilter{ActiveOnly: true, Page: 1, Limit: 10}, wantIDs: []string{"p2", "p1", "p0"}, wantTotal: 3},
		{name: "case_insensitive_search", filter: model.ProductFilter{Search: "GOLDEN", Page: 1, Limit: 10}, wantIDs: []string{"p2", "p0"}, wantTotal: 2},
		{name: "paginated", filter: model.ProductFilter{Page: 2, Limit: 3}, wantIDs: []string{"p0"}, wantTotal: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products, total, err := repo.ListProducts(ctx, tc.filter)
			require.NoError(t, err)
			require.Equal(t, tc.wantTotal, total)
			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ProductID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}
}

// Test artist catalog operations
func TestMemoryRepo_Artists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	artists := []model.Artist{
		{ArtistID: "a1", Name: "Amrita Sher-Gil", Country: "India", IsActive: true, IsFeatured: true},
		{ArtistID: "a2", Name: "Frida Kahlo", Country: "Mexico", IsActive: true},
		{ArtistID: "a3", Name: "Sayed Haider Raza", Country: "India", IsActive: false, IsFeatured: true},
	}
	for _, a := range artists {
		require.NoError(t, repo.CreateArtist(ctx, a))
	}

	tests := []struct {
		name    string
		filter  model.ArtistFilter
		wantIDs []string
	}{
		{name: "all", filter: model.ArtistFilter{Page: 1, Limit: 10}, wantIDs: []string{"a3", "a2", "a1"}},
		{name: "search_by_country", filter: model.ArtistFilter{Search: "india", Page: 1, Limit: 10}, wantIDs: []string{"a3", "a1"}},
		{name: "search_by_name", filter: model.ArtistFilter{Search: "kahlo", Page: 1, Limit: 10}, wantIDs: []string{"a2"}},
		{name: "active_only", filter: model.ArtistFilter{ActiveOnly: true, Page: 1, Limit: 10}, wantIDs: []string{"a2", "a1"}},
		{name: "active_featured", filter: model.ArtistFilter{ActiveOnly: true, FeaturedOnly: true, Page: 1, Limit: 10}, wantIDs: []string{"a1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list, _, err := repo.ListArtists(ctx, tc.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(list))
			for _, a := range list {
				ids = append(ids, a.ArtistID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}

	t.Run("update_and_delete", func(t *testing.T) {
		require.NoError(t, repo.UpdateArtist(ctx, model.Artist{ArtistID: "a2", Name: "Frida", Bio: "painter", Country: "Mexico"}))
		a, err := repo.GetArtist(ctx, "a2")
		require.NoError(t, err)
		require.Equal(t, "Frida", a.Name)

		n, err := repo.SoftDeleteArtists(ctx, []string{"a2"})
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
		_, err = repo.GetArtist(ctx, "a2")
		require.True(t, errors.Is(err, biddingerrors.ErrArtistNotFound))
	})
}

// Test bidder directory
func TestMemoryRepo_GetBidder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	repo.AddBidder(model.Bidder{UserID: "u1", Name: "Ada", Email: "ada@example.com"})

	b, err := repo.GetBidder(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "Ada", b.Name)

	_, err = repo.GetBidder(ctx, "u2")
	require.True(t, errors.Is(err, biddingerrors.ErrBidderNotFound))
}
