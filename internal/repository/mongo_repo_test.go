package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestMongoRepo connects to AUCTION_TEST_MONGO_URI using a throwaway database
func newTestMongoRepo(t *testing.T) *MongoRepo {
	t.Helper()

	uri := os.Getenv("AUCTION_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("AUCTION_TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	dbName := "auction_test_" + uuid.NewString()[:8]
	repo, err := NewMongoRepo(ctx, uri, dbName)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.client.Database(dbName).Drop(ctx)
		_ = repo.Close(ctx)
	})
	return repo
}

func TestMongoRepo_Ledger(t *testing.T) {
	repo := newTestMongoRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.Append(ctx, newBid("b1", "product1", "u1", 30, now)))
	require.NoError(t, repo.Append(ctx, newBid("b2", "product1", "u2", 90, now.Add(time.Second))))
	require.NoError(t, repo.Append(ctx, newBid("b3", "product1", "u3", 60, now.Add(2*time.Second))))
	require.NoError(t, repo.Append(ctx, newBid("c1", "product2", "u1", 500, now.Add(3*time.Second))))

	err := repo.Append(ctx, newBid("b1", "product1", "u9", 999, now))
	require.True(t, errors.Is(err, biddingerrors.ErrStore))

	top, err := repo.TopN(ctx, "product1", 5)
	require.NoError(t, err)
	require.Equal(t, []float64{90, 60, 30}, amounts(top))

	latest, err := repo.LatestN(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "b3"}, []string{latest[0].BidID, latest[1].BidID})

	highest, ok, err := repo.HighestActive(ctx, "product1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 90.0, highest)

	n, err := repo.SoftDelete(ctx, []string{"b2", "b2"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	n, err = repo.SoftDelete(ctx, []string{"b2"})
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	page, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, page, 2)

	n, err = repo.SoftDeleteByProduct(ctx, []string{"product1"})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	_, ok, err = repo.HighestActive(ctx, "product1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.MarkOrphaned(ctx, "c1"))
	orphans, err := repo.ListOrphaned(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	require.NoError(t, repo.ClearOrphaned(ctx, "c1"))
}

func TestMongoRepo_Catalog(t *testing.T) {
	repo := newTestMongoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("p1", "Golden Field", 50)))
	require.NoError(t, repo.LinkBid(ctx, "p1", "bid-b"))
	require.NoError(t, repo.LinkBid(ctx, "p1", "bid-a"))
	require.NoError(t, repo.LinkBid(ctx, "p1", "bid-b"))

	require.NoError(t, repo.UpdateProduct(ctx, newProduct("p1", "Golden Field II", 60)))
	p, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Golden Field II", p.Title)
	require.Equal(t, []string{"bid-b", "bid-a"}, p.BidIDs)

	list, total, err := repo.ListProducts(ctx, model.ProductFilter{Search: "golden", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, list, 1)

	n, err := repo.SoftDeleteProducts(ctx, []string{"p1"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	_, err = repo.GetProduct(ctx, "p1")
	require.True(t, errors.Is(err, biddingerrors.ErrProductNotFound))

	require.NoError(t, repo.CreateArtist(ctx, model.Artist{ArtistID: "a1", Name: "Frida Kahlo", Country: "Mexico", IsActive: true}))
	artists, _, err := repo.ListArtists(ctx, model.ArtistFilter{Search: "mexico", ActiveOnly: true, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, artists, 1)

	require.NoError(t, repo.AddBidder(ctx, model.Bidder{UserID: "u1", Name: "Ada", Email: "ada@example.com"}))
	b, err := repo.GetBidder(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", b.Email)
}
