package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"art-auction/internal/auth"
	bidding "art-auction/internal/biddingService"
	catalog "art-auction/internal/catalogService"
	model "art-auction/internal/models"
	"art-auction/internal/notify"
	"art-auction/internal/repository"
	"art-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testEnv is a fully wired server over the in-memory repository
type testEnv struct {
	router   *gin.Engine
	repo     *repository.MemoryRepo
	hub      *notify.Hub
	verifier *auth.Verifier
}

// SetupTestEnv wires the router with an in-memory repository seeded with products and
// bidders user1..user5. A non-empty secret turns identity checks on.
func SetupTestEnv(t *testing.T, secret string, products ...model.Product) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, p := range products {
		require.NoError(t, repo.CreateProduct(context.Background(), p))
	}
	for _, id := range []string{"user1", "user2", "user3", "user4", "user5"} {
		repo.AddBidder(model.Bidder{UserID: id, Name: "Bidder " + id})
	}

	hub := notify.NewHub(16)
	var svc *bidding.BiddingService
	dispatcher := notify.NewDispatcher(hub, nil, func(ctx context.Context) ([]model.BidView, error) {
		return svc.LatestBids(ctx)
	}, 64, 1)
	svc = bidding.NewBiddingService(repo, repo, repo, bidding.WithNotifier(dispatcher))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = dispatcher.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		hub.Close()
	})

	var verifier *auth.Verifier
	if secret != "" {
		verifier = auth.NewVerifier(secret)
	}

	return &testEnv{
		router:   server.SetupRouter(svc, catalog.NewCatalogService(repo, repo), hub, verifier),
		repo:     repo,
		hub:      hub,
		verifier: verifier,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers ...string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

func product(id string, minimumBid float64) model.Product {
	return model.Product{ProductID: id, Title: "title " + id, MinimumBid: minimumBid, IsActive: true}
}
