package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MockCatalogServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockCatalogServiceInterface(ctrl)
	h := NewCatalogHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products", h.CreateProductHandler)
	router.GET("/products", h.ListProductsHandler)
	router.GET("/products/list", h.ListActiveProductsHandler)
	router.GET("/products/:id", h.GetProductHandler)
	router.PUT("/products/:id", h.UpdateProductHandler)
	router.DELETE("/products", h.DeleteProductsHandler)
	router.POST("/artists", h.CreateArtistHandler)
	router.GET("/artists", h.ListArtistsHandler)
	router.GET("/artists/list", h.ListActiveArtistsHandler)
	router.GET("/artists/featured", h.ListFeaturedArtistsHandler)
	router.GET("/artists/:id", h.GetArtistHandler)
	router.PUT("/artists/:id", h.UpdateArtistHandler)
	router.DELETE("/artists", h.DeleteArtistsHandler)
	return router, mockService
}

func do(router *gin.Engine, method, path, body string) (int, map[string]any) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

func TestProductHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	tests := []struct {
		name           string
		method, path   string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "create_defaults_to_active",
			method: http.MethodPost, path: "/products",
			body: `{"title":"Sunset","minimum_bid":50}`,
			mockSetup: func() {
				mockService.EXPECT().
					CreateProduct(gomock.Any(), model.Product{Title: "Sunset", MinimumBid: 50, IsActive: true}).
					Return(model.Product{ProductID: "p1", Title: "Sunset", MinimumBid: 50, IsActive: true}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "product created successfully",
		},
		{
			name:   "create_validation_lists_fields",
			method: http.MethodPost, path: "/products",
			body: `{"description":"untitled","is_active":false}`,
			mockSetup: func() {
				v := &biddingerrors.ValidationError{}
				v.Add("title", "Title is required")
				v.Add("minimum_bid", "Minimum bid must be greater than zero")
				mockService.EXPECT().
					CreateProduct(gomock.Any(), model.Product{Description: "untitled"}).
					Return(model.Product{}, v)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "validation failed",
		},
		{
			name:   "get_not_found",
			method: http.MethodGet, path: "/products/missing",
			mockSetup: func() {
				mockService.EXPECT().GetProduct(gomock.Any(), "missing").Return(model.Product{}, biddingerrors.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "product not found",
		},
		{
			name:   "update",
			method: http.MethodPut, path: "/products/p1",
			body: `{"title":"Dusk","minimum_bid":60,"sold_out":true}`,
			mockSetup: func() {
				mockService.EXPECT().
					UpdateProduct(gomock.Any(), "p1", model.Product{Title: "Dusk", MinimumBid: 60, SoldOut: true, IsActive: true}).
					Return(model.Product{ProductID: "p1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "product updated successfully",
		},
		{
			name:   "list_all",
			method: http.MethodGet, path: "/products?search=blue&page=2&limit=5",
			mockSetup: func() {
				mockService.EXPECT().
					ListProducts(gomock.Any(), model.ProductFilter{Search: "blue", Page: 2, Limit: 5}).
					Return(model.NewPage([]model.Product{{ProductID: "p1"}}, 6, 2, 5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "products retrieved successfully",
		},
		{
			name:   "list_active",
			method: http.MethodGet, path: "/products/list",
			mockSetup: func() {
				mockService.EXPECT().
					ListProducts(gomock.Any(), model.ProductFilter{ActiveOnly: true, Page: 1, Limit: model.DefaultPageLimit}).
					Return(model.NewPage[model.Product](nil, 0, 1, model.DefaultPageLimit), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "products retrieved successfully",
		},
		{
			name:   "delete",
			method: http.MethodDelete, path: "/products",
			body: `{"ids":["p1","p2"]}`,
			mockSetup: func() {
				mockService.EXPECT().DeleteProducts(gomock.Any(), []string{"p1", "p2"}).Return(int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "products deleted successfully",
		},
		{
			name:   "delete_store_failure",
			method: http.MethodDelete, path: "/products",
			body: `{"ids":["p9"]}`,
			mockSetup: func() {
				mockService.EXPECT().DeleteProducts(gomock.Any(), []string{"p9"}).Return(int64(0), errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			status, resp := do(router, tc.method, tc.path, tc.body)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestProductHandlers_MissingFieldsPayload(t *testing.T) {
	router, mockService := newTestRouter(t)

	v := &biddingerrors.ValidationError{}
	v.Add("title", "Title is required")
	mockService.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(model.Product{}, v)

	status, resp := do(router, http.MethodPost, "/products", `{"minimum_bid":5}`)
	require.Equal(t, http.StatusBadRequest, status)
	fields, ok := resp["missingFields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)
	require.Equal(t, "title", fields[0].(map[string]any)["name"])
}

func TestArtistHandlers(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().
		CreateArtist(gomock.Any(), model.Artist{Name: "Frida", Bio: "Painter", Country: "Mexico", IsActive: true, IsFeatured: true}).
		Return(model.Artist{ArtistID: "a1", Name: "Frida"}, nil)
	status, resp := do(router, http.MethodPost, "/artists", `{"name":"Frida","bio":"Painter","country":"Mexico","is_featured":true}`)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "a1", resp["data"].(map[string]any)["artist_id"])

	mockService.EXPECT().
		ListArtists(gomock.Any(), model.ArtistFilter{ActiveOnly: true, FeaturedOnly: true, Page: 1, Limit: model.DefaultPageLimit}).
		Return(model.NewPage([]model.Artist{{ArtistID: "a1"}}, 1, 1, model.DefaultPageLimit), nil)
	status, resp = do(router, http.MethodGet, "/artists/featured", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp["data"].(map[string]any)["artists"], 1)

	mockService.EXPECT().
		ListArtists(gomock.Any(), model.ArtistFilter{ActiveOnly: true, Search: "fr", Page: 1, Limit: model.DefaultPageLimit}).
		Return(model.NewPage[model.Artist](nil, 0, 1, model.DefaultPageLimit), nil)
	status, _ = do(router, http.MethodGet, "/artists/list?search=fr", "")
	require.Equal(t, http.StatusOK, status)

	mockService.EXPECT().GetArtist(gomock.Any(), "gone").Return(model.Artist{}, biddingerrors.ErrArtistNotFound)
	status, resp = do(router, http.MethodGet, "/artists/gone", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, resp["message"], "artist not found")

	mockService.EXPECT().DeleteArtists(gomock.Any(), []string{"a1"}).Return(int64(1), nil)
	status, resp = do(router, http.MethodDelete, "/artists", `{"ids":["a1"]}`)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, resp["data"].(map[string]any)["modified_count"])

	status, _ = do(router, http.MethodDelete, "/artists", `{"ids":[]}`)
	require.Equal(t, http.StatusBadRequest, status)
}
