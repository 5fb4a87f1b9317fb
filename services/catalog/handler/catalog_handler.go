package handler

import (
	"context"
	"net/http"

	model "art-auction/internal/models"
	bidhelpers "art-auction/services/bidding/helpers"
	"art-auction/services/catalog/helpers"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=catalog_handler.go -destination=mock_catalog_handler.go -package=handler

type CatalogServiceInterface interface {
	CreateProduct(ctx context.Context, p model.Product) (model.Product, error)
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	UpdateProduct(ctx context.Context, productID string, p model.Product) (model.Product, error)
	ListProducts(ctx context.Context, f model.ProductFilter) (model.Page[model.Product], error)
	DeleteProducts(ctx context.Context, ids []string) (int64, error)

	CreateArtist(ctx context.Context, a model.Artist) (model.Artist, error)
	GetArtist(ctx context.Context, artistID string) (model.Artist, error)
	UpdateArtist(ctx context.Context, artistID string, a model.Artist) (model.Artist, error)
	ListArtists(ctx context.Context, f model.ArtistFilter) (model.Page[model.Artist], error)
	DeleteArtists(ctx context.Context, ids []string) (int64, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateProductHandler handles POST /products
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), req.ToProduct())
	if err != nil {
		bidhelpers.RespondError(c, "CreateProductHandler", err, map[string]any{"title": req.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, p, "product created successfully")
	bidhelpers.LogSuccess("CreateProductHandler", "product created", map[string]any{"product_id": p.ProductID})
}

// GetProductHandler handles GET /products/:id
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		bidhelpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, p, "product retrieved successfully")
}

// UpdateProductHandler handles PUT /products/:id
func (h *CatalogHandler) UpdateProductHandler(c *gin.Context) {
	id := c.Param("id")
	var req helpers.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	p, err := h.service.UpdateProduct(c.Request.Context(), id, req.ToProduct())
	if err != nil {
		bidhelpers.RespondError(c, "UpdateProductHandler", err, map[string]any{"product_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "product updated successfully")
	bidhelpers.LogSuccess("UpdateProductHandler", "product updated", map[string]any{"product_id": id})
}

// ListProductsHandler handles GET /products (every non-deleted product)
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	h.listProducts(c, false)
}

// ListActiveProductsHandler handles GET /products/list
func (h *CatalogHandler) ListActiveProductsHandler(c *gin.Context) {
	h.listProducts(c, true)
}

func (h *CatalogHandler) listProducts(c *gin.Context, activeOnly bool) {
	page, limit := bidhelpers.PageParams(c)
	result, err := h.service.ListProducts(c.Request.Context(), model.ProductFilter{
		Search:     c.Query("search"),
		ActiveOnly: activeOnly,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		bidhelpers.RespondError(c, "ListProductsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ProductPageResponse{
		Products:    result.Items,
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	}, "products retrieved successfully")
}

// DeleteProductsHandler handles DELETE /products
func (h *CatalogHandler) DeleteProductsHandler(c *gin.Context) {
	var req bidhelpers.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "DeleteProductsHandler", err)
		return
	}

	n, err := h.service.DeleteProducts(c.Request.Context(), req.IDs)
	if err != nil {
		bidhelpers.RespondError(c, "DeleteProductsHandler", err, map[string]any{"ids": len(req.IDs)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidhelpers.DeleteResponse{ModifiedCount: n}, "products deleted successfully")
	bidhelpers.LogSuccess("DeleteProductsHandler", "products deleted", map[string]any{"modified": n})
}
