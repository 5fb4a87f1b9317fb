package handler

import (
	"net/http"

	model "art-auction/internal/models"
	bidhelpers "art-auction/services/bidding/helpers"
	"art-auction/services/catalog/helpers"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
)

// CreateArtistHandler handles POST /artists
func (h *CatalogHandler) CreateArtistHandler(c *gin.Context) {
	var req helpers.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "CreateArtistHandler", err)
		return
	}

	a, err := h.service.CreateArtist(c.Request.Context(), req.ToArtist())
	if err != nil {
		bidhelpers.RespondError(c, "CreateArtistHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "artist created successfully")
	bidhelpers.LogSuccess("CreateArtistHandler", "artist created", map[string]any{"artist_id": a.ArtistID})
}

// GetArtistHandler handles GET /artists/:id
func (h *CatalogHandler) GetArtistHandler(c *gin.Context) {
	id := c.Param("id")
	a, err := h.service.GetArtist(c.Request.Context(), id)
	if err != nil {
		bidhelpers.RespondError(c, "GetArtistHandler", err, map[string]any{"artist_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "artist retrieved successfully")
}

// UpdateArtistHandler handles PUT /artists/:id
func (h *CatalogHandler) UpdateArtistHandler(c *gin.Context) {
	id := c.Param("id")
	var req helpers.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "UpdateArtistHandler", err)
		return
	}

	a, err := h.service.UpdateArtist(c.Request.Context(), id, req.ToArtist())
	if err != nil {
		bidhelpers.RespondError(c, "UpdateArtistHandler", err, map[string]any{"artist_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "artist updated successfully")
}

// ListArtistsHandler handles GET /artists
func (h *CatalogHandler) ListArtistsHandler(c *gin.Context) {
	h.listArtists(c, model.ArtistFilter{})
}

// ListActiveArtistsHandler handles GET /artists/list
func (h *CatalogHandler) ListActiveArtistsHandler(c *gin.Context) {
	h.listArtists(c, model.ArtistFilter{ActiveOnly: true})
}

// ListFeaturedArtistsHandler handles GET /artists/featured
func (h *CatalogHandler) ListFeaturedArtistsHandler(c *gin.Context) {
	h.listArtists(c, model.ArtistFilter{ActiveOnly: true, FeaturedOnly: true})
}

func (h *CatalogHandler) listArtists(c *gin.Context, f model.ArtistFilter) {
	f.Page, f.Limit = bidhelpers.PageParams(c)
	f.Search = c.Query("search")

	result, err := h.service.ListArtists(c.Request.Context(), f)
	if err != nil {
		bidhelpers.RespondError(c, "ListArtistsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ArtistPageResponse{
		Artists:     result.Items,
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	}, "artists retrieved successfully")
}

// DeleteArtistsHandler handles DELETE /artists
func (h *CatalogHandler) DeleteArtistsHandler(c *gin.Context) {
	var req bidhelpers.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "DeleteArtistsHandler", err)
		return
	}

	n, err := h.service.DeleteArtists(c.Request.Context(), req.IDs)
	if err != nil {
		bidhelpers.RespondError(c, "DeleteArtistsHandler", err, map[string]any{"ids": len(req.IDs)})
		return
	}
	utils.JSONResponse(c, http.StatusOK, bidhelpers.DeleteResponse{ModifiedCount: n}, "artists deleted successfully")
}
