package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"art-auction/internal/auth"
	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"
	"art-auction/services/bidding/helpers"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, productID, bidderID string, amount float64) (model.PlacedBid, error)
	TopBids(ctx context.Context, productID string) ([]model.BidView, error)
	LatestBids(ctx context.Context) ([]model.BidView, error)
	ListBids(ctx context.Context, page, limit int) (model.Page[model.BidView], error)
	DeleteBids(ctx context.Context, ids []string) (int64, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
	live    LiveHub
}

func NewBiddingHandler(service BiddingServiceInterface, live LiveHub) *BiddingHandler {
	return &BiddingHandler{service: service, live: live}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidderID := req.BidderID
	if caller, ok := auth.UserID(c); ok {
		if bidderID != "" && bidderID != caller {
			err := errors.New("bidder_id does not match the authenticated user")
			utils.JSONError(c, http.StatusForbidden, err, "cannot bid on behalf of another user")
			utils.Warn("PlaceBidHandler: bidder mismatch", map[string]any{"caller": caller, "bidder_id": bidderID})
			return
		}
		bidderID = caller
	}
	if bidderID == "" {
		helpers.RespondError(c, "PlaceBidHandler", fmt.Errorf("%w - bidder_id is required", biddingerrors.ErrInvalidBid), nil)
		return
	}

	placed, err := h.service.PlaceBid(c.Request.Context(), req.ProductID, bidderID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": req.ProductID,
			"bidder_id":  bidderID,
			"amount":     req.Amount,
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:        helpers.ToBidResponse(placed.Bid),
		NextMinBid: placed.NextMinBid,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     placed.Bid.BidID,
		"product_id": placed.Bid.ProductID,
		"bidder_id":  bidderID,
		"amount":     placed.Bid.Amount,
	})
}

// TopBidsHandler handles GET /bids/:product_id
func (h *BiddingHandler) TopBidsHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.TopBids(c.Request.Context(), productID)
	if err != nil {
		helpers.RespondError(c, "TopBidsHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "top bids retrieved successfully")
	helpers.LogSuccess("TopBidsHandler", "top bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// LatestBidsHandler handles GET /bids/latest
func (h *BiddingHandler) LatestBidsHandler(c *gin.Context) {
	bids, err := h.service.LatestBids(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "LatestBidsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "latest bids retrieved successfully")
}

// ListBidsHandler handles GET /bids?page=&limit=
func (h *BiddingHandler) ListBidsHandler(c *gin.Context) {
	page, limit := helpers.PageParams(c)
	result, err := h.service.ListBids(c.Request.Context(), page, limit)
	if err != nil {
		helpers.RespondError(c, "ListBidsHandler", err, map[string]any{"page": page, "limit": limit})
		return
	}

	resp := helpers.BidPageResponse{
		Bids:        helpers.ToBidResponses(result.Items),
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// DeleteBidsHandler handles DELETE /bids
func (h *BiddingHandler) DeleteBidsHandler(c *gin.Context) {
	var req helpers.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteBidsHandler", err)
		return
	}

	n, err := h.service.DeleteBids(c.Request.Context(), req.IDs)
	if err != nil {
		helpers.RespondError(c, "DeleteBidsHandler", err, map[string]any{"ids": len(req.IDs)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.DeleteResponse{ModifiedCount: n}, "bids deleted successfully")
	helpers.LogSuccess("DeleteBidsHandler", "bids deleted successfully", map[string]any{"modified": n})
}
