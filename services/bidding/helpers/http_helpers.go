package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"art-auction/internal/biddingerrors"
	model "art-auction/internal/models"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var tooLow *biddingerrors.BidTooLowError
	switch {
	case errors.Is(err, biddingerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, biddingerrors.ErrArtistNotFound):
		return http.StatusNotFound, "artist not found"
	case errors.As(err, &tooLow):
		return http.StatusBadRequest, tooLow.Error()
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusBadRequest, "auction is closed for this product"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrInvalidInput):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it. Validation errors also
// list their offending fields.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	var verr *biddingerrors.ValidationError
	if errors.As(err, &verr) {
		utils.JSONValidationError(c, status, err, message, verr.Fields)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
	} else {
		utils.Warn(handlerName+": request rejected", fields)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// PageParams reads the page and limit query parameters; bad values fall back to defaults
func PageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(model.DefaultPageLimit)))
	return model.NormalizePage(page, limit)
}

// ToBidResponse converts a resolved bid to its wire form
func ToBidResponse(b model.BidView) BidResponse {
	resp := BidResponse{
		BidID:     b.BidID,
		ProductID: b.ProductID,
		Bidder: BidderResponse{
			UserID: b.BidderID,
			Name:   b.Bidder.Name,
			Email:  b.Bidder.Email,
		},
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.Product != nil {
		resp.Product = &ProductSummaryResponse{Title: b.Product.Title, MinimumBid: b.Product.MinimumBid}
	}
	return resp
}

// ToBidResponses converts a list, never returning nil
func ToBidResponses(bids []model.BidView) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}
