package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"mazad-engine/internal/auctionerrors"
	"mazad-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Contention maps to 503 so callers retry after re-quoting the minimum;
// ledger corruption is an internal fault and stays opaque to callers.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrAutoBidNotFound):
		return http.StatusNotFound, "auto-bid not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction not active"
	case errors.Is(err, auctionerrors.ErrSellerCannotBid):
		return http.StatusForbidden, "seller cannot bid on own auction"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrRetryLater):
		return http.StatusServiceUnavailable, "auction busy, try again"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// MinimumFromError extracts the minimum acceptable amount from a bid-too-low
// rejection so the response carries an actionable figure. Returns "" when the
// error carries none.
func MinimumFromError(err error) string {
	var tooLow *auctionerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return tooLow.Minimum.String()
	}
	return ""
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
