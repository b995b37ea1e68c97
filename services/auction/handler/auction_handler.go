package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"mazad-engine/internal/auctionerrors"
	model "mazad-engine/internal/models"
	"mazad-engine/services/auction/helpers"
	"mazad-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) (model.BidResult, error)
	SetAutoBid(ctx context.Context, auctionID, userID string, maxAmount decimal.Decimal) (model.AutoBid, error)
	CancelAutoBid(ctx context.Context, auctionID, userID string) error
	CloseIfExpired(ctx context.Context, auctionID string) error
	GetAuction(auctionID string) (model.Auction, error)
	ListBids(auctionID string) ([]model.Bid, error)
}

// EventSource exposes per-auction event subscriptions for streaming.
type EventSource interface {
	Subscribe(auctionID string) (<-chan model.AuctionEvent, func())
}

type AuctionHandler struct {
	service AuctionServiceInterface
	events  EventSource
}

func NewAuctionHandler(service AuctionServiceInterface, events EventSource) *AuctionHandler {
	return &AuctionHandler{service: service, events: events}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.service.PlaceBid(c.Request.Context(), auctionID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if minimum := helpers.MinimumFromError(err); minimum != "" {
			message = fmt.Sprintf("bid amount too low, minimum is %s", minimum)
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResultResponse(result), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":      result.Bid.BidID,
		"auction_id":  auctionID,
		"bidder_id":   req.BidderID,
		"amount":      result.Bid.Amount.String(),
		"current_bid": result.CurrentBid.String(),
	})
}

// SetAutoBidHandler handles PUT /auctions/:auction_id/autobid
func (h *AuctionHandler) SetAutoBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.SetAutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAutoBidHandler", err)
		return
	}

	autoBid, err := h.service.SetAutoBid(c.Request.Context(), auctionID, req.UserID, req.MaxBidAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetAutoBidHandler: failed to set auto-bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAutoBidResponse(autoBid), "auto-bid set successfully")
	helpers.LogSuccess("SetAutoBidHandler", "auto-bid set successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"ceiling":    req.MaxBidAmount.String(),
	})
}

// CancelAutoBidHandler handles DELETE /auctions/:auction_id/autobid/:user_id
func (h *AuctionHandler) CancelAutoBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	userID := c.Param("user_id")

	if err := h.service.CancelAutoBid(c.Request.Context(), auctionID, userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelAutoBidHandler: failed to cancel auto-bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auto-bid cancelled successfully")
	helpers.LogSuccess("CancelAutoBidHandler", "auto-bid cancelled successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
	})
}

// CloseAuctionHandler handles POST /auctions/:auction_id/close, invoked by the
// periodic scheduler. Closing an auction that is not yet expired, or one
// already ended, is a successful no-op.
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	if err := h.service.CloseIfExpired(c.Request.Context(), auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseAuctionHandler: failed to close auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "close evaluated")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.service.ListBids(auctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	responses := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		responses = append(responses, helpers.NewBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, responses, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(responses),
	})
}

// StreamEventsHandler handles GET /auctions/:auction_id/events as an SSE
// stream of the auction's event feed. The subscription lives until the client
// disconnects.
func (h *AuctionHandler) StreamEventsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	events, cancel := h.events.Subscribe(auctionID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
