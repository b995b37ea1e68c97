package helpers

import (
	"time"

	model "mazad-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	BidderID string          `json:"bidder_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

type SetAutoBidRequest struct {
	UserID       string          `json:"user_id" binding:"required"`
	MaxBidAmount decimal.Decimal `json:"max_bid_amount" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	Amount    string `json:"amount"`
	IsAutoBid bool   `json:"is_autobid"`
	CreatedAt string `json:"created_at"`
}

type BidResultResponse struct {
	Bid             BidResponse `json:"bid"`
	CurrentBid      string      `json:"current_bid"`
	HighestBidderID string      `json:"highest_bidder_id"`
	EndTime         string      `json:"end_time"`
	Extended        bool        `json:"extended"`
}

type AutoBidResponse struct {
	ID           string `json:"id"`
	AuctionID    string `json:"auction_id"`
	UserID       string `json:"user_id"`
	MaxBidAmount string `json:"max_bid_amount"`
	IsActive     bool   `json:"is_active"`
}

// NewBidResponse converts a ledger entry to its wire shape
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount.String(),
		IsAutoBid: bid.IsAutoBid,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResultResponse converts a bid result to its wire shape
func NewBidResultResponse(result model.BidResult) BidResultResponse {
	return BidResultResponse{
		Bid:             NewBidResponse(result.Bid),
		CurrentBid:      result.CurrentBid.String(),
		HighestBidderID: result.HighestBidderID,
		EndTime:         result.EndTime.UTC().Format(time.RFC3339),
		Extended:        result.Extended,
	}
}

// NewAutoBidResponse converts an instruction to its wire shape
func NewAutoBidResponse(autoBid model.AutoBid) AutoBidResponse {
	return AutoBidResponse{
		ID:           autoBid.ID,
		AuctionID:    autoBid.AuctionID,
		UserID:       autoBid.UserID,
		MaxBidAmount: autoBid.MaxBidAmount.String(),
		IsActive:     autoBid.IsActive,
	}
}
