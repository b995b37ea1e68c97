package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusScheduled AuctionStatus = "scheduled"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
)

// Auction holds the durable state of one auction. CurrentBid is null until
// the first bid is accepted; ReservePrice is a hidden floor that may be null
// and is never serialized to clients.
type Auction struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Category        string              `json:"category"`
	SellerID        string              `json:"seller_id"`
	StartingPrice   decimal.Decimal     `json:"starting_price"`
	BidIncrement    decimal.Decimal     `json:"bid_increment"`
	CurrentBid      decimal.NullDecimal `json:"current_bid"`
	HighestBidderID string              `json:"highest_bidder_id,omitempty"`
	ReservePrice    decimal.NullDecimal `json:"-"`
	EndTime         time.Time           `json:"end_time"`
	Status          AuctionStatus       `json:"status"`
	Views           int64               `json:"views"`
}

// MinimumBid returns the lowest amount the next bid may carry: the starting
// price while no bid exists, otherwise current bid plus one increment.
func (a Auction) MinimumBid() decimal.Decimal {
	if a.CurrentBid.Valid {
		return a.CurrentBid.Decimal.Add(a.BidIncrement)
	}
	return a.StartingPrice
}

// ReserveMet reports whether the current bid satisfies the hidden reserve.
// A null reserve is always met.
func (a Auction) ReserveMet() bool {
	if !a.ReservePrice.Valid {
		return true
	}
	return a.CurrentBid.Valid && a.CurrentBid.Decimal.GreaterThanOrEqual(a.ReservePrice.Decimal)
}

// Bid is one immutable ledger entry. Entries for an auction are totally
// ordered by CreatedAt with strictly increasing Amount.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	IsAutoBid bool            `json:"is_autobid"`
}

// AutoBid is a standing proxy-bid instruction: bid on the user's behalf up to
// MaxBidAmount. At most one active instruction exists per (auction, user).
type AutoBid struct {
	ID           string          `json:"id"`
	AuctionID    string          `json:"auction_id"`
	UserID       string          `json:"user_id"`
	MaxBidAmount decimal.Decimal `json:"max_bid_amount"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BidResult reports the outcome of a successfully placed bid. CurrentBid and
// HighestBidderID reflect the post-resolution state, which may be higher than
// the placed bid when auto-bids escalate past it.
type BidResult struct {
	Bid             Bid             `json:"bid"`
	CurrentBid      decimal.Decimal `json:"current_bid"`
	HighestBidderID string          `json:"highest_bidder_id"`
	EndTime         time.Time       `json:"end_time"`
	Extended        bool            `json:"extended"`
}

// EventType identifies an engine outcome published to subscribers.
type EventType string

const (
	EventBidAccepted        EventType = "bid_accepted"
	EventOutbid             EventType = "outbid"
	EventAuctionExtended    EventType = "auction_extended"
	EventAuctionEnded       EventType = "auction_ended"
	EventAuctionWon         EventType = "auction_won"
	EventAutoBidDeactivated EventType = "autobid_deactivated"
)

// AuctionEvent is one entry of an auction's outbound event stream. Delivery
// is at-least-once and follows ledger order for the auction. UserID is the
// subject of the event: the bidder for bid_accepted, the displaced bidder for
// outbid, the winner for auction_won, the instruction owner for
// autobid_deactivated.
type AuctionEvent struct {
	AuctionID string              `json:"auction_id"`
	Type      EventType           `json:"type"`
	UserID    string              `json:"user_id,omitempty"`
	BidID     string              `json:"bid_id,omitempty"`
	Amount    decimal.NullDecimal `json:"amount"`
	EndTime   *time.Time          `json:"end_time,omitempty"`
	At        time.Time           `json:"at"`
}
