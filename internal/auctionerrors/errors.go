package auctionerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAutoBidNotFound = errors.New("auto-bid not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Validation errors: returned synchronously to the caller, never retried by
// the engine.
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrAuctionNotActive = errors.New("auction not active")
	ErrSellerCannotBid  = errors.New("seller cannot bid on own auction")
	ErrBidTooLow        = errors.New("bid amount too low")
)

// ErrRetryLater is the transient contention error: the per-auction critical
// section could not be acquired in time. Safe to retry after re-quoting the
// minimum bid; never implies the bid was recorded.
var ErrRetryLater = errors.New("auction busy, retry later")

// ErrLedgerCorrupted marks an invariant violation in the bid ledger. Fatal:
// indicates an engine bug, surfaced to operators and never auto-corrected.
var ErrLedgerCorrupted = errors.New("bid ledger invariant violated")

// BidTooLowError carries the minimum acceptable amount so callers can show
// an actionable message. It matches ErrBidTooLow under errors.Is.
type BidTooLowError struct {
	Minimum decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low, minimum is %s", e.Minimum.String())
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}
