package engine

import (
	"fmt"
	"time"

	"mazad-engine/internal/auctionerrors"
	model "mazad-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Validate applies the bid acceptance rules to a snapshot of auction state.
// Pure: no side effects, no clock reads. Rules run in order:
//  1. the auction must be active and not past its end time
//  2. the seller may not bid on their own auction
//  3. the amount must reach the minimum (starting price for the first bid,
//     current bid plus one increment afterwards)
//
// There is no upper bound: a manual bid may exceed any auto-bid ceiling.
func Validate(auction model.Auction, proposed decimal.Decimal, bidderID string, now time.Time) error {
	if auction.Status != model.StatusActive || !now.Before(auction.EndTime) {
		return fmt.Errorf("validate bid on auction %s: %w", auction.ID, auctionerrors.ErrAuctionNotActive)
	}

	if bidderID == auction.SellerID {
		return fmt.Errorf("validate bid on auction %s: %w", auction.ID, auctionerrors.ErrSellerCannotBid)
	}

	if minimum := auction.MinimumBid(); proposed.LessThan(minimum) {
		return &auctionerrors.BidTooLowError{Minimum: minimum}
	}

	return nil
}
