package engine

import (
	"context"
	"fmt"
	"time"

	"mazad-engine/internal/auctionerrors"
	"mazad-engine/internal/events"
	model "mazad-engine/internal/models"
	"mazad-engine/internal/repository"
	"mazad-engine/utils"

	"github.com/shopspring/decimal"
)

// Default policy values. The 15-minute window/duration pair implements the
// anti-sniping rule: a bid landing inside the trailing window resets the end
// time to a fixed horizon from that bid, never accumulating.
const (
	DefaultExtensionWindow   = 15 * time.Minute
	DefaultExtensionDuration = 15 * time.Minute
	DefaultLockTimeout       = 3 * time.Second
)

// Options tune the engine's policies. Zero values fall back to defaults;
// Clock defaults to the wall clock and exists so tests can drive time.
type Options struct {
	ExtensionWindow   time.Duration
	ExtensionDuration time.Duration
	LockTimeout       time.Duration
	Clock             func() time.Time
}

// Engine orchestrates bid acceptance: validation, atomic state transition,
// end-time extension, auto-bid escalation, and event emission. All mutation
// of one auction happens inside that auction's critical section; emitted
// events are queued there and delivered asynchronously in ledger order.
type Engine struct {
	store   repository.Store
	emitter events.Emitter
	locks   *keyedLocks
	opts    Options
}

// New creates an Engine over the given store and emitter
func New(store repository.Store, emitter events.Emitter, opts Options) *Engine {
	if opts.ExtensionWindow <= 0 {
		opts.ExtensionWindow = DefaultExtensionWindow
	}
	if opts.ExtensionDuration <= 0 {
		opts.ExtensionDuration = DefaultExtensionDuration
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = DefaultLockTimeout
	}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Now().UTC() }
	}
	return &Engine{
		store:   store,
		emitter: emitter,
		locks:   newKeyedLocks(),
		opts:    opts,
	}
}

// PlaceBid attempts to record one manual bid atomically. On acceptance it
// evaluates the extension policy, runs auto-bid resolution to convergence
// inside the same critical section, and returns the final state, whose
// current bid may sit above the placed amount if auto-bids escalated past it.
// Validation failures are returned as-is and are never retried here; a
// caller that loses a concurrent race is re-validated against the post-update
// state and may still be accepted as a valid subsequent bid.
func (e *Engine) PlaceBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) (model.BidResult, error) {
	if auctionID == "" || bidderID == "" {
		return model.BidResult{}, fmt.Errorf("engine: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return model.BidResult{}, fmt.Errorf("engine: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	if err := e.locks.acquire(ctx, auctionID, e.opts.LockTimeout); err != nil {
		return model.BidResult{}, fmt.Errorf("engine: place bid on auction %s: %w", auctionID, err)
	}
	defer e.locks.release(auctionID)

	bid, extended, err := e.acceptBid(auctionID, bidderID, amount, false)
	if err != nil {
		return model.BidResult{}, err
	}

	if err := e.resolveAutoBids(auctionID); err != nil {
		return model.BidResult{}, err
	}

	auction, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.BidResult{}, fmt.Errorf("engine: reload auction %s: %w", auctionID, err)
	}

	return model.BidResult{
		Bid:             bid,
		CurrentBid:      auction.CurrentBid.Decimal,
		HighestBidderID: auction.HighestBidderID,
		EndTime:         auction.EndTime,
		Extended:        extended,
	}, nil
}

// acceptBid runs one bid through validation, ledger append, record update,
// extension policy, and event emission. Caller holds the auction's lock.
// Auto-bid resolution re-enters here with isAutoBid=true; it must not recurse
// back into resolution, so resolution stays with the callers.
func (e *Engine) acceptBid(auctionID, bidderID string, amount decimal.Decimal, isAutoBid bool) (model.Bid, bool, error) {
	auction, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.Bid{}, false, fmt.Errorf("engine: load auction %s: %w", auctionID, err)
	}

	now := e.opts.Clock()
	if err := Validate(auction, amount, bidderID, now); err != nil {
		return model.Bid{}, false, err
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: now,
		IsAutoBid: isAutoBid,
	}
	if err := e.store.AppendBid(bid); err != nil {
		return model.Bid{}, false, fmt.Errorf("engine: append bid for auction %s: %w", auctionID, err)
	}

	previousBidder := auction.HighestBidderID
	auction.CurrentBid = decimal.NewNullDecimal(amount)
	auction.HighestBidderID = bidderID

	// Anti-sniping: a bid inside the trailing window resets the end time to a
	// fixed horizon from this bid. Auto-bids qualify like manual bids.
	extended := false
	if auction.EndTime.Sub(now) < e.opts.ExtensionWindow {
		auction.EndTime = now.Add(e.opts.ExtensionDuration)
		extended = true
	}

	if err := e.store.UpdateAuction(auction); err != nil {
		return model.Bid{}, false, fmt.Errorf("engine: update auction %s: %w", auctionID, err)
	}

	e.emitter.Publish(model.AuctionEvent{
		AuctionID: auctionID,
		Type:      model.EventBidAccepted,
		UserID:    bidderID,
		BidID:     bid.BidID,
		Amount:    decimal.NewNullDecimal(amount),
		At:        now,
	})
	if previousBidder != "" && previousBidder != bidderID {
		e.emitter.Publish(model.AuctionEvent{
			AuctionID: auctionID,
			Type:      model.EventOutbid,
			UserID:    previousBidder,
			BidID:     bid.BidID,
			Amount:    decimal.NewNullDecimal(amount),
			At:        now,
		})
	}
	if extended {
		endTime := auction.EndTime
		e.emitter.Publish(model.AuctionEvent{
			AuctionID: auctionID,
			Type:      model.EventAuctionExtended,
			EndTime:   &endTime,
			At:        now,
		})
	}

	utils.Debug("bid accepted", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount.String(),
		"is_autobid": isAutoBid,
		"extended":   extended,
	})

	return bid, extended, nil
}

// SetAutoBid registers or raises a proxy-bid instruction, then runs
// resolution so the instruction competes immediately. The instruction ceiling
// must reach the current minimum bid or the instruction would be born unable
// to act.
func (e *Engine) SetAutoBid(ctx context.Context, auctionID, userID string, maxAmount decimal.Decimal) (model.AutoBid, error) {
	if auctionID == "" || userID == "" {
		return model.AutoBid{}, fmt.Errorf("engine: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if !maxAmount.IsPositive() {
		return model.AutoBid{}, fmt.Errorf("engine: %w - non-positive ceiling", auctionerrors.ErrInvalidBid)
	}

	if err := e.locks.acquire(ctx, auctionID, e.opts.LockTimeout); err != nil {
		return model.AutoBid{}, fmt.Errorf("engine: set auto-bid on auction %s: %w", auctionID, err)
	}
	defer e.locks.release(auctionID)

	auction, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.AutoBid{}, fmt.Errorf("engine: load auction %s: %w", auctionID, err)
	}

	now := e.opts.Clock()
	if auction.Status != model.StatusActive || !now.Before(auction.EndTime) {
		return model.AutoBid{}, fmt.Errorf("engine: set auto-bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotActive)
	}
	if userID == auction.SellerID {
		return model.AutoBid{}, fmt.Errorf("engine: set auto-bid on auction %s: %w", auctionID, auctionerrors.ErrSellerCannotBid)
	}
	if minimum := auction.MinimumBid(); maxAmount.LessThan(minimum) {
		return model.AutoBid{}, &auctionerrors.BidTooLowError{Minimum: minimum}
	}

	saved, err := e.store.SaveAutoBid(model.AutoBid{
		ID:           utils.GenerateID(),
		AuctionID:    auctionID,
		UserID:       userID,
		MaxBidAmount: maxAmount,
		IsActive:     true,
		CreatedAt:    now,
	})
	if err != nil {
		return model.AutoBid{}, fmt.Errorf("engine: save auto-bid for auction %s: %w", auctionID, err)
	}

	if err := e.resolveAutoBids(auctionID); err != nil {
		return model.AutoBid{}, err
	}

	return saved, nil
}

// CancelAutoBid deactivates the caller's proxy-bid instruction
func (e *Engine) CancelAutoBid(ctx context.Context, auctionID, userID string) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("engine: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}

	if err := e.locks.acquire(ctx, auctionID, e.opts.LockTimeout); err != nil {
		return fmt.Errorf("engine: cancel auto-bid on auction %s: %w", auctionID, err)
	}
	defer e.locks.release(auctionID)

	if err := e.store.DeactivateAutoBid(auctionID, userID); err != nil {
		return fmt.Errorf("engine: cancel auto-bid for auction %s user %s: %w", auctionID, userID, err)
	}
	return nil
}

// CloseIfExpired transitions an active auction past its end time to ended,
// emitting auction_ended and, when the hidden reserve is met, auction_won.
// Safe to invoke concurrently and repeatedly: a non-active auction is a
// no-op, so events are never duplicated.
func (e *Engine) CloseIfExpired(ctx context.Context, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("engine: %w - missing auctionID", auctionerrors.ErrInvalidBid)
	}

	if err := e.locks.acquire(ctx, auctionID, e.opts.LockTimeout); err != nil {
		return fmt.Errorf("engine: close auction %s: %w", auctionID, err)
	}
	defer e.locks.release(auctionID)

	auction, err := e.store.GetAuction(auctionID)
	if err != nil {
		return fmt.Errorf("engine: load auction %s: %w", auctionID, err)
	}

	now := e.opts.Clock()
	if auction.Status != model.StatusActive || now.Before(auction.EndTime) {
		return nil
	}

	auction.Status = model.StatusEnded
	if err := e.store.UpdateAuction(auction); err != nil {
		return fmt.Errorf("engine: update auction %s: %w", auctionID, err)
	}

	// Standing instructions die with the auction.
	active, err := e.store.ActiveAutoBids(auctionID)
	if err != nil {
		return fmt.Errorf("engine: list auto-bids for auction %s: %w", auctionID, err)
	}
	for _, instruction := range active {
		if err := e.store.DeactivateAutoBid(auctionID, instruction.UserID); err != nil {
			return fmt.Errorf("engine: deactivate auto-bid for auction %s: %w", auctionID, err)
		}
	}

	e.emitter.Publish(model.AuctionEvent{
		AuctionID: auctionID,
		Type:      model.EventAuctionEnded,
		Amount:    auction.CurrentBid,
		At:        now,
	})

	if auction.CurrentBid.Valid && auction.ReserveMet() {
		e.emitter.Publish(model.AuctionEvent{
			AuctionID: auctionID,
			Type:      model.EventAuctionWon,
			UserID:    auction.HighestBidderID,
			Amount:    auction.CurrentBid,
			At:        now,
		})
	}

	utils.Info("auction closed", map[string]any{
		"auction_id":  auctionID,
		"won":         auction.CurrentBid.Valid && auction.ReserveMet(),
		"current_bid": auction.CurrentBid.Decimal.String(),
	})

	return nil
}

// GetAuction returns a snapshot of one auction and counts the read as a view
func (e *Engine) GetAuction(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("engine: %w - missing auctionID", auctionerrors.ErrInvalidBid)
	}
	if err := e.store.IncrementViews(auctionID); err != nil {
		return model.Auction{}, fmt.Errorf("engine: get auction %s: %w", auctionID, err)
	}
	auction, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListBids returns the auction's ledger in acceptance order
func (e *Engine) ListBids(auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("engine: %w - missing auctionID", auctionerrors.ErrInvalidBid)
	}
	bids, err := e.store.ListBids(auctionID)
	if err != nil {
		return nil, fmt.Errorf("engine: list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}
