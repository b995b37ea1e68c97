package engine

import (
	"fmt"
	"sort"

	model "mazad-engine/internal/models"
	"mazad-engine/utils"

	"github.com/shopspring/decimal"
)

// resolveAutoBids competitively escalates standing proxy-bid instructions
// until no eligible instruction can profitably exceed the current bid.
// Caller holds the auction's lock: resolution is a continuation of the
// triggering mutation, so no manual bid can interleave mid-resolution.
//
// Each round acts on the eligible instruction with the highest ceiling,
// earliest registration first on ties. The current highest bidder's own
// instruction never bids against itself, but it does defend: a challenger
// that can strictly out-spend every opponent bids just one increment over the
// best opposing ceiling (capped at its own), while a challenger that cannot
// bids up to its ceiling and is beaten on the winner's next move. Ceiling
// ties always land on the earlier instruction, at the exact ceiling. Every
// instruction places at most one escalation bid per resolution, so the loop
// settles after a bounded number of rounds.
func (e *Engine) resolveAutoBids(auctionID string) error {
	maxRounds := -1

	for round := 0; ; round++ {
		auction, err := e.store.GetAuction(auctionID)
		if err != nil {
			return fmt.Errorf("engine: resolve auto-bids: load auction %s: %w", auctionID, err)
		}
		active, err := e.store.ActiveAutoBids(auctionID)
		if err != nil {
			return fmt.Errorf("engine: resolve auto-bids: list for auction %s: %w", auctionID, err)
		}
		if maxRounds < 0 {
			maxRounds = 2*len(active) + 2
		}
		if round > maxRounds {
			return fmt.Errorf("engine: auto-bid resolution exceeded %d rounds on auction %s", maxRounds, auctionID)
		}

		var defender *model.AutoBid
		eligible := make([]model.AutoBid, 0, len(active))
		for i, instruction := range active {
			if instruction.UserID == auction.HighestBidderID {
				defender = &active[i]
				continue
			}
			eligible = append(eligible, instruction)
		}
		if len(eligible) == 0 {
			return nil
		}

		sort.Slice(eligible, func(i, j int) bool {
			if !eligible[i].MaxBidAmount.Equal(eligible[j].MaxBidAmount) {
				return eligible[i].MaxBidAmount.GreaterThan(eligible[j].MaxBidAmount)
			}
			return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
		})
		challenger := eligible[0]

		minimum := auction.MinimumBid()
		if minimum.GreaterThan(challenger.MaxBidAmount) {
			if err := e.deactivateExhausted(auctionID, challenger); err != nil {
				return err
			}
			continue
		}

		opponent := bestOpponent(eligible[1:], defender)

		var amount decimal.Decimal
		switch {
		case opponent == nil:
			// Nothing to out-spend: one increment over the current bid.
			amount = minimum
		case outspends(challenger, *opponent):
			amount = opponent.MaxBidAmount.Add(auction.BidIncrement)
			if amount.GreaterThan(challenger.MaxBidAmount) {
				// Tie or near-tie: the exact ceiling still strictly beats
				// every opposing ceiling here.
				amount = challenger.MaxBidAmount
			}
			if amount.LessThan(minimum) {
				amount = minimum
			}
		default:
			// Doomed: price the eventual winner up, stopping one increment
			// short of its ceiling so it can answer with a valid bid.
			amount = challenger.MaxBidAmount
			if ceiling := opponent.MaxBidAmount.Sub(auction.BidIncrement); ceiling.LessThan(amount) {
				amount = ceiling
			}
			if amount.LessThan(minimum) {
				// Cannot even place a losing bid without breaching the
				// opponent's claim on a tie.
				if err := e.deactivateExhausted(auctionID, challenger); err != nil {
					return err
				}
				continue
			}
		}

		if _, _, err := e.acceptBid(auctionID, challenger.UserID, amount, true); err != nil {
			return fmt.Errorf("engine: auto-bid by user %s on auction %s: %w", challenger.UserID, auctionID, err)
		}
	}
}

// bestOpponent picks the strongest opposing instruction: the other eligible
// challengers plus the defending highest bidder's instruction, ranked by
// ceiling with earlier registration winning ties.
func bestOpponent(others []model.AutoBid, defender *model.AutoBid) *model.AutoBid {
	var best *model.AutoBid
	for i := range others {
		if best == nil || outspends(others[i], *best) {
			best = &others[i]
		}
	}
	if defender != nil && (best == nil || outspends(*defender, *best)) {
		best = defender
	}
	return best
}

// outspends reports whether a's ceiling strictly beats b's in the
// competition: a higher ceiling always wins, an equal ceiling goes to the
// earlier registration.
func outspends(a, b model.AutoBid) bool {
	if !a.MaxBidAmount.Equal(b.MaxBidAmount) {
		return a.MaxBidAmount.GreaterThan(b.MaxBidAmount)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// deactivateExhausted retires an instruction whose ceiling can no longer win.
// Exhaustion is a normal outcome reported via event, not an error.
func (e *Engine) deactivateExhausted(auctionID string, instruction model.AutoBid) error {
	if err := e.store.DeactivateAutoBid(auctionID, instruction.UserID); err != nil {
		return fmt.Errorf("engine: deactivate auto-bid for auction %s user %s: %w", auctionID, instruction.UserID, err)
	}

	e.emitter.Publish(model.AuctionEvent{
		AuctionID: auctionID,
		Type:      model.EventAutoBidDeactivated,
		UserID:    instruction.UserID,
		Amount:    decimal.NewNullDecimal(instruction.MaxBidAmount),
		At:        e.opts.Clock(),
	})

	utils.Debug("auto-bid ceiling exhausted", map[string]any{
		"auction_id": auctionID,
		"user_id":    instruction.UserID,
		"ceiling":    instruction.MaxBidAmount.String(),
	})
	return nil
}
