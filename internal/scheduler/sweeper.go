package scheduler

import (
	"context"
	"fmt"
	"time"

	model "mazad-engine/internal/models"
	"mazad-engine/utils"
)

const defaultSweepInterval = 30 * time.Second

// Closer is the slice of the engine the sweeper drives.
type Closer interface {
	CloseIfExpired(ctx context.Context, auctionID string) error
}

// AuctionLister is the slice of the store the sweeper reads.
type AuctionLister interface {
	ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error)
}

// SweeperParams configure the closing sweeper.
type SweeperParams struct {
	Closer   Closer
	Store    AuctionLister
	Lock     Lock
	Interval time.Duration
	Clock    func() time.Time
}

// Sweeper periodically closes active auctions whose end time has passed.
// Closing is idempotent in the engine, so overlapping sweeps from multiple
// replicas are harmless; the lock only avoids redundant work.
type Sweeper struct {
	closer   Closer
	store    AuctionLister
	lock     Lock
	interval time.Duration
	clock    func() time.Time
}

// NewSweeper builds a closing sweeper.
func NewSweeper(params SweeperParams) (*Sweeper, error) {
	if params.Closer == nil {
		return nil, fmt.Errorf("closer required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("store required")
	}
	lock := params.Lock
	if lock == nil {
		lock = NoopLock{}
	}
	interval := params.Interval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	clock := params.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Sweeper{
		closer:   params.Closer,
		store:    params.Store,
		lock:     lock,
		interval: interval,
		clock:    clock,
	}, nil
}

// Run starts the sweep loop until the context is canceled.
func (s *Sweeper) Run(ctx context.Context) error {
	if err := s.Sweep(ctx); err != nil {
		utils.Error("sweep failed", map[string]any{"error": err.Error()})
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("closing sweeper stopped", nil)
			return ctx.Err()
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				utils.Error("sweep failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Sweep runs one cycle: close every active auction past its end time.
func (s *Sweeper) Sweep(ctx context.Context) error {
	acquired, err := s.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire sweep lock: %w", err)
	}
	if !acquired {
		utils.Debug("sweep lock held elsewhere, skipping cycle", nil)
		return nil
	}
	defer func() {
		if err := s.lock.Release(ctx); err != nil {
			utils.Warn("release sweep lock", map[string]any{"error": err.Error()})
		}
	}()

	auctions, err := s.store.ListAuctionsByStatus(model.StatusActive)
	if err != nil {
		return fmt.Errorf("list active auctions: %w", err)
	}

	now := s.clock()
	closed := 0
	for _, auction := range auctions {
		if now.Before(auction.EndTime) {
			continue
		}
		if err := s.closer.CloseIfExpired(ctx, auction.ID); err != nil {
			utils.Error("close expired auction", map[string]any{
				"auction_id": auction.ID,
				"error":      err.Error(),
			})
			continue
		}
		closed++
	}

	if closed > 0 {
		utils.Info("sweep cycle complete", map[string]any{"closed": closed})
	}
	return nil
}
