package repository

import (
	"fmt"
	"sync"

	"mazad-engine/internal/auctionerrors"
	model "mazad-engine/internal/models"
)

// Store defines the persistence boundary of the auction engine: the auction
// record store, the append-only bid ledger, and the auto-bid instruction
// store. The engine serializes all writes for one auction, so implementations
// only guard their own internal state.
type Store interface {
	GetAuction(auctionID string) (model.Auction, error)
	UpdateAuction(auction model.Auction) error
	ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error)
	IncrementViews(auctionID string) error

	AppendBid(bid model.Bid) error
	ListBids(auctionID string) ([]model.Bid, error)

	SaveAutoBid(autoBid model.AutoBid) (model.AutoBid, error)
	ActiveAutoBids(auctionID string) ([]model.AutoBid, error)
	DeactivateAutoBid(auctionID, userID string) error
}

// MemoryStore is a concurrency-safe in-memory implementation of Store
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction   // key: auctionID
	ledger   map[string][]model.Bid     // key: auctionID -> bids in acceptance order
	autoBids map[string][]model.AutoBid // key: auctionID -> one entry per user
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		ledger:   make(map[string][]model.Bid),
		autoBids: make(map[string][]model.AutoBid),
	}
}

// GetAuction returns a snapshot of one auction record
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// UpdateAuction replaces the stored record for an existing auction
func (s *MemoryStore) UpdateAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auction.ID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.ID, auctionerrors.ErrAuctionNotFound)
	}
	s.auctions[auction.ID] = auction
	return nil
}

// ListAuctionsByStatus returns snapshots of all auctions in the given status
func (s *MemoryStore) ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var auctions []model.Auction
	for _, auction := range s.auctions {
		if auction.Status == status {
			auctions = append(auctions, auction)
		}
	}
	return auctions, nil
}

// IncrementViews bumps the view counter for an auction
func (s *MemoryStore) IncrementViews(auctionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("increment views for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	auction.Views++
	s.auctions[auctionID] = auction
	return nil
}

// AppendBid appends one entry to the auction's bid ledger. Entries are
// immutable once appended. The ledger must stay strictly increasing in
// amount; a non-monotonic append indicates an engine bug and is reported as
// ErrLedgerCorrupted instead of being silently accepted.
func (s *MemoryStore) AppendBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	entries := s.ledger[bid.AuctionID]
	if n := len(entries); n > 0 {
		last := entries[n-1]
		if bid.Amount.LessThanOrEqual(last.Amount) {
			return fmt.Errorf("append bid %s: amount %s not above ledger tail %s: %w",
				bid.BidID, bid.Amount, last.Amount, auctionerrors.ErrLedgerCorrupted)
		}
		if bid.CreatedAt.Before(last.CreatedAt) {
			return fmt.Errorf("append bid %s: created_at precedes ledger tail: %w",
				bid.BidID, auctionerrors.ErrLedgerCorrupted)
		}
	}

	s.ledger[bid.AuctionID] = append(entries, bid)
	return nil
}

// ListBids returns all ledger entries for an auction in acceptance order
func (s *MemoryStore) ListBids(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid(nil), s.ledger[auctionID]...), nil
}

// SaveAutoBid upserts the proxy-bid instruction for (auction, user). An
// existing instruction keeps its identity and creation time so the earliest
// registration keeps winning ceiling ties; only the ceiling and active flag
// change. The stored instruction is returned.
func (s *MemoryStore) SaveAutoBid(autoBid model.AutoBid) (model.AutoBid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[autoBid.AuctionID]; !ok {
		return model.AutoBid{}, fmt.Errorf("save auto-bid for auction %s: %w", autoBid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	instructions := s.autoBids[autoBid.AuctionID]
	for i, existing := range instructions {
		if existing.UserID == autoBid.UserID {
			existing.MaxBidAmount = autoBid.MaxBidAmount
			existing.IsActive = autoBid.IsActive
			instructions[i] = existing
			return existing, nil
		}
	}

	s.autoBids[autoBid.AuctionID] = append(instructions, autoBid)
	return autoBid, nil
}

// ActiveAutoBids returns snapshots of all active instructions for an auction
func (s *MemoryStore) ActiveAutoBids(auctionID string) ([]model.AutoBid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("active auto-bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	var active []model.AutoBid
	for _, instruction := range s.autoBids[auctionID] {
		if instruction.IsActive {
			active = append(active, instruction)
		}
	}
	return active, nil
}

// DeactivateAutoBid flips the (auction, user) instruction to inactive. An
// instruction that does not exist or is already inactive reports not-found.
func (s *MemoryStore) DeactivateAutoBid(auctionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, instruction := range s.autoBids[auctionID] {
		if instruction.UserID == userID && instruction.IsActive {
			instruction.IsActive = false
			s.autoBids[auctionID][i] = instruction
			return nil
		}
	}
	return fmt.Errorf("deactivate auto-bid for auction %s user %s: %w", auctionID, userID, auctionerrors.ErrAutoBidNotFound)
}

// AddAuction adds an auction record. Used for seeding and tests; auction
// creation flows live outside this engine.
func (s *MemoryStore) AddAuction(auction model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[auction.ID] = auction
}
