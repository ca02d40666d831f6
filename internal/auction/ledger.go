package auction

import (
	"errors"
	"fmt"
	"time"

	"service-market/internal/marketerrors"
	model "service-market/internal/models"
	"service-market/internal/repository"
	"service-market/utils"
)

// Notifier pushes ledger updates to interested subscribers. Implementations
// must never block: publishing happens inside the bid path after the bid
// has been committed.
type Notifier interface {
	BestBidUpdated(userIDs []string, auctionID string, bid model.Bid)
	AuctionClosed(userIDs []string, auction model.Auction)
}

// CreateAuctionInput carries the owner-supplied fields of a new auction
type CreateAuctionInput struct {
	Title       string
	Description string
	Category    string
	MaxPrice    float64
	Deadline    time.Time
}

// Ledger owns auctions and bids: it validates submissions, keeps the
// running best bid per auction and closes auctions at their deadline.
type Ledger struct {
	repo     repository.MarketDB
	notifier Notifier
	locks    *utils.KeyedMutex
	now      func() time.Time
}

// NewLedger creates a new Ledger instance. notifier may be nil when no
// live updates are wanted (tests, batch tools).
func NewLedger(repo repository.MarketDB, notifier Notifier) *Ledger {
	return &Ledger{
		repo:     repo,
		notifier: notifier,
		locks:    utils.NewKeyedMutex(),
		now:      time.Now,
	}
}

// CreateAuction validates and stores a new open auction for a requester
func (l *Ledger) CreateAuction(ownerID string, role model.Role, in CreateAuctionInput) (model.Auction, error) {
	if ownerID == "" || in.Title == "" {
		return model.Auction{}, fmt.Errorf("ledger: %w - missing owner or title", marketerrors.ErrInvalidInput)
	}
	if role != model.RoleRequester {
		return model.Auction{}, fmt.Errorf("ledger: %w - only requesters create auctions", marketerrors.ErrForbidden)
	}
	if in.MaxPrice <= 0 {
		return model.Auction{}, fmt.Errorf("ledger: %w - maximum price must be positive", marketerrors.ErrInvalidAmount)
	}
	if !in.Deadline.After(l.now()) {
		return model.Auction{}, fmt.Errorf("ledger: %w - deadline must be in the future", marketerrors.ErrInvalidInput)
	}

	auction := model.Auction{
		AuctionID:   utils.GenerateID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		OwnerID:     ownerID,
		MaxPrice:    in.MaxPrice,
		Deadline:    in.Deadline,
		Status:      model.AuctionOpen,
		CreatedAt:   l.now().UTC(),
	}

	if err := l.repo.CreateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("ledger: failed to create auction: %w", err)
	}
	return auction, nil
}

// SubmitBid validates a provider's bid against an auction and records it.
// Checks run in a fixed order and nothing is written until all pass. A bid
// only stands when it strictly undercuts both the auction ceiling and the
// current best bid.
func (l *Ledger) SubmitBid(auctionID, bidderID string, role model.Role, amount float64) (model.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return model.Bid{}, fmt.Errorf("ledger: %w - missing auctionID or bidderID", marketerrors.ErrInvalidInput)
	}

	l.locks.Lock(auctionID)
	defer l.locks.Unlock(auctionID)

	auction, err := l.repo.GetAuctionByID(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("ledger: failed to load auction: %w", err)
	}
	if auction.Status != model.AuctionOpen {
		return model.Bid{}, fmt.Errorf("ledger: %w - auction is %s", marketerrors.ErrAuctionClosed, auction.Status)
	}
	if !l.now().Before(auction.Deadline) {
		// Lazy expiry: the deadline passed before any sweep ran.
		if closeErr := l.closeLocked(auction); closeErr != nil {
			return model.Bid{}, fmt.Errorf("ledger: failed to close expired auction: %w", closeErr)
		}
		return model.Bid{}, fmt.Errorf("ledger: %w - deadline has passed", marketerrors.ErrAuctionClosed)
	}
	if role != model.RoleProvider {
		return model.Bid{}, fmt.Errorf("ledger: %w - only providers may bid", marketerrors.ErrForbidden)
	}
	if bidderID == auction.OwnerID {
		return model.Bid{}, fmt.Errorf("ledger: %w - owner cannot bid on own auction", marketerrors.ErrForbidden)
	}
	if amount <= 0 || amount >= auction.MaxPrice {
		return model.Bid{}, fmt.Errorf("ledger: %w - amount must be positive and below the maximum price %.2f", marketerrors.ErrInvalidAmount, auction.MaxPrice)
	}

	best, err := l.repo.GetBestBid(auctionID)
	if err == nil {
		if amount >= best.Amount {
			return model.Bid{}, fmt.Errorf("ledger: %w - current best is %.2f", marketerrors.ErrBidNotCompetitive, best.Amount)
		}
	} else if !errors.Is(err, marketerrors.ErrNoBids) {
		return model.Bid{}, fmt.Errorf("ledger: failed to check best bid: %w", err)
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: l.now().UTC(),
	}

	if err := l.repo.RecordBidForAuction(bid); err != nil {
		return model.Bid{}, fmt.Errorf("ledger: failed to record bid for auction %s: %w", auctionID, err)
	}

	if l.notifier != nil {
		l.notifier.BestBidUpdated(l.interestedUsers(auction), auctionID, bid)
	}
	return bid, nil
}

// GetAuction returns an auction, lazily expiring it when its deadline has
// passed without a sweep
func (l *Ledger) GetAuction(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("ledger: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	auction, err := l.repo.GetAuctionByID(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("ledger: failed to get auction %s: %w", auctionID, err)
	}
	if auction.Status == model.AuctionOpen && !l.now().Before(auction.Deadline) {
		l.locks.Lock(auctionID)
		defer l.locks.Unlock(auctionID)

		// Re-read under the lock; a concurrent sweep may have closed it.
		auction, err = l.repo.GetAuctionByID(auctionID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("ledger: failed to get auction %s: %w", auctionID, err)
		}
		if auction.Status == model.AuctionOpen {
			if err := l.closeLocked(auction); err != nil {
				return model.Auction{}, fmt.Errorf("ledger: failed to close expired auction: %w", err)
			}
			return l.repo.GetAuctionByID(auctionID)
		}
	}
	return auction, nil
}

// ListOpenAuctions returns every auction that is open and whose deadline
// has not passed yet
func (l *Ledger) ListOpenAuctions() ([]model.Auction, error) {
	open, err := l.repo.ListOpenAuctions()
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list open auctions: %w", err)
	}

	now := l.now()
	active := make([]model.Auction, 0, len(open))
	for _, auction := range open {
		if now.Before(auction.Deadline) {
			active = append(active, auction)
		}
	}
	return active, nil
}

// GetCurrentBest returns the winning bid so far: the lowest amount,
// earliest submission on ties
func (l *Ledger) GetCurrentBest(auctionID string) (model.Bid, error) {
	if auctionID == "" {
		return model.Bid{}, fmt.Errorf("ledger: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	best, err := l.repo.GetBestBid(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("ledger: failed to get best bid for auction %s: %w", auctionID, err)
	}
	return best, nil
}

// ListBids returns the full bid history for an auction
func (l *Ledger) ListBids(auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("ledger: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	bids, err := l.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// CancelAuction cancels an open auction on behalf of its owner
func (l *Ledger) CancelAuction(auctionID, actorID string) (model.Auction, error) {
	if auctionID == "" || actorID == "" {
		return model.Auction{}, fmt.Errorf("ledger: %w - missing auctionID or actorID", marketerrors.ErrInvalidInput)
	}

	l.locks.Lock(auctionID)
	defer l.locks.Unlock(auctionID)

	auction, err := l.repo.GetAuctionByID(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("ledger: failed to load auction: %w", err)
	}
	if actorID != auction.OwnerID {
		return model.Auction{}, fmt.Errorf("ledger: %w - only the owner may cancel", marketerrors.ErrForbidden)
	}
	if auction.Status != model.AuctionOpen {
		return model.Auction{}, fmt.Errorf("ledger: %w - auction is %s", marketerrors.ErrAuctionClosed, auction.Status)
	}

	auction.Status = model.AuctionCancelled
	if err := l.repo.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("ledger: failed to cancel auction %s: %w", auctionID, err)
	}

	if l.notifier != nil {
		l.notifier.AuctionClosed(l.interestedUsers(auction), auction)
	}
	return auction, nil
}

// CloseExpired transitions every open auction whose deadline has passed:
// to expired when it drew no bids, to awarded (winner = current best
// bidder) otherwise. The sweep is idempotent and safe to run concurrently
// with bid submission.
func (l *Ledger) CloseExpired(now time.Time) error {
	open, err := l.repo.ListOpenAuctions()
	if err != nil {
		return fmt.Errorf("ledger: failed to list open auctions: %w", err)
	}

	for _, auction := range open {
		if now.Before(auction.Deadline) {
			continue
		}

		l.locks.Lock(auction.AuctionID)
		// Re-check under the lock: a concurrent submit or cancel may have
		// moved the auction since the list was taken.
		current, err := l.repo.GetAuctionByID(auction.AuctionID)
		if err == nil && current.Status == model.AuctionOpen {
			err = l.closeLocked(current)
		}
		l.locks.Unlock(auction.AuctionID)

		if err != nil {
			return fmt.Errorf("ledger: failed to close auction %s: %w", auction.AuctionID, err)
		}
	}
	return nil
}

// closeLocked finalizes one open auction past its deadline. Caller must
// hold the auction's lock.
func (l *Ledger) closeLocked(auction model.Auction) error {
	best, err := l.repo.GetBestBid(auction.AuctionID)
	switch {
	case err == nil:
		auction.Status = model.AuctionAwarded
		winner := best.BidderID
		auction.WinnerID = &winner
	case errors.Is(err, marketerrors.ErrNoBids):
		auction.Status = model.AuctionExpired
	default:
		return err
	}

	if err := l.repo.UpdateAuction(auction); err != nil {
		return err
	}

	if l.notifier != nil {
		l.notifier.AuctionClosed(l.interestedUsers(auction), auction)
	}
	return nil
}

// interestedUsers lists everyone following an auction: its owner plus
// every distinct bidder.
func (l *Ledger) interestedUsers(auction model.Auction) []string {
	users := []string{auction.OwnerID}
	seen := map[string]bool{auction.OwnerID: true}

	bids, err := l.repo.GetBidsByAuction(auction.AuctionID)
	if err != nil {
		return users
	}
	for _, bid := range bids {
		if !seen[bid.BidderID] {
			seen[bid.BidderID] = true
			users = append(users, bid.BidderID)
		}
	}
	return users
}
