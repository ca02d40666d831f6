package repository

import (
	"fmt"
	"sync"

	"service-market/internal/marketerrors"
	model "service-market/internal/models"
)

// MarketDB defines the storage interface for auctions, bids and booked
// services
type MarketDB interface {
	CreateAuction(auction model.Auction) error
	GetAuctionByID(auctionID string) (model.Auction, error)
	ListOpenAuctions() ([]model.Auction, error)
	UpdateAuction(auction model.Auction) error

	RecordBidForAuction(bid model.Bid) error
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetBestBid(auctionID string) (model.Bid, error)

	CreateService(service model.Service) error
	GetServiceByID(serviceID string) (model.Service, error)
	ListServicesByUser(userID string) ([]model.Service, error)
	UpdateService(service model.Service) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction // key: auctionID
	bids         map[string][]model.Bid   // key: auctionID -> bid history in submission order
	bestBids     map[string]model.Bid     // key: auctionID -> running best, maintained on write
	services     map[string]model.Service // key: serviceID
	userServices map[string][]string      // key: userID -> serviceIDs the user takes part in
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]model.Auction),
		bids:         make(map[string][]model.Bid),
		bestBids:     make(map[string]model.Bid),
		services:     make(map[string]model.Service),
		userServices: make(map[string][]string),
	}
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.AuctionID == "" {
		return fmt.Errorf("create auction: %w - missing auction id", marketerrors.ErrInvalidInput)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuctionByID returns an auction by its identifier
func (r *MemoryRepo) GetAuctionByID(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrNotFound)
	}
	return auction, nil
}

// ListOpenAuctions returns every auction still in the open status
func (r *MemoryRepo) ListOpenAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	open := make([]model.Auction, 0)
	for _, auction := range r.auctions {
		if auction.Status == model.AuctionOpen {
			open = append(open, auction)
		}
	}
	return open, nil
}

// UpdateAuction replaces a stored auction
func (r *MemoryRepo) UpdateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, marketerrors.ErrNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// RecordBidForAuction appends a bid to an auction's history and updates
// the cached best bid, so reads stay O(1) regardless of history length.
func (r *MemoryRepo) RecordBidForAuction(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, marketerrors.ErrNotFound)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)

	best, ok := r.bestBids[bid.AuctionID]
	if !ok || bid.Amount < best.Amount ||
		(bid.Amount == best.Amount && bid.CreatedAt.Before(best.CreatedAt)) {
		r.bestBids[bid.AuctionID] = bid
	}
	return nil
}

// GetBidsByAuction returns all bids for an auction in submission order
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetBestBid returns the lowest bid for an auction, ties broken by
// earliest submission
func (r *MemoryRepo) GetBestBid(auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best, ok := r.bestBids[auctionID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get best bid for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}
	return best, nil
}

// CreateService stores a new booked service and indexes it for both parties
func (r *MemoryRepo) CreateService(service model.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ServiceID == "" {
		return fmt.Errorf("create service: %w - missing service id", marketerrors.ErrInvalidInput)
	}
	r.services[service.ServiceID] = service
	r.indexService(service.RequesterID, service.ServiceID)
	r.indexService(service.ProviderID, service.ServiceID)
	return nil
}

// indexService links a user to a service. Caller must hold the write lock.
func (r *MemoryRepo) indexService(userID, serviceID string) {
	for _, id := range r.userServices[userID] {
		if id == serviceID {
			return
		}
	}
	r.userServices[userID] = append(r.userServices[userID], serviceID)
}

// GetServiceByID returns a service by its identifier
func (r *MemoryRepo) GetServiceByID(serviceID string) (model.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[serviceID]
	if !ok {
		return model.Service{}, fmt.Errorf("get service %s: %w", serviceID, marketerrors.ErrNotFound)
	}
	return service, nil
}

// ListServicesByUser returns every service where the user is requester or
// provider
func (r *MemoryRepo) ListServicesByUser(userID string) ([]model.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serviceIDs := r.userServices[userID]
	services := make([]model.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if service, ok := r.services[id]; ok {
			services = append(services, service)
		}
	}
	return services, nil
}

// UpdateService replaces a stored service
func (r *MemoryRepo) UpdateService(service model.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[service.ServiceID]; !ok {
		return fmt.Errorf("update service %s: %w", service.ServiceID, marketerrors.ErrNotFound)
	}
	r.services[service.ServiceID] = service
	return nil
}
