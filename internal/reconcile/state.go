// Package reconcile keeps a client-side replica of services and auction
// best bids in sync with the event channel. Events merge idempotently by
// entity id; anything missed while disconnected is recovered by a full
// resync against authoritative state, never by replay.
package reconcile

import (
	"encoding/json"
	"fmt"
	"sync"

	"service-market/internal/marketerrors"
	model "service-market/internal/models"
	"service-market/internal/notify"
)

// State is the local replica one connected client maintains.
type State struct {
	mu       sync.RWMutex
	services map[string]model.Service // key: serviceID
	bestBids map[string]model.Bid     // key: auctionID
}

// NewState creates an empty replica.
func NewState() *State {
	return &State{
		services: make(map[string]model.Service),
		bestBids: make(map[string]model.Bid),
	}
}

// PutService seeds or replaces one service record, used on initial load.
func (s *State) PutService(service model.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[service.ServiceID] = service
}

// Service returns the local copy of a service.
func (s *State) Service(serviceID string) (model.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	service, ok := s.services[serviceID]
	return service, ok
}

// BestBid returns the locally known best bid for an auction.
func (s *State) BestBid(auctionID string) (model.Bid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bid, ok := s.bestBids[auctionID]
	return bid, ok
}

// Apply merges one channel event into the replica. Applying the same
// event twice yields the same state as applying it once, and an event
// older than what the replica already holds is ignored rather than
// regressing state.
func (s *State) Apply(event notify.Event) error {
	switch event.Type {
	case notify.EventStatusChanged:
		var update model.StatusUpdateEvent
		if err := json.Unmarshal(event.Data, &update); err != nil {
			return fmt.Errorf("reconcile: %w - bad status payload", marketerrors.ErrInvalidInput)
		}
		s.applyStatus(update)
	case notify.EventPriceUpdated:
		var update notify.PriceUpdatedPayload
		if err := json.Unmarshal(event.Data, &update); err != nil {
			return fmt.Errorf("reconcile: %w - bad price payload", marketerrors.ErrInvalidInput)
		}
		s.applyPrice(update)
	case notify.EventBestBid:
		var update notify.BestBidPayload
		if err := json.Unmarshal(event.Data, &update); err != nil {
			return fmt.Errorf("reconcile: %w - bad bid payload", marketerrors.ErrInvalidInput)
		}
		s.applyBestBid(update)
	default:
		// Unknown or purely informational events leave the replica as is.
	}
	return nil
}

func (s *State) applyStatus(update model.StatusUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[update.ServiceID]
	if !ok {
		// Never seen this service; the next resync will bring it in.
		return
	}
	if update.Timestamp.Before(service.UpdatedAt) {
		return
	}
	service.Status = update.NewStatus
	service.UpdatedAt = update.Timestamp
	s.services[update.ServiceID] = service
}

func (s *State) applyPrice(update notify.PriceUpdatedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, ok := s.services[update.ServiceID]
	if !ok {
		return
	}
	price := update.NewPrice
	service.Price = &price
	s.services[update.ServiceID] = service
}

func (s *State) applyBestBid(update notify.BestBidPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bestBids[update.AuctionID]
	// Keep the lower amount; a replay of the current best is a no-op.
	if ok && current.BidID != update.Bid.BidID && current.Amount <= update.Bid.Amount {
		return
	}
	s.bestBids[update.AuctionID] = update.Bid
}

// Resync replaces the replica wholesale from an authoritative fetch,
// covering whatever was missed while disconnected.
func (s *State) Resync(services []model.Service, bestBids map[string]model.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.services = make(map[string]model.Service, len(services))
	for _, service := range services {
		s.services[service.ServiceID] = service
	}
	s.bestBids = make(map[string]model.Bid, len(bestBids))
	for auctionID, bid := range bestBids {
		s.bestBids[auctionID] = bid
	}
}
