package notify

import (
	"time"

	model "service-market/internal/models"
	"service-market/utils"
)

// Broadcaster translates core-side notifications into hub events. It
// satisfies the Notifier interfaces of the auction ledger and the booking
// service, and inherits the hub's non-blocking delivery.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a Broadcaster bound to a hub.
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// BestBidUpdated pushes a new running best bid to everyone following the
// auction.
func (b *Broadcaster) BestBidUpdated(userIDs []string, auctionID string, bid model.Bid) {
	event, err := newEvent(EventBestBid, BestBidPayload{AuctionID: auctionID, Bid: bid})
	if err != nil {
		utils.Error("failed to encode best bid event", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}
	for _, userID := range userIDs {
		b.hub.Publish(userID, event)
	}
}

// AuctionClosed pushes an auction's final status to everyone following it.
func (b *Broadcaster) AuctionClosed(userIDs []string, auction model.Auction) {
	event, err := newEvent(EventAuctionClosed, AuctionClosedPayload{
		AuctionID: auction.AuctionID,
		Status:    auction.Status,
		WinnerID:  auction.WinnerID,
	})
	if err != nil {
		utils.Error("failed to encode auction closed event", map[string]any{"auction_id": auction.AuctionID, "error": err.Error()})
		return
	}
	for _, userID := range userIDs {
		b.hub.Publish(userID, event)
	}
}

// StatusChanged pushes a service status change to both parties.
func (b *Broadcaster) StatusChanged(update model.StatusUpdateEvent) {
	event, err := newEvent(EventStatusChanged, update)
	if err != nil {
		utils.Error("failed to encode status event", map[string]any{"service_id": update.ServiceID, "error": err.Error()})
		return
	}
	b.hub.Publish(update.RequesterID, event)
	b.hub.Publish(update.ProviderID, event)
}

// PriceUpdated pushes a proposed or locked price to both parties.
func (b *Broadcaster) PriceUpdated(serviceID string, amount float64, requesterID, providerID string) {
	event, err := newEvent(EventPriceUpdated, PriceUpdatedPayload{
		ServiceID: serviceID,
		NewPrice:  amount,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		utils.Error("failed to encode price event", map[string]any{"service_id": serviceID, "error": err.Error()})
		return
	}
	b.hub.Publish(requesterID, event)
	b.hub.Publish(providerID, event)
}
