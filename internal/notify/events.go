package notify

import (
	"encoding/json"
	"time"

	model "service-market/internal/models"
)

// EventType names a synchronization event on the wire.
type EventType string

const (
	// Inbound from clients
	EventJoin          EventType = "join"
	EventStatusRequest EventType = "mudanca_status"

	// Outbound to clients
	EventStatusChanged EventType = "atualizacao_status"
	EventBestBid       EventType = "novo_lance"
	EventPriceUpdated  EventType = "valor_atualizado"
	EventAuctionClosed EventType = "leilao_encerrado"
	EventError         EventType = "error"
)

// Event is the envelope relayed between the hub and connected clients.
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// BestBidPayload announces a new running best bid for an auction.
type BestBidPayload struct {
	AuctionID string    `json:"auction_id"`
	Bid       model.Bid `json:"bid"`
}

// PriceUpdatedPayload announces a proposed or locked service price.
type PriceUpdatedPayload struct {
	ServiceID string    `json:"service_id"`
	NewPrice  float64   `json:"novo_valor"`
	Timestamp time.Time `json:"timestamp"`
}

// AuctionClosedPayload announces an auction leaving the open status.
type AuctionClosedPayload struct {
	AuctionID string              `json:"auction_id"`
	Status    model.AuctionStatus `json:"status"`
	WinnerID  *string             `json:"winner_id,omitempty"`
}

// StatusRequestPayload is the inbound ask to move a service along its
// state machine.
type StatusRequestPayload struct {
	ServiceID string `json:"id_servico"`
	NewStatus string `json:"novo_status"`
}

// newEvent marshals a payload into an Event envelope.
func newEvent(eventType EventType, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Data: data}, nil
}
