package models

import "time"

// Role identifies what a user is allowed to do in the marketplace.
type Role string

const (
	RoleRequester Role = "consumidor"
	RoleProvider  Role = "prestador"
)

// User represents a marketplace participant
type User struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// AuctionStatus is the lifecycle status of an auction
type AuctionStatus string

const (
	AuctionOpen      AuctionStatus = "aberto"
	AuctionCancelled AuctionStatus = "cancelado"
	AuctionExpired   AuctionStatus = "expirado"
	AuctionAwarded   AuctionStatus = "premiado"
)

// Auction represents a requester's open call for descending bids.
// MaxPrice is the ceiling the owner is willing to pay; accepted bids stay
// strictly below it and strictly below each other.
type Auction struct {
	AuctionID   string        `json:"auction_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	OwnerID     string        `json:"owner_id"`
	MaxPrice    float64       `json:"max_price"`
	Deadline    time.Time     `json:"deadline"`
	Status      AuctionStatus `json:"status"`
	WinnerID    *string       `json:"winner_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Bid represents a provider's offer against an auction
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceStatus is the lifecycle status of a booked service.
// Values are the wire strings the clients filter and display on.
type ServiceStatus string

const (
	StatusPending         ServiceStatus = "pendente"
	StatusConfirmed       ServiceStatus = "confirmado"
	StatusInProgress      ServiceStatus = "em andamento"
	StatusAwaitingPayment ServiceStatus = "aguardando pagamento"
	StatusCompleted       ServiceStatus = "concluido"
	StatusCancelled       ServiceStatus = "cancelado"
	StatusPriceReview     ServiceStatus = "confirmar valor"
)

// Service is a booked unit of work between a requester and a provider,
// independent of whether it originated from a direct request or an auction
// award. Price stays nil until a value is agreed; ProposedPrice is only set
// while the service sits in the price-review status.
type Service struct {
	ServiceID     string        `json:"service_id"`
	RequesterID   string        `json:"requester_id"`
	ProviderID    string        `json:"provider_id"`
	Category      string        `json:"category"`
	Date          time.Time     `json:"date"`
	Description   string        `json:"description"`
	Price         *float64      `json:"price,omitempty"`
	ProposedPrice *float64      `json:"proposed_price,omitempty"`
	Status        ServiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// StatusUpdateEvent carries a service status change to connected clients.
// It is ephemeral: never persisted, clients re-fetch authoritative state
// on reconnect.
type StatusUpdateEvent struct {
	ServiceID   string        `json:"service_id"`
	NewStatus   ServiceStatus `json:"new_status"`
	ProviderID  string        `json:"provider_id"`
	RequesterID string        `json:"requester_id"`
	Timestamp   time.Time     `json:"timestamp"`
}
