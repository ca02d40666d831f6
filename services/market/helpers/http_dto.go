package helpers

import "time"

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" binding:"required"`
	MaxPrice    float64   `json:"max_price" binding:"required,gt=0"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"valor" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type CreateServiceRequest struct {
	ProviderID  string    `json:"provider_id" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
}

type UpdateServiceStatusRequest struct {
	ServiceID string `json:"id_servico" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type ProposePriceRequest struct {
	Amount float64 `json:"valor" binding:"required,gt=0"`
}
