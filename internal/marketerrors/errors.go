package marketerrors

import "errors"

// Repository-level errors
var (
	ErrNotFound = errors.New("entity not found")
	ErrNoBids   = errors.New("no bids found for auction")
)

// Business logic errors. Validation fails closed: these are returned
// before any mutation happens.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrBidNotCompetitive = errors.New("bid does not undercut current best")
	ErrAuctionClosed     = errors.New("auction is closed")
	ErrForbidden         = errors.New("operation not allowed for this actor")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Transport errors
var (
	ErrConnection = errors.New("connection unavailable")
)
