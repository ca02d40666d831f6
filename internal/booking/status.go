package booking

import (
	model "service-market/internal/models"
)

// transitions maps each service status to the statuses reachable from it.
// Terminal statuses (concluido, cancelado) have no outgoing edges.
var transitions = map[model.ServiceStatus][]model.ServiceStatus{
	model.StatusPending:         {model.StatusConfirmed, model.StatusCancelled, model.StatusPriceReview},
	model.StatusConfirmed:       {model.StatusInProgress, model.StatusCancelled, model.StatusPriceReview},
	model.StatusInProgress:      {model.StatusAwaitingPayment, model.StatusCancelled},
	model.StatusAwaitingPayment: {model.StatusCompleted},
	model.StatusPriceReview:     {model.StatusConfirmed, model.StatusCancelled},
}

// CanTransition reports whether target is reachable from current in one step
func CanTransition(current, target model.ServiceStatus) bool {
	for _, next := range transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// allowedActor tells which party may drive a given edge. The requester
// owns cancellation, price acceptance and payment confirmation; the
// provider owns booking confirmation and the work-side transitions.
func allowedActor(service model.Service, actorID string, target model.ServiceStatus) bool {
	isRequester := actorID == service.RequesterID
	isProvider := actorID == service.ProviderID

	switch target {
	case model.StatusCancelled:
		// Rejecting a price proposal also lands here.
		return isRequester
	case model.StatusConfirmed:
		if service.Status == model.StatusPriceReview {
			// Accepting a proposal locks the price; only the requester decides.
			return isRequester
		}
		return isProvider
	case model.StatusInProgress, model.StatusAwaitingPayment:
		return isProvider
	case model.StatusCompleted:
		return isRequester
	default:
		return false
	}
}
