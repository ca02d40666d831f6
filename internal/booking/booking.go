package booking

import (
	"fmt"
	"time"

	"service-market/internal/marketerrors"
	model "service-market/internal/models"
	"service-market/internal/repository"
	"service-market/utils"
)

// Notifier pushes committed status and price changes to both parties of a
// service. Implementations must never block; the broadcast is
// fire-and-forget and does not gate the caller's response.
type Notifier interface {
	StatusChanged(event model.StatusUpdateEvent)
	PriceUpdated(serviceID string, amount float64, requesterID, providerID string)
}

// CreateServiceInput carries the requester-supplied fields of a new booking
type CreateServiceInput struct {
	ProviderID  string
	Category    string
	Date        time.Time
	Description string
}

// Service drives booked services through their status state machine and
// the price renegotiation side-channel.
type Service struct {
	repo     repository.MarketDB
	notifier Notifier
	locks    *utils.KeyedMutex
	now      func() time.Time
}

// NewService creates a new booking Service instance. notifier may be nil
// when no live updates are wanted.
func NewService(repo repository.MarketDB, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		locks:    utils.NewKeyedMutex(),
		now:      time.Now,
	}
}

// CreateService books a new pending service between a requester and a provider
func (s *Service) CreateService(requesterID string, role model.Role, in CreateServiceInput) (model.Service, error) {
	if requesterID == "" || in.ProviderID == "" || in.Category == "" {
		return model.Service{}, fmt.Errorf("booking: %w - missing requester, provider or category", marketerrors.ErrInvalidInput)
	}
	if role != model.RoleRequester {
		return model.Service{}, fmt.Errorf("booking: %w - only requesters book services", marketerrors.ErrForbidden)
	}
	if requesterID == in.ProviderID {
		return model.Service{}, fmt.Errorf("booking: %w - requester cannot book themselves", marketerrors.ErrInvalidInput)
	}

	now := s.now().UTC()
	service := model.Service{
		ServiceID:   utils.GenerateID(),
		RequesterID: requesterID,
		ProviderID:  in.ProviderID,
		Category:    in.Category,
		Date:        in.Date,
		Description: in.Description,
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateService(service); err != nil {
		return model.Service{}, fmt.Errorf("booking: failed to create service: %w", err)
	}
	return service, nil
}

// GetService returns a service by its identifier
func (s *Service) GetService(serviceID string) (model.Service, error) {
	if serviceID == "" {
		return model.Service{}, fmt.Errorf("booking: %w - empty service ID", marketerrors.ErrInvalidInput)
	}

	service, err := s.repo.GetServiceByID(serviceID)
	if err != nil {
		return model.Service{}, fmt.Errorf("booking: failed to get service %s: %w", serviceID, err)
	}
	return service, nil
}

// ListServicesByUser returns every service the user takes part in,
// whichever side they are on
func (s *Service) ListServicesByUser(userID string) ([]model.Service, error) {
	if userID == "" {
		return nil, fmt.Errorf("booking: %w - empty user ID", marketerrors.ErrInvalidInput)
	}

	services, err := s.repo.ListServicesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("booking: failed to list services for user %s: %w", userID, err)
	}
	return services, nil
}

// RequestTransition moves a service along one edge of the status state
// machine on behalf of an actor. Invalid edges fail before any write;
// entering price review goes through ProposePrice, never through here.
func (s *Service) RequestTransition(serviceID, actorID string, target model.ServiceStatus) (model.Service, error) {
	if serviceID == "" || actorID == "" {
		return model.Service{}, fmt.Errorf("booking: %w - missing serviceID or actorID", marketerrors.ErrInvalidInput)
	}
	if target == model.StatusPriceReview {
		return model.Service{}, fmt.Errorf("booking: %w - price review requires a price proposal", marketerrors.ErrInvalidTransition)
	}

	s.locks.Lock(serviceID)
	defer s.locks.Unlock(serviceID)

	service, err := s.repo.GetServiceByID(serviceID)
	if err != nil {
		return model.Service{}, fmt.Errorf("booking: failed to load service: %w", err)
	}
	if !CanTransition(service.Status, target) {
		return model.Service{}, fmt.Errorf("booking: %w - %s to %s", marketerrors.ErrInvalidTransition, service.Status, target)
	}
	if !allowedActor(service, actorID, target) {
		return model.Service{}, fmt.Errorf("booking: %w - actor may not set status %s", marketerrors.ErrForbidden, target)
	}

	priceLocked := false
	if service.Status == model.StatusPriceReview {
		if target == model.StatusConfirmed {
			// Acceptance locks the proposed price in.
			service.Price = service.ProposedPrice
			priceLocked = service.Price != nil
		}
		service.ProposedPrice = nil
	}

	service.Status = target
	service.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateService(service); err != nil {
		return model.Service{}, fmt.Errorf("booking: failed to update service %s: %w", serviceID, err)
	}

	s.broadcastStatus(service)
	if priceLocked && s.notifier != nil {
		s.notifier.PriceUpdated(service.ServiceID, *service.Price, service.RequesterID, service.ProviderID)
	}
	return service, nil
}

// ProposePrice lets the provider open the price renegotiation
// side-channel: the service enters price review with the proposal
// attached, and the requester later accepts or rejects it.
func (s *Service) ProposePrice(serviceID, actorID string, amount float64) (model.Service, error) {
	if serviceID == "" || actorID == "" {
		return model.Service{}, fmt.Errorf("booking: %w - missing serviceID or actorID", marketerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Service{}, fmt.Errorf("booking: %w - proposed price must be positive", marketerrors.ErrInvalidAmount)
	}

	s.locks.Lock(serviceID)
	defer s.locks.Unlock(serviceID)

	service, err := s.repo.GetServiceByID(serviceID)
	if err != nil {
		return model.Service{}, fmt.Errorf("booking: failed to load service: %w", err)
	}
	if actorID != service.ProviderID {
		return model.Service{}, fmt.Errorf("booking: %w - only the provider proposes a price", marketerrors.ErrForbidden)
	}
	if !CanTransition(service.Status, model.StatusPriceReview) {
		return model.Service{}, fmt.Errorf("booking: %w - %s to %s", marketerrors.ErrInvalidTransition, service.Status, model.StatusPriceReview)
	}

	service.Status = model.StatusPriceReview
	service.ProposedPrice = &amount
	service.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateService(service); err != nil {
		return model.Service{}, fmt.Errorf("booking: failed to update service %s: %w", serviceID, err)
	}

	s.broadcastStatus(service)
	if s.notifier != nil {
		s.notifier.PriceUpdated(service.ServiceID, amount, service.RequesterID, service.ProviderID)
	}
	return service, nil
}

// broadcastStatus emits a status update event to both parties.
func (s *Service) broadcastStatus(service model.Service) {
	if s.notifier == nil {
		return
	}
	s.notifier.StatusChanged(model.StatusUpdateEvent{
		ServiceID:   service.ServiceID,
		NewStatus:   service.Status,
		ProviderID:  service.ProviderID,
		RequesterID: service.RequesterID,
		Timestamp:   service.UpdatedAt,
	})
}
