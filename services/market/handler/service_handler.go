package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"service-market/internal/booking"
	model "service-market/internal/models"
	"service-market/services/market/helpers"
	"service-market/utils"
)

type BookingServiceInterface interface {
	CreateService(requesterID string, role model.Role, in booking.CreateServiceInput) (model.Service, error)
	GetService(serviceID string) (model.Service, error)
	ListServicesByUser(userID string) ([]model.Service, error)
	RequestTransition(serviceID, actorID string, target model.ServiceStatus) (model.Service, error)
	ProposePrice(serviceID, actorID string, amount float64) (model.Service, error)
}

type ServiceHandler struct {
	booking BookingServiceInterface
}

func NewServiceHandler(booking BookingServiceInterface) *ServiceHandler {
	return &ServiceHandler{booking: booking}
}

// CreateServiceHandler handles POST /servicos
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var req helpers.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateServiceHandler", err)
		return
	}

	requesterID := c.GetString("user_id")
	role := model.Role(c.GetString("role"))

	created, err := h.booking.CreateService(requesterID, role, booking.CreateServiceInput{
		ProviderID:  req.ProviderID,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateServiceHandler: failed to create service", map[string]any{
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "service created successfully")
	helpers.LogSuccess("CreateServiceHandler", "service created successfully", map[string]any{
		"service_id":   created.ServiceID,
		"requester_id": requesterID,
		"provider_id":  created.ProviderID,
	})
}

// GetServiceHandler handles GET /servicos/:service_id
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	serviceID := c.Param("service_id")
	found, err := h.booking.GetService(serviceID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetServiceHandler: error retrieving service", map[string]any{"service_id": serviceID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, found, "service retrieved successfully")
}

// ListServicesByUserHandler handles GET /servicos/usuario/:user_id
func (h *ServiceHandler) ListServicesByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	services, err := h.booking.ListServicesByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListServicesByUserHandler: error retrieving services", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if services == nil {
		services = []model.Service{}
	}

	utils.JSONResponse(c, http.StatusOK, services, "services retrieved successfully")
}

// UpdateServiceStatusHandler handles PUT /servicos
func (h *ServiceHandler) UpdateServiceStatusHandler(c *gin.Context) {
	var req helpers.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateServiceStatusHandler", err)
		return
	}

	actorID := c.GetString("user_id")

	updated, err := h.booking.RequestTransition(req.ServiceID, actorID, model.ServiceStatus(req.Status))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateServiceStatusHandler: transition rejected", map[string]any{
			"service_id": req.ServiceID,
			"actor_id":   actorID,
			"status":     req.Status,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "service status updated successfully")
	helpers.LogSuccess("UpdateServiceStatusHandler", "service status updated successfully", map[string]any{
		"service_id": updated.ServiceID,
		"status":     string(updated.Status),
		"actor_id":   actorID,
	})
}

// ProposePriceHandler handles POST /servicos/:service_id/valor
func (h *ServiceHandler) ProposePriceHandler(c *gin.Context) {
	var req helpers.ProposePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ProposePriceHandler", err)
		return
	}

	serviceID := c.Param("service_id")
	actorID := c.GetString("user_id")

	updated, err := h.booking.ProposePrice(serviceID, actorID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ProposePriceHandler: proposal rejected", map[string]any{
			"service_id": serviceID,
			"actor_id":   actorID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "price proposed successfully")
	helpers.LogSuccess("ProposePriceHandler", "price proposed successfully", map[string]any{
		"service_id": serviceID,
		"actor_id":   actorID,
		"amount":     req.Amount,
	})
}
