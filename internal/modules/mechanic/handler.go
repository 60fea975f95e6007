package mechanic

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mechbook/internal/middleware"
	"mechbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the shop-management endpoints. The group is expected
// to carry JWTAuth + MechanicOnly; booking endpoints for the same group are
// mounted by the booking handler.
func (h *Handler) RegisterRoutes(mechanic *gin.RouterGroup) {
	mechanic.GET("/shop", h.GetShop)
	mechanic.PATCH("/shop", h.UpdateShop)
	mechanic.GET("/services", h.ListServices)
	mechanic.POST("/services", h.CreateService)
	mechanic.PATCH("/services/:id", h.UpdateService)
	mechanic.DELETE("/services/:id", h.DeleteService)
}

func (h *Handler) GetShop(c *gin.Context) {
	ownerID := c.GetInt64(middleware.CtxUserID)

	shop, err := h.service.GetShop(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err, "Failed to load shop")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shop": shop})
}

func (h *Handler) UpdateShop(c *gin.Context) {
	ownerID := c.GetInt64(middleware.CtxUserID)

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	shop, err := h.service.UpdateShop(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update shop")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shop": shop})
}

func (h *Handler) ListServices(c *gin.Context) {
	ownerID := c.GetInt64(middleware.CtxUserID)

	services, err := h.service.ListServices(c.Request.Context(), ownerID)
	if err != nil {
		h.respondError(c, err, "Failed to load services")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) CreateService(c *gin.Context) {
	ownerID := c.GetInt64(middleware.CtxUserID)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, positive price and duration (min 5) are required")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondError(c, err, "Failed to create service")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	ownerID := c.GetInt64(middleware.CtxUserID)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) DeleteService(c *gin.Context) {
	ownerID := c.GetInt64(middleware.CtxUserID)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), ownerID, id); err != nil {
		h.respondError(c, err, "Failed to delete service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values")
	case errors.Is(err, ErrShopNotFound):
		response.Error(c, http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
