package directory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mechbook/internal/pkg/response"
)

type Handler struct {
	service *Service
	db      *gorm.DB
}

func NewHandler(service *Service, db *gorm.DB) *Handler {
	return &Handler{service: service, db: db}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/health", h.Health)
	v1.GET("/shops", h.SearchShops)
	v1.GET("/shops/:id", h.GetShop)
	v1.GET("/categories", h.ListCategories)
}

func (h *Handler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}

func (h *Handler) SearchShops(c *gin.Context) {
	shops, err := h.service.SearchShops(c.Request.Context(), SearchQuery{
		Query:       c.Query("q"),
		City:        c.Query("city"),
		VehicleType: c.Query("vehicleType"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search shops")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shops": shops})
}

func (h *Handler) GetShop(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid shop id")
		return
	}

	shop, err := h.service.GetShop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			response.Error(c, http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load shop")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shop": shop})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load categories")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}
