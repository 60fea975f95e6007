package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mechbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin endpoints; the group is expected to carry
// JWTAuth + AdminOnly.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/mechanics", h.ListMechanics)
	admin.POST("/mechanics/:id/approve", h.ApproveShop)
	admin.POST("/mechanics/:id/reject", h.RejectShop)

	admin.GET("/categories", h.ListCategories)
	admin.POST("/categories", h.CreateCategory)
	admin.PATCH("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	admin.GET("/stats", h.GetStats)
}

func (h *Handler) ListMechanics(c *gin.Context) {
	shops, err := h.service.ListMechanics(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidShopStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown shop status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load mechanics")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shops": shops})
}

func (h *Handler) ApproveShop(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid shop id")
		return
	}

	shop, err := h.service.ApproveShop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			response.Error(c, http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to approve shop")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"shop": shop})
}

func (h *Handler) RejectShop(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid shop id")
		return
	}

	var req RejectShopRequest
	// body is optional, the reason falls back to a default
	_ = c.ShouldBindJSON(&req)

	shop, err := h.service.RejectShop(c.Request.Context(), id, req.Reason)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			response.Error(c, http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reject shop")
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

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and a valid vehicle type are required")
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCategoryExists) {
			response.Error(c, http.StatusConflict, "CATEGORY_EXISTS", "A category with this name already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"category": cat})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category id")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
		case errors.Is(err, ErrCategoryExists):
			response.Error(c, http.StatusConflict, "CATEGORY_EXISTS", "A category with this name already exists")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update category")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"category": cat})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category id")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete category")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
