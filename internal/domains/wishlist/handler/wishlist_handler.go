package handler

import (
	"errors"
	"net/http"

	catalogModel "autocart-backend/internal/domains/catalog/model"
	"autocart-backend/internal/domains/wishlist/model"
	"autocart-backend/internal/domains/wishlist/service"
	"autocart-backend/internal/shared/middleware"
	"autocart-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the wishlist
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetWishlist handles GET /me/wishlist
func (h *Handler) GetWishlist(c *gin.Context) {
	wishlist, err := h.service.GetWishlist(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		response.InternalServerError(c, "failed to get wishlist")
		return
	}

	response.Success(c, http.StatusOK, wishlist)
}

// Add handles POST /me/wishlist
func (h *Handler) Add(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	wishlist, err := h.service.Add(c.Request.Context(), middleware.GetOwner(c), req.ProductID)
	if err != nil {
		respondServiceError(c, err, "failed to add to wishlist")
		return
	}

	response.Success(c, http.StatusOK, wishlist)
}

// Remove handles DELETE /me/wishlist/:productId
func (h *Handler) Remove(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "invalid product ID")
		return
	}

	wishlist, err := h.service.Remove(c.Request.Context(), middleware.GetOwner(c), productID)
	if err != nil {
		response.InternalServerError(c, "failed to remove from wishlist")
		return
	}

	response.Success(c, http.StatusOK, wishlist)
}

// Toggle handles POST /me/wishlist/toggle
func (h *Handler) Toggle(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	wishlist, err := h.service.Toggle(c.Request.Context(), middleware.GetOwner(c), req.ProductID)
	if err != nil {
		respondServiceError(c, err, "failed to toggle wishlist")
		return
	}

	response.Success(c, http.StatusOK, wishlist)
}

// Clear handles DELETE /me/wishlist
func (h *Handler) Clear(c *gin.Context) {
	wishlist, err := h.service.Clear(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		response.InternalServerError(c, "failed to clear wishlist")
		return
	}

	response.Success(c, http.StatusOK, wishlist)
}

func bindProductRequest(c *gin.Context) (model.ProductRequest, bool) {
	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return req, false
	}
	return req, true
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, catalogModel.ErrProductNotFound) {
		response.NotFound(c, "product not found")
		return
	}
	response.InternalServerError(c, fallback)
}
