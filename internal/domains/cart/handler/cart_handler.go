package handler

import (
	"errors"
	"net/http"
	"strings"

	"autocart-backend/internal/domains/cart/model"
	"autocart-backend/internal/domains/cart/service"
	"autocart-backend/internal/shared/middleware"
	"autocart-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the cart
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetCart handles GET /me/cart
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.service.GetCart(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		response.InternalServerError(c, "failed to get cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// AddItem handles POST /me/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), middleware.GetOwner(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProductNotFound):
			response.NotFound(c, "product not found")
		case errors.Is(err, model.ErrOutOfStock):
			response.UnprocessableEntity(c, "OUT_OF_STOCK", "product is out of stock")
		case errors.Is(err, model.ErrInvalidQuantity):
			response.BadRequest(c, "invalid quantity")
		default:
			response.InternalServerError(c, "failed to add item")
		}
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity handles PATCH /me/cart/items/:id
func (h *Handler) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item ID")
		return
	}

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cart, err := h.service.UpdateQuantity(c.Request.Context(), middleware.GetOwner(c), itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrInvalidQuantity) {
			response.BadRequest(c, "invalid quantity")
			return
		}
		response.InternalServerError(c, "failed to update quantity")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /me/cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item ID")
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), middleware.GetOwner(c), itemID)
	if err != nil {
		response.InternalServerError(c, "failed to remove item")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /me/cart
func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.service.Clear(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		response.InternalServerError(c, "failed to clear cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ApplyCoupon handles POST /me/cart/coupon
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req model.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ApplyCoupon(c.Request.Context(), middleware.GetOwner(c), req.Code)
	if err != nil {
		response.InternalServerError(c, "failed to apply coupon")
		return
	}

	if !result.Applied() {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"COUPON_"+strings.ToUpper(string(result.Status)), result.Reason, result.Cart)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// RemoveCoupon handles DELETE /me/cart/coupon
func (h *Handler) RemoveCoupon(c *gin.Context) {
	cart, err := h.service.RemoveCoupon(c.Request.Context(), middleware.GetOwner(c))
	if err != nil {
		response.InternalServerError(c, "failed to remove coupon")
		return
	}

	response.Success(c, http.StatusOK, cart)
}
