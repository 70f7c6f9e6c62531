package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autocart-backend/internal/domains/order/model"
	"autocart-backend/internal/domains/order/service"
	"autocart-backend/internal/shared/middleware"
	"autocart-backend/internal/shared/response"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(svc service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: svc}
}

// Checkout handles POST /me/orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	// a missing body means checkout to the default address
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), userID, middleware.GetOwner(c), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyCart):
			response.UnprocessableEntity(c, "ORDER_EMPTY_CART", "Cart is empty")
		case errors.Is(err, model.ErrNoAddress):
			response.UnprocessableEntity(c, "ORDER_NO_ADDRESS", "No shipping address available")
		default:
			response.InternalServerError(c, "Failed to place order")
		}
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// ListOrders handles GET /me/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to load orders")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetOrder handles GET /me/orders/:orderId
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			response.NotFound(c, "Order not found")
			return
		}
		response.InternalServerError(c, "Failed to load order")
		return
	}
	response.Success(c, http.StatusOK, order)
}

// CancelOrder handles POST /me/orders/:orderId/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			response.NotFound(c, "Order not found")
		case errors.Is(err, model.ErrAlreadyCancelled):
			response.Conflict(c, "Order is already cancelled")
		case errors.Is(err, model.ErrNotCancellable):
			response.Conflict(c, "Order can no longer be cancelled")
		default:
			response.InternalServerError(c, "Failed to cancel order")
		}
		return
	}
	response.Success(c, http.StatusOK, order)
}
