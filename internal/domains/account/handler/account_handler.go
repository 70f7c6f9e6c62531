package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autocart-backend/internal/domains/account/model"
	"autocart-backend/internal/domains/account/service"
	"autocart-backend/internal/shared/middleware"
	"autocart-backend/internal/shared/response"
)

type AccountHandler struct {
	service service.ServiceInterface
}

func NewAccountHandler(svc service.ServiceInterface) *AccountHandler {
	return &AccountHandler{service: svc}
}

// Register handles POST /auth/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			response.Conflict(c, "Email is already registered")
			return
		}
		response.InternalServerError(c, "Failed to register account")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.InternalServerError(c, "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout handles POST /auth/logout
func (h *AccountHandler) Logout(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile handles GET /me/profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /me/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// ListAddresses handles GET /me/addresses
func (h *AccountHandler) ListAddresses(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	result, err := h.service.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// AddAddress handles POST /me/addresses
func (h *AccountHandler) AddAddress(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req model.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	address, err := h.service.AddAddress(c.Request.Context(), userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, address)
}

// UpdateAddress handles PUT /me/addresses/:addressId
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	addressID, ok := h.addressParam(c)
	if !ok {
		return
	}

	var req model.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	address, err := h.service.UpdateAddress(c.Request.Context(), userID, addressID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, address)
}

// DeleteAddress handles DELETE /me/addresses/:addressId
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	addressID, ok := h.addressParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Address deleted"})
}

// SetDefaultAddress handles PUT /me/addresses/:addressId/default
func (h *AccountHandler) SetDefaultAddress(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	addressID, ok := h.addressParam(c)
	if !ok {
		return
	}

	address, err := h.service.SetDefaultAddress(c.Request.Context(), userID, addressID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, address)
}

func (h *AccountHandler) requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

func (h *AccountHandler) addressParam(c *gin.Context) (uuid.UUID, bool) {
	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		response.BadRequest(c, "Invalid address ID")
		return uuid.Nil, false
	}
	return addressID, true
}

func (h *AccountHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		response.NotFound(c, "Account not found")
	case errors.Is(err, model.ErrAddressNotFound):
		response.NotFound(c, "Address not found")
	default:
		response.InternalServerError(c, "Request failed")
	}
}
