package handler

import (
	"errors"
	"net/http"

	"autocart-backend/internal/domains/catalog/model"
	"autocart-backend/internal/domains/catalog/service"
	"autocart-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the product catalog
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListProducts handles GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	products, total, err := h.service.ListProducts(c.Request.Context(), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, products, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// GetProduct handles GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product ID")
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to get product")
		return
	}

	response.Success(c, http.StatusOK, product)
}
