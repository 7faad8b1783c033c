package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/fabclean/laundry-api/internal/domain/order"
	"github.com/fabclean/laundry-api/internal/dto"
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/middleware"
	ucorder "github.com/fabclean/laundry-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	repo     domain.Repository
	createUC *ucorder.CreateOrder
	updateUC *ucorder.CustomerUpdateOrder
	deleteUC *ucorder.DeleteOrder
}

func NewOrderHandler(
	repo domain.Repository,
	createUC *ucorder.CreateOrder,
	updateUC *ucorder.CustomerUpdateOrder,
	deleteUC *ucorder.DeleteOrder,
) *OrderHandler {
	return &OrderHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	CustomerName        string   `json:"customerName" binding:"required"`
	CustomerPhone       string   `json:"customerPhone" binding:"required"`
	CustomerEmail       string   `json:"customerEmail" binding:"required,email"`
	ServiceIDs          []string `json:"serviceIds" binding:"required,min=1"`
	PickupDate          string   `json:"pickupDate"`
	SpecialInstructions string   `json:"specialInstructions"`
}

type UpdateOrderRequest struct {
	PickupDate          *string  `json:"pickupDate,omitempty"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	Total               *float64 `json:"total,omitempty"`
	ServiceID           *string  `json:"serviceId,omitempty"`
}

// ======================================================
// CREATE (public, auto-provisions the customer)
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing fields")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucorder.CreateOrderInput{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		ServiceIDs:          req.ServiceIDs,
		PickupDate:          req.PickupDate,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":    dto.NewOrderDTO(out.Order),
		"customer": out.Customer,
	})
}

// ======================================================
// LIST BY EMAIL
// ======================================================

func (h *OrderHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "email_required", "Email query param is required")
		return
	}

	orders, err := h.repo.ListOrdersByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders")
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// ======================================================
// UPDATE (owner credential required)
// ======================================================

func (h *OrderHandler) Update(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), ucorder.CustomerUpdateOrderInput{
		OrderID:             c.Param("id"),
		CustomerID:          customerID,
		PickupDate:          req.PickupDate,
		SpecialInstructions: req.SpecialInstructions,
		Total:               req.Total,
		ServiceID:           req.ServiceID,
	})
	if err != nil {
		writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDTO(o))
}

// ======================================================
// DELETE (email-matched)
// ======================================================

func (h *OrderHandler) Delete(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "email_required", "Email query param is required")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id"), email); err != nil {
		writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeOrderError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "order_not_found"):
		httperr.NotFound(c, "order_not_found", "Order not found")
	case httperr.IsBusiness(err, "customer_not_found"):
		httperr.NotFound(c, "customer_not_found", "Customer not found")
	case httperr.IsBusiness(err, "invalid_services"):
		httperr.BadRequest(c, "invalid_services", "One or more services are invalid")
	case httperr.IsBusiness(err, "empty_service_list"):
		httperr.BadRequest(c, "empty_service_list", "serviceIds must be a non-empty list")
	case httperr.IsBusiness(err, "not_order_owner"):
		httperr.Forbidden(c, "not_order_owner", "Order belongs to another customer")
	case httperr.IsBusiness(err, "email_mismatch"):
		httperr.Unauthorized(c, "email_mismatch", "Unauthorized (email mismatch)")
	default:
		httperr.Internal(c, "internal_error", "Internal error")
	}
}
