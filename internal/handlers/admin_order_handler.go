package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/fabclean/laundry-api/internal/domain/order"
	"github.com/fabclean/laundry-api/internal/dto"
	"github.com/fabclean/laundry-api/internal/httperr"
	ucorder "github.com/fabclean/laundry-api/internal/usecase/order"
)

type AdminOrderHandler struct {
	repo     domain.Repository
	updateUC *ucorder.AdminUpdateOrder
	deleteUC *ucorder.DeleteOrder
}

func NewAdminOrderHandler(
	repo domain.Repository,
	updateUC *ucorder.AdminUpdateOrder,
	deleteUC *ucorder.DeleteOrder,
) *AdminOrderHandler {
	return &AdminOrderHandler{
		repo:     repo,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type AdminUpdateOrderRequest struct {
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	ServiceID     *string `json:"serviceId,omitempty"`
}

// --------- Handlers ---------

func (h *AdminOrderHandler) List(c *gin.Context) {
	orders, err := h.repo.ListOrders(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders")
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

func (h *AdminOrderHandler) Update(c *gin.Context) {
	var req AdminUpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), ucorder.AdminUpdateOrderInput{
		OrderID:       c.Param("id"),
		Actor:         adminActor(c),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ServiceIDList: req.ServiceID,
	})
	if err != nil {
		writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDTO(o))
}

func (h *AdminOrderHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.ExecuteAdmin(c.Request.Context(), c.Param("id"), adminActor(c)); err != nil {
		writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
