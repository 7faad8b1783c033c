package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/audit"
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
)

// AdminServiceHandler is catalog CRUD. UsageCount is deliberately absent
// from both request shapes: the order lifecycle owns that counter.
type AdminServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *AdminServiceHandler {
	return &AdminServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Duration string   `json:"duration"`
}

type UpdateServiceRequest struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Duration *string  `json:"duration,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *AdminServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *AdminServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing fields")
		return
	}

	service := models.Service{
		ID:       models.NewShortID(),
		Name:     req.Name,
		Price:    *req.Price,
		Duration: req.Duration,
		Status:   "Active",
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service")
		return
	}

	h.dispatch(c, "service_created", service.ID)
	c.JSON(http.StatusCreated, service)
}

func (h *AdminServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Status != nil {
		service.Status = *req.Status
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service")
		return
	}

	h.dispatch(c, "service_updated", service.ID)
	c.JSON(http.StatusOK, service)
}

func (h *AdminServiceHandler) Delete(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service")
		return
	}

	h.dispatch(c, "service_deleted", service.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (h *AdminServiceHandler) dispatch(c *gin.Context, action, entityID string) {
	h.audit.Dispatch(audit.Event{
		Actor:    adminActor(c),
		Action:   action,
		Entity:   "service",
		EntityID: entityID,
	})
}
