package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/audit"
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/httpresp"
	"github.com/fabclean/laundry-api/internal/models"
)

type AdminCustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *AdminCustomerHandler {
	return &AdminCustomerHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// --------- Handlers ---------

func (h *AdminCustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Order("created_at DESC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers")
		return
	}

	httpresp.List(c, customers)
}

func (h *AdminCustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing fields")
		return
	}

	var count int64
	h.db.Model(&models.Customer{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_exists", "Email exists")
		return
	}

	// admin-created accounts without a password get a random one-time
	// credential, same as order auto-provisioning
	password := req.Password
	if password == "" {
		password = models.NewShortID() + models.NewShortID()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password")
		return
	}

	customer := models.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Could not create customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminActor(c),
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: customer.Email,
	})

	c.JSON(http.StatusCreated, customer)
}

func (h *AdminCustomerHandler) Update(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Could not update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *AdminCustomerHandler) Delete(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Could not delete customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    adminActor(c),
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: customer.Email,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
