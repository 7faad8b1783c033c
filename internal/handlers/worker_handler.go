package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/httpresp"
	"github.com/fabclean/laundry-api/internal/models"
)

// WorkerHandler owns the tracking ledger: scan appends and admin-side
// reads, plus the worker roster the scans are validated against.
type WorkerHandler struct {
	db *gorm.DB
}

func NewWorkerHandler(db *gorm.DB) *WorkerHandler {
	return &WorkerHandler{db: db}
}

// --------- Requests ---------

type ScanRequest struct {
	WorkerID    uint   `json:"workerId"`
	OrderEmail  string `json:"orderEmail"`
	OrderStatus string `json:"orderStatus"`
	Location    string `json:"location"`
}

type CreateWorkerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// ======================================================
// SCAN (append-only)
// ======================================================

func (h *WorkerHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if req.WorkerID == 0 || req.OrderEmail == "" || req.OrderStatus == "" {
		httperr.BadRequest(c, "missing_fields", "Missing required fields")
		return
	}

	var workerCount int64
	if err := h.db.Model(&models.Worker{}).
		Where("id = ?", req.WorkerID).
		Count(&workerCount).Error; err != nil {
		httperr.Internal(c, "failed_to_check_worker", "Could not validate worker")
		return
	}
	if workerCount == 0 {
		httperr.BadRequest(c, "invalid_worker", "Worker does not exist")
		return
	}

	// A scan against an email with no matching order is kept, flagged as
	// orphaned, so field mistakes stay visible for reconciliation.
	var orderCount int64
	if err := h.db.Model(&models.Order{}).
		Where("customer_email = ?", req.OrderEmail).
		Count(&orderCount).Error; err != nil {
		httperr.Internal(c, "failed_to_check_order", "Could not validate order")
		return
	}

	track := models.Track{
		WorkerID:    req.WorkerID,
		OrderEmail:  req.OrderEmail,
		OrderStatus: req.OrderStatus,
		Location:    req.Location,
		Orphaned:    orderCount == 0,
	}

	if err := h.db.Create(&track).Error; err != nil {
		httperr.Internal(c, "failed_to_record_scan", "Could not record scan")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Scan recorded",
		"track":   track,
	})
}

// ======================================================
// LEDGER READ (admin)
// ======================================================

func (h *WorkerHandler) ListTracks(c *gin.Context) {
	q := h.db.Order("scanned_at DESC")

	if email := c.Query("email"); email != "" {
		q = q.Where("order_email = ?", email)
	}
	if c.Query("orphaned") == "true" {
		q = q.Where("orphaned = ?", true)
	}

	var tracks []models.Track
	if err := q.Find(&tracks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tracks", "Could not list tracks")
		return
	}

	httpresp.List(c, tracks)
}

// ======================================================
// WORKER ROSTER (admin)
// ======================================================

func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	var workers []models.Worker
	if err := h.db.Order("id ASC").Find(&workers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_workers", "Could not list workers")
		return
	}

	httpresp.List(c, workers)
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing fields")
		return
	}

	worker := models.Worker{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.db.Create(&worker).Error; err != nil {
		httperr.Internal(c, "failed_to_create_worker", "Could not create worker")
		return
	}

	c.JSON(http.StatusCreated, worker)
}
