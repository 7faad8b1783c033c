package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/audit"
	"github.com/fabclean/laundry-api/internal/config"
	"github.com/fabclean/laundry-api/internal/handlers"
	infraRepo "github.com/fabclean/laundry-api/internal/infra/repository"
	"github.com/fabclean/laundry-api/internal/middleware"
	"github.com/fabclean/laundry-api/internal/qr"
	"github.com/fabclean/laundry-api/internal/session"
	ucOrder "github.com/fabclean/laundry-api/internal/usecase/order"
)

type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *logrus.Logger
	Sessions *session.Store
	QR       *qr.Generator
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Logger)

	// ======================================================
	// ORDER USE CASES
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(
		orderRepo,
		deps.QR,
		auditDispatcher,
	)

	customerUpdateOrderUC := ucOrder.NewCustomerUpdateOrder(
		orderRepo,
		auditDispatcher,
	)

	adminUpdateOrderUC := ucOrder.NewAdminUpdateOrder(
		orderRepo,
		auditDispatcher,
	)

	deleteOrderUC := ucOrder.NewDeleteOrder(
		orderRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config)
	serviceHandler := handlers.NewServiceHandler(deps.DB)
	workerHandler := handlers.NewWorkerHandler(deps.DB)
	qrHandler := handlers.NewQRHandler(deps.QR.Dir())

	orderHandler := handlers.NewOrderHandler(
		orderRepo,
		createOrderUC,
		customerUpdateOrderUC,
		deleteOrderUC,
	)

	adminAuthHandler := handlers.NewAdminAuthHandler(deps.DB, deps.Sessions)
	adminServiceHandler := handlers.NewAdminServiceHandler(deps.DB, auditDispatcher)
	adminCustomerHandler := handlers.NewAdminCustomerHandler(deps.DB, auditDispatcher)
	adminOrderHandler := handlers.NewAdminOrderHandler(
		orderRepo,
		adminUpdateOrderUC,
		deleteOrderUC,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/qr/:filename", qrHandler.Serve)

	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	api := r.Group("/api")
	{
		api.GET("/services", serviceHandler.List)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders", orderHandler.ListByEmail)
		api.DELETE("/orders/:id", orderHandler.Delete)

		secured := api.Group("/")
		secured.Use(middleware.CustomerAuthMiddleware(deps.Config))
		{
			secured.PUT("/orders/:id", orderHandler.Update)
		}
	}

	// ======================================================
	// WORKER
	// ======================================================
	r.POST("/worker/scan", workerHandler.Scan)

	// ======================================================
	// ADMIN
	// ======================================================
	r.POST("/admin/login", adminAuthHandler.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(deps.Sessions))
	{
		admin.POST("/logout", adminAuthHandler.Logout)

		adminAPI := admin.Group("/api")
		{
			adminAPI.GET("/services", adminServiceHandler.List)
			adminAPI.POST("/services", adminServiceHandler.Create)
			adminAPI.PUT("/services/:id", adminServiceHandler.Update)
			adminAPI.DELETE("/services/:id", adminServiceHandler.Delete)

			adminAPI.GET("/customers", adminCustomerHandler.List)
			adminAPI.POST("/customers", adminCustomerHandler.Create)
			adminAPI.PUT("/customers/:id", adminCustomerHandler.Update)
			adminAPI.DELETE("/customers/:id", adminCustomerHandler.Delete)

			adminAPI.GET("/orders", adminOrderHandler.List)
			adminAPI.PUT("/orders/:id", adminOrderHandler.Update)
			adminAPI.DELETE("/orders/:id", adminOrderHandler.Delete)

			adminAPI.GET("/workers", workerHandler.ListWorkers)
			adminAPI.POST("/workers", workerHandler.CreateWorker)

			adminAPI.GET("/tracks", workerHandler.ListTracks)
		}
	}
}
