package order

import (
	"context"

	"github.com/fabclean/laundry-api/internal/models"
)

// Repository is the persistence boundary of the order lifecycle. The
// mutating methods are transaction-shaped: selection rows and usage-count
// increments commit atomically with the order itself.
type Repository interface {
	// -------- Customer --------
	GetCustomerByEmail(
		ctx context.Context,
		email string,
	) (*models.Customer, error)

	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	CreateCustomer(
		ctx context.Context,
		customer *models.Customer,
	) error

	// -------- Service --------
	GetServicesByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Service, error)

	// -------- Order --------
	GetOrder(
		ctx context.Context,
		id string,
	) (*models.Order, error)

	ListOrdersByEmail(
		ctx context.Context,
		email string,
	) ([]models.Order, error)

	ListOrders(
		ctx context.Context,
	) ([]models.Order, error)

	CreateOrder(
		ctx context.Context,
		o *models.Order,
		incrementIDs []string,
	) error

	UpdateOrder(
		ctx context.Context,
		o *models.Order,
		replaceSelection bool,
		incrementIDs []string,
	) error

	DeleteOrder(
		ctx context.Context,
		o *models.Order,
	) error
}
