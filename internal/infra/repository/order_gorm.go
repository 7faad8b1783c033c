package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/fabclean/laundry-api/internal/domain/order"
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *OrderGormRepository) GetCustomerByEmail(
	ctx context.Context,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&customer).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}
	return &customer, nil
}

func (r *OrderGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}
	return &customer, nil
}

func (r *OrderGormRepository) CreateCustomer(
	ctx context.Context,
	customer *models.Customer,
) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *OrderGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Order
// --------------------------------------------------

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Services", selectionOrder).
		First(&o, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("order_not_found")
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrdersByEmail(
	ctx context.Context,
	email string,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Services", selectionOrder).
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Services", selectionOrder).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder persists the order, its selection rows, and the usage-count
// increments in one transaction. incrementIDs carries one entry per
// occurrence in the request, duplicates included.
func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
	incrementIDs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		return incrementUsage(tx, incrementIDs)
	})
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
	replaceSelection bool,
	incrementIDs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Save(o).Error; err != nil {
			return err
		}

		if replaceSelection {
			if err := tx.Where("order_id = ?", o.ID).
				Delete(&models.OrderService{}).Error; err != nil {
				return err
			}

			for i := range o.Services {
				o.Services[i].ID = 0
				o.Services[i].OrderID = o.ID
			}
			if err := tx.Create(&o.Services).Error; err != nil {
				return err
			}
		}

		return incrementUsage(tx, incrementIDs)
	})
}

func (r *OrderGormRepository) DeleteOrder(
	ctx context.Context,
	o *models.Order,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).
			Delete(&models.OrderService{}).Error; err != nil {
			return err
		}
		return tx.Delete(o).Error
	})
}

// incrementUsage bumps each listed service atomically in SQL, so concurrent
// orders never lose updates.
func incrementUsage(tx *gorm.DB, ids []string) error {
	for _, id := range ids {
		if err := tx.Model(&models.Service{}).
			Where("id = ?", id).
			UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error; err != nil {
			return err
		}
	}
	return nil
}

func selectionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
