package order

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/audit"
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
)

// --- Mock implementations ---

type mockRepo struct {
	services  map[string]models.Service
	customers map[string]*models.Customer
	orders    map[string]*models.Order

	created    []*models.Order
	increments []string
	updated    bool
	deleted    bool
}

func newMockRepo(services ...models.Service) *mockRepo {
	m := &mockRepo{
		services:  make(map[string]models.Service),
		customers: make(map[string]*models.Customer),
		orders:    make(map[string]*models.Order),
	}
	for _, s := range services {
		m.services[s.ID] = s
	}
	return m
}

func (m *mockRepo) GetCustomerByEmail(_ context.Context, email string) (*models.Customer, error) {
	if c, ok := m.customers[email]; ok {
		return c, nil
	}
	return nil, httperr.ErrBusiness("customer_not_found")
}

func (m *mockRepo) GetCustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, httperr.ErrBusiness("customer_not_found")
}

func (m *mockRepo) CreateCustomer(_ context.Context, c *models.Customer) error {
	c.ID = uint(len(m.customers) + 1)
	m.customers[c.Email] = c
	return nil
}

func (m *mockRepo) GetServicesByIDs(_ context.Context, ids []string) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := m.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) GetOrder(_ context.Context, id string) (*models.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, httperr.ErrBusiness("order_not_found")
}

func (m *mockRepo) ListOrdersByEmail(_ context.Context, email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.CustomerEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockRepo) ListOrders(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockRepo) CreateOrder(_ context.Context, o *models.Order, incrementIDs []string) error {
	m.orders[o.ID] = o
	m.created = append(m.created, o)
	m.increments = append(m.increments, incrementIDs...)
	return nil
}

func (m *mockRepo) UpdateOrder(_ context.Context, o *models.Order, _ bool, incrementIDs []string) error {
	m.orders[o.ID] = o
	m.updated = true
	m.increments = append(m.increments, incrementIDs...)
	return nil
}

func (m *mockRepo) DeleteOrder(_ context.Context, o *models.Order) error {
	delete(m.orders, o.ID)
	m.deleted = true
	return nil
}

type mockQR struct {
	generated []string
	err       error
}

func (m *mockQR) Generate(_ context.Context, o *models.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.generated = append(m.generated, o.ID)
	return o.ID + ".png", nil
}

// --- Helpers ---

func testDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	return audit.NewDispatcher(audit.New(db), logger)
}

func testCatalog() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Laundry", Price: 200},
		{ID: "s2", Name: "Dry Cleaning", Price: 300},
		{ID: "s3", Name: "Ironing", Price: 100},
	}
}

func createInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Loki Stark",
		CustomerPhone: "9999999999",
		CustomerEmail: "loki@example.com",
		ServiceIDs:    []string{"s1", "s2"},
		PickupDate:    "2025-09-25",
	}
}

// --- Tests ---

func TestCreateOrder(t *testing.T) {
	t.Run("computes total and increments per occurrence", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		qr := &mockQR{}
		uc := NewCreateOrder(repo, qr, testDispatcher(t))

		out, err := uc.Execute(context.Background(), createInput())
		require.NoError(t, err)

		assert.Equal(t, 500.0, out.Order.Total)
		assert.Equal(t, []string{"s1", "s2"}, out.Order.ServiceIDs())
		assert.Equal(t, []string{"Laundry", "Dry Cleaning"}, out.Order.ServiceNames())
		assert.Equal(t, []string{"s1", "s2"}, repo.increments)
		assert.Len(t, out.Order.ID, 8)
	})

	t.Run("duplicate occurrences each increment", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		uc := NewCreateOrder(repo, &mockQR{}, testDispatcher(t))

		in := createInput()
		in.ServiceIDs = []string{"s1", "s1"}

		out, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, 400.0, out.Order.Total)
		assert.Equal(t, []string{"s1", "s1"}, repo.increments)
	})

	t.Run("unknown email provisions exactly one customer", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		uc := NewCreateOrder(repo, &mockQR{}, testDispatcher(t))

		out, err := uc.Execute(context.Background(), createInput())
		require.NoError(t, err)
		require.Len(t, repo.customers, 1)

		created := repo.customers["loki@example.com"]
		assert.Equal(t, created.ID, out.Order.CustomerID)
		assert.NotEmpty(t, created.PasswordHash)

		// the one-time credential is random, not a fixed default
		err = bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("defaultpass"))
		assert.Error(t, err)
	})

	t.Run("known email reuses the customer", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		existing := &models.Customer{ID: 42, Name: "Loki Stark", Email: "loki@example.com"}
		repo.customers[existing.Email] = existing

		uc := NewCreateOrder(repo, &mockQR{}, testDispatcher(t))

		out, err := uc.Execute(context.Background(), createInput())
		require.NoError(t, err)

		assert.Len(t, repo.customers, 1)
		assert.Equal(t, uint(42), out.Order.CustomerID)
	})

	t.Run("invalid service id fails before any side effect", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		uc := NewCreateOrder(repo, &mockQR{}, testDispatcher(t))

		in := createInput()
		in.ServiceIDs = []string{"s1", "bogus"}

		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_services"))
		assert.Empty(t, repo.created)
		assert.Empty(t, repo.customers)
		assert.Empty(t, repo.increments)
	})

	t.Run("empty service list is rejected", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		uc := NewCreateOrder(repo, &mockQR{}, testDispatcher(t))

		in := createInput()
		in.ServiceIDs = nil

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "empty_service_list"))
	})

	t.Run("qr failure surfaces after the order is persisted", func(t *testing.T) {
		repo := newMockRepo(testCatalog()...)
		qr := &mockQR{err: assert.AnError}
		uc := NewCreateOrder(repo, qr, testDispatcher(t))

		_, err := uc.Execute(context.Background(), createInput())
		require.Error(t, err)
		assert.Len(t, repo.created, 1)
	})
}
