package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fabclean/laundry-api/internal/audit"
	domain "github.com/fabclean/laundry-api/internal/domain/order"
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
)

// QRGenerator renders and stores the per-order QR artifact.
type QRGenerator interface {
	Generate(ctx context.Context, o *models.Order) (string, error)
}

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceIDs []string

	PickupDate          string
	SpecialInstructions string
}

type CreateOrderOutput struct {
	Order    *models.Order
	Customer *models.Customer
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo  domain.Repository
	qr    QRGenerator
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	qr QRGenerator,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		qr:    qr,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*CreateOrderOutput, error) {

	// --------------------------------------------------
	// 1. Resolve the selection before touching anything
	// --------------------------------------------------
	resolved, err := uc.repo.GetServicesByIDs(ctx, domain.UniqueIDs(in.ServiceIDs))
	if err != nil {
		return nil, err
	}

	selection, err := domain.BuildSelection(in.ServiceIDs, resolved)
	if err != nil {
		return nil, err
	}

	total := domain.Total(in.ServiceIDs, resolved)

	// --------------------------------------------------
	// 2. Customer (get or create with a one-time credential)
	// --------------------------------------------------
	customer, err := uc.getOrCreateCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Persist order + selection + usage counters atomically
	// --------------------------------------------------
	o := &models.Order{
		ID:                  models.NewShortID(),
		CustomerID:          customer.ID,
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		CustomerPhone:       in.CustomerPhone,
		Services:            selection,
		PickupDate:          in.PickupDate,
		SpecialInstructions: in.SpecialInstructions,
		Total:               total,
	}

	if err := uc.repo.CreateOrder(ctx, o, in.ServiceIDs); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. QR artifact (order is committed; failure surfaces
	//    to the caller without compensation)
	// --------------------------------------------------
	if _, err := uc.qr.Generate(ctx, o); err != nil {
		return nil, fmt.Errorf("qr generation: %w", err)
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    in.CustomerEmail,
		Action:   "order_created",
		Entity:   "order",
		EntityID: o.ID,
		Metadata: map[string]any{"total": o.Total, "services": o.ServiceIDs()},
	})

	return &CreateOrderOutput{Order: o, Customer: customer}, nil
}

func (uc *CreateOrder) getOrCreateCustomer(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Customer, error) {

	customer, err := uc.repo.GetCustomerByEmail(ctx, in.CustomerEmail)
	if err == nil {
		return customer, nil
	}
	if !httperr.IsBusiness(err, "customer_not_found") {
		return nil, err
	}

	// Unknown email: provision an account with a random one-time password.
	// The caller never learns it; the customer resets via support.
	oneTime, err := randomPassword()
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(oneTime), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer = &models.Customer{
		Name:         in.CustomerName,
		Email:        in.CustomerEmail,
		Phone:        in.CustomerPhone,
		PasswordHash: string(hashed),
	}

	if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
