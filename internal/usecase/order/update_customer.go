package order

import (
	"context"

	"github.com/fabclean/laundry-api/internal/audit"
	domain "github.com/fabclean/laundry-api/internal/domain/order"
	"github.com/fabclean/laundry-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CustomerUpdateOrderInput struct {
	OrderID    string
	CustomerID uint

	PickupDate          *string
	SpecialInstructions *string
	Total               *float64

	// ServiceID replaces the whole selection with a single service.
	ServiceID *string
}

// ======================================================
// USE CASE
// ======================================================

type CustomerUpdateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCustomerUpdateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CustomerUpdateOrder {
	return &CustomerUpdateOrder{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CustomerUpdateOrder) Execute(
	ctx context.Context,
	in CustomerUpdateOrderInput,
) (*models.Order, error) {

	o, err := uc.repo.GetOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}

	// Ownership is the credential's customer id against the owner reference
	// captured at creation time.
	if err := domain.AuthorizeOwner(o, in.CustomerID); err != nil {
		return nil, err
	}

	if in.PickupDate != nil {
		o.PickupDate = *in.PickupDate
	}
	if in.SpecialInstructions != nil {
		o.SpecialInstructions = *in.SpecialInstructions
	}
	if in.Total != nil {
		// free-form override, not re-validated against current prices
		o.Total = *in.Total
	}

	replace := false
	var increments []string

	if in.ServiceID != nil {
		ids := []string{*in.ServiceID}

		resolved, err := uc.repo.GetServicesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}

		selection, err := domain.BuildSelection(ids, resolved)
		if err != nil {
			return nil, err
		}

		increments = domain.ReplaceSelection(o, selection)
		replace = true
	}

	if err := uc.repo.UpdateOrder(ctx, o, replace, increments); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    o.CustomerEmail,
		Action:   "order_updated",
		Entity:   "order",
		EntityID: o.ID,
	})

	return o, nil
}
