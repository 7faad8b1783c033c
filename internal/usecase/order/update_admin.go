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

type AdminUpdateOrderInput struct {
	OrderID string
	Actor   string

	CustomerName  *string
	CustomerEmail *string

	// ServiceIDList is the comma-separated id list the admin UI sends.
	// When present, the selection is replaced and the total recomputed.
	ServiceIDList *string
}

// ======================================================
// USE CASE
// ======================================================

type AdminUpdateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminUpdateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdminUpdateOrder {
	return &AdminUpdateOrder{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AdminUpdateOrder) Execute(
	ctx context.Context,
	in AdminUpdateOrderInput,
) (*models.Order, error) {

	o, err := uc.repo.GetOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}

	replace := false
	var increments []string

	// Validate the selection fully before mutating any order field, so an
	// invalid id leaves the order untouched.
	if in.ServiceIDList != nil {
		ids := domain.SplitIDList(*in.ServiceIDList)

		resolved, err := uc.repo.GetServicesByIDs(ctx, domain.UniqueIDs(ids))
		if err != nil {
			return nil, err
		}

		selection, err := domain.BuildSelection(ids, resolved)
		if err != nil {
			return nil, err
		}

		increments = domain.ReplaceSelection(o, selection)
		o.Total = domain.Total(ids, resolved)
		replace = true
	}

	if in.CustomerName != nil {
		o.CustomerName = *in.CustomerName
	}
	if in.CustomerEmail != nil {
		o.CustomerEmail = *in.CustomerEmail
	}

	if err := uc.repo.UpdateOrder(ctx, o, replace, increments); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "order_admin_updated",
		Entity:   "order",
		EntityID: o.ID,
	})

	return o, nil
}
