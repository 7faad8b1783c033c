package order

import (
	"context"

	"github.com/fabclean/laundry-api/internal/audit"
	domain "github.com/fabclean/laundry-api/internal/domain/order"
)

type DeleteOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteOrder {
	return &DeleteOrder{
		repo:  repo,
		audit: audit,
	}
}

// Execute is the customer-initiated delete: the supplied email must equal
// the order's stored customer email exactly.
func (uc *DeleteOrder) Execute(
	ctx context.Context,
	orderID string,
	email string,
) error {

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := domain.AuthorizeDeleteByEmail(o, email); err != nil {
		return err
	}

	if err := uc.repo.DeleteOrder(ctx, o); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    email,
		Action:   "order_deleted",
		Entity:   "order",
		EntityID: o.ID,
	})

	return nil
}

// ExecuteAdmin deletes unconditionally.
func (uc *DeleteOrder) ExecuteAdmin(
	ctx context.Context,
	orderID string,
	actor string,
) error {

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteOrder(ctx, o); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "order_admin_deleted",
		Entity:   "order",
		EntityID: o.ID,
	})

	return nil
}
