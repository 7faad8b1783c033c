package order

import (
	"strings"

	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
)

// ===============================
// Ownership & identity rules
// ===============================

// AuthorizeOwner checks a customer-initiated mutation against the owner
// reference captured at creation time.
func AuthorizeOwner(o *models.Order, customerID uint) error {
	if o.CustomerID != customerID {
		return httperr.ErrBusiness("not_order_owner")
	}
	return nil
}

// AuthorizeDeleteByEmail is the public delete contract: the caller proves
// ownership by supplying the exact email stored on the order.
func AuthorizeDeleteByEmail(o *models.Order, email string) error {
	if o.CustomerEmail != email {
		return httperr.ErrBusiness("email_mismatch")
	}
	return nil
}

// ReplaceSelection swaps an order's selection for a new one and reports which
// service ids must have their usage counters incremented.
//
// Policy: increment-only. Replaced services keep the usage they earned;
// only the incoming selection is counted.
func ReplaceSelection(o *models.Order, next []models.OrderService) (increment []string) {
	o.Services = next
	increment = make([]string, 0, len(next))
	for _, s := range next {
		increment = append(increment, s.ServiceID)
	}
	return increment
}

// SplitIDList parses the admin-facing comma-separated id list form.
func SplitIDList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
