package order

import (
	"github.com/fabclean/laundry-api/internal/httperr"
	"github.com/fabclean/laundry-api/internal/models"
)

// ===============================
// Service selection
// ===============================

// BuildSelection maps each requested service id, in request order, to a
// snapshot row. Every occurrence of an id is kept: ordering the same service
// twice yields two rows and two usage increments. Any id that resolves to no
// catalog entry invalidates the whole selection before anything is mutated.
func BuildSelection(requested []string, resolved []models.Service) ([]models.OrderService, error) {
	if len(requested) == 0 {
		return nil, httperr.ErrBusiness("empty_service_list")
	}

	byID := make(map[string]models.Service, len(resolved))
	for _, s := range resolved {
		byID[s.ID] = s
	}

	selection := make([]models.OrderService, 0, len(requested))
	for i, id := range requested {
		svc, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("invalid_services")
		}
		selection = append(selection, models.OrderService{
			Position:    i,
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
		})
	}

	return selection, nil
}

// Total sums the prices of the requested occurrences. The result is frozen
// onto the order; later price changes never touch existing orders.
func Total(requested []string, resolved []models.Service) float64 {
	byID := make(map[string]float64, len(resolved))
	for _, s := range resolved {
		byID[s.ID] = s.Price
	}

	var total float64
	for _, id := range requested {
		total += byID[id]
	}
	return total
}

// UniqueIDs returns the distinct ids of a request list, in first-seen order.
// Repositories resolve against this set; BuildSelection re-expands it.
func UniqueIDs(requested []string) []string {
	seen := make(map[string]struct{}, len(requested))
	out := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
