package dto

import (
	"time"

	"github.com/fabclean/laundry-api/internal/models"
)

// OrderDTO is the wire shape of an order: the selection is exposed as
// parallel id/name arrays in selection order.
type OrderDTO struct {
	ID                  string    `json:"id"`
	CustomerName        string    `json:"customerName"`
	CustomerEmail       string    `json:"customerEmail"`
	CustomerPhone       string    `json:"customerPhone"`
	ServiceIDs          []string  `json:"serviceId"`
	Services            []string  `json:"service"`
	PickupDate          string    `json:"pickupDate"`
	SpecialInstructions string    `json:"specialInstructions"`
	Total               float64   `json:"total"`
	CreatedAt           time.Time `json:"createdAt"`
}

func NewOrderDTO(o *models.Order) OrderDTO {
	return OrderDTO{
		ID:                  o.ID,
		CustomerName:        o.CustomerName,
		CustomerEmail:       o.CustomerEmail,
		CustomerPhone:       o.CustomerPhone,
		ServiceIDs:          o.ServiceIDs(),
		Services:            o.ServiceNames(),
		PickupDate:          o.PickupDate,
		SpecialInstructions: o.SpecialInstructions,
		Total:               o.Total,
		CreatedAt:           o.CreatedAt,
	}
}

func NewOrderList(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderDTO(&orders[i]))
	}
	return out
}
