package models

import "time"

// Order carries a denormalized snapshot of the customer and a frozen total.
// CustomerID is the true owner reference, captured at creation time; the
// name/email/phone columns are display copies and never re-synced.
type Order struct {
	ID string `gorm:"primaryKey;size:20" json:"id"`

	CustomerID    uint   `gorm:"index" json:"-"`
	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerEmail string `gorm:"size:120;not null;index" json:"customerEmail"`
	CustomerPhone string `gorm:"size:20;not null" json:"customerPhone"`

	// Selection order is significant and preserved via Position.
	Services []OrderService `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	PickupDate          string  `gorm:"size:50" json:"pickupDate"`
	SpecialInstructions string  `gorm:"type:text" json:"specialInstructions"`
	Total               float64 `gorm:"not null" json:"total"`

	CreatedAt time.Time `json:"createdAt"`
}

// OrderService is one selected service of an order, with the service name
// snapshotted at assignment time so later renames do not rewrite history.
type OrderService struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	OrderID     string `gorm:"size:20;index;not null" json:"-"`
	Position    int    `gorm:"not null" json:"-"`
	ServiceID   string `gorm:"size:20;not null" json:"serviceId"`
	ServiceName string `gorm:"size:120;not null" json:"serviceName"`
}

// ServiceIDs returns the selected service ids in selection order.
func (o *Order) ServiceIDs() []string {
	ids := make([]string, 0, len(o.Services))
	for _, s := range o.Services {
		ids = append(ids, s.ServiceID)
	}
	return ids
}

// ServiceNames returns the snapshotted service names in selection order.
func (o *Order) ServiceNames() []string {
	names := make([]string, 0, len(o.Services))
	for _, s := range o.Services {
		names = append(names, s.ServiceName)
	}
	return names
}
