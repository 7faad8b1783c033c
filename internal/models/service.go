package models

// Service is a catalog entry. UsageCount is owned by the order lifecycle:
// catalog CRUD never writes it.
type Service struct {
	ID         string  `gorm:"primaryKey;size:20" json:"id"`
	Name       string  `gorm:"size:120;not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	Duration   string  `gorm:"size:50" json:"duration"`
	Status     string  `gorm:"size:50;default:'Active'" json:"status"`
	UsageCount int     `gorm:"default:0" json:"usage_count"`
}
