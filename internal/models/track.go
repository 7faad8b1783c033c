package models

import "time"

// Track is an append-only scan event. Orphaned marks scans whose order email
// matched no order at scan time; they are kept for later reconciliation.
type Track struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WorkerID    uint   `gorm:"not null;index" json:"workerId"`
	OrderEmail  string `gorm:"size:120;not null;index" json:"orderEmail"`
	OrderStatus string `gorm:"size:50;not null" json:"orderStatus"`
	Location    string `gorm:"size:100" json:"location"`
	Orphaned    bool   `gorm:"default:false" json:"orphaned"`

	ScannedAt time.Time `gorm:"autoCreateTime" json:"scannedAt"`
}
