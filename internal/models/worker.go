package models

import "time"

// Worker is a passive reference entity; workers authenticate nowhere in this
// slice, scans only name them by id.
type Worker struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:120;uniqueIndex" json:"email"`

	CreatedAt time.Time `json:"createdAt"`
}
