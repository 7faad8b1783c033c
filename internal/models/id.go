package models

import "github.com/google/uuid"

// NewShortID returns the short unique token used as Order and Service
// primary keys.
func NewShortID() string {
	return uuid.New().String()[:8]
}
