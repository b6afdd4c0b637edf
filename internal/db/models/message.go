package models

import (
	"time"
)

// Message represents a contact form submission. Messages are append-only:
// the public form creates them, nothing in the exposed API reads or
// deletes them.
type Message struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the sender's name as submitted.
	Name string `gorm:"size:100;not null"`
	// Email is the sender's address as submitted.
	Email string `gorm:"size:255;not null"`
	// Body is the sanitized message text.
	Body string `gorm:"type:text;not null"`
	// CreatedAt is the submission timestamp (managed by GORM).
	CreatedAt time.Time
}
