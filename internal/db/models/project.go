package models

import (
	"time"
)

// Project represents a portfolio project card.
type Project struct {
	ID uint64 `gorm:"primaryKey"`
	// Title is the project name.
	Title string `gorm:"size:150;not null"`
	// Description is the short project summary.
	Description string `gorm:"type:text"`
	// TechStack is a free-form label of the technologies used.
	TechStack string `gorm:"size:255"`
	// ImageURL is the preview image shown on the card.
	ImageURL string `gorm:"size:512"`
	// ProjectURL is the external link to the project.
	ProjectURL string `gorm:"size:512"`
	// DisplayOrder sorts projects on the public page, lowest first.
	DisplayOrder int `gorm:"not null;default:1"`
	CreatedAt    time.Time
}
