package models

import (
	"time"
)

// ProfileID is the identifier of the singleton profile row.
// The row is seeded once at startup and only ever updated afterwards.
const ProfileID uint64 = 1

// Profile represents the site owner's profile. A single row exists.
type Profile struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the display name shown in the hero section.
	Name string `gorm:"size:100;not null"`
	// Title is the professional title line under the name.
	Title string `gorm:"size:150"`
	// Bio is the free-form biography text.
	Bio string `gorm:"type:text"`
	// Email is the public contact address.
	Email string `gorm:"size:255"`
	// GitHub is the source-code host profile link.
	GitHub string `gorm:"size:255"`
	// LinkedIn is the professional-network profile link.
	LinkedIn string `gorm:"size:255"`
	// CareerStart marks the beginning of professional experience.
	// Years of experience shown on the site are derived from it at read time.
	CareerStart time.Time
	UpdatedAt   time.Time
}

// ExpYears returns the number of full years since CareerStart.
func (p *Profile) ExpYears() int {
	if p.CareerStart.IsZero() {
		return 0
	}

	years := 0
	for t := p.CareerStart.AddDate(1, 0, 0); !t.After(time.Now()); t = t.AddDate(1, 0, 0) {
		years++
	}

	return years
}
