package models

// Hobby represents a hobby card on the public page.
type Hobby struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the hobby name.
	Name string `gorm:"size:100;not null"`
	// Description is the short hobby text.
	Description string `gorm:"type:text"`
}
