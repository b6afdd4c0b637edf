package models

// Skill represents a single skill entry, grouped by Category for display.
type Skill struct {
	ID uint64 `gorm:"primaryKey"`
	// Name is the display name of the skill.
	Name string `gorm:"size:100;not null"`
	// Category is the grouping key (e.g. Frontend, Backend, Database, Tools).
	Category string `gorm:"size:50;not null"`
	// Proficiency is the level in percent, 0-100.
	Proficiency int `gorm:"not null"`
}
