package content

import (
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// CreateHobby inserts a new hobby row.
func CreateHobby(db *gorm.DB, name, description string) (*models.Hobby, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrNameEmpty
	}

	hobby := &models.Hobby{
		Name:        name,
		Description: description,
	}

	result := db.Create(hobby)
	if result.Error != nil {
		return nil, result.Error
	}

	return hobby, nil
}

// DeleteHobby deletes a hobby by ID. Idempotent: a missing ID is not an error.
func DeleteHobby(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Hobby{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
