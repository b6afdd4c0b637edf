package content

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// ProfileFields carries the full replacement values for the profile row.
// Every update replaces all fields; there are no partial updates.
type ProfileFields struct {
	Name     string
	Title    string
	Bio      string
	Email    string
	GitHub   string
	LinkedIn string
}

// GetProfile retrieves the singleton profile row.
func GetProfile(db *gorm.DB) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var profile models.Profile
	result := db.First(&profile, models.ProfileID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &profile, nil
}

// UpdateProfile replaces all editable fields of the singleton profile row.
func UpdateProfile(db *gorm.DB, fields ProfileFields) error {
	if db == nil {
		return ErrDBNil
	}

	profile, err := GetProfile(db)
	if err != nil {
		return err
	}

	profile.Name = fields.Name
	profile.Title = fields.Title
	profile.Bio = fields.Bio
	profile.Email = fields.Email
	profile.GitHub = fields.GitHub
	profile.LinkedIn = fields.LinkedIn

	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
