package content

import (
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// CreateSkill inserts a new skill row.
func CreateSkill(db *gorm.DB, name, category string, proficiency int) (*models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" || category == "" {
		return nil, ErrNameEmpty
	}
	if proficiency < 0 || proficiency > 100 {
		return nil, ErrProficiencyRange
	}

	skill := &models.Skill{
		Name:        name,
		Category:    category,
		Proficiency: proficiency,
	}

	result := db.Create(skill)
	if result.Error != nil {
		return nil, result.Error
	}

	return skill, nil
}

// DeleteSkill deletes a skill by ID. Deleting a non-existent ID is not an
// error; the operation is idempotent at this level.
func DeleteSkill(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
