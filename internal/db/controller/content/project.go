package content

import (
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// defaultDisplayOrder is the display order assigned to new projects.
const defaultDisplayOrder = 1

// ProjectFields carries the values for a new project row.
type ProjectFields struct {
	Title       string
	Description string
	TechStack   string
	ImageURL    string
	ProjectURL  string
}

// CreateProject inserts a new project row.
func CreateProject(db *gorm.DB, fields ProjectFields) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if fields.Title == "" {
		return nil, ErrTitleEmpty
	}

	project := &models.Project{
		Title:        fields.Title,
		Description:  fields.Description,
		TechStack:    fields.TechStack,
		ImageURL:     fields.ImageURL,
		ProjectURL:   fields.ProjectURL,
		DisplayOrder: defaultDisplayOrder,
	}

	result := db.Create(project)
	if result.Error != nil {
		return nil, result.Error
	}

	return project, nil
}

// DeleteProject deletes a project by ID. Idempotent: a missing ID is not an error.
func DeleteProject(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
