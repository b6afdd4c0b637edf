package content

import (
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// CreateMessage stores a contact form submission. The caller is expected
// to have sanitized the values; this only appends the row.
func CreateMessage(db *gorm.DB, name, email, body string) (*models.Message, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" || email == "" || body == "" {
		return nil, ErrNameEmpty
	}

	message := &models.Message{
		Name:  name,
		Email: email,
		Body:  body,
	}

	result := db.Create(message)
	if result.Error != nil {
		return nil, result.Error
	}

	return message, nil
}
