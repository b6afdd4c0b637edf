// Package content provides the aggregated read and the single-row
// create/update/delete operations over the portfolio content tables.
package content

import "errors"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrProfileNotFound is returned when the singleton profile row is missing.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNameEmpty is returned when attempting to create a record with an empty name.
	ErrNameEmpty = errors.New("name cannot be empty")
	// ErrTitleEmpty is returned when attempting to create a project with an empty title.
	ErrTitleEmpty = errors.New("title cannot be empty")
	// ErrProficiencyRange is returned when a skill proficiency is outside 0-100.
	ErrProficiencyRange = errors.New("proficiency must be between 0 and 100")
)
