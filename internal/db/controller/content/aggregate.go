package content

import (
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/db/models"
)

// Contacts is the contact info block inside the profile payload.
type Contacts struct {
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// ProfileData is the profile part of the aggregated payload.
type ProfileData struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	ExpYears int      `json:"exp_years"`
	Contacts Contacts `json:"contacts"`
}

// SkillItem is a single skill inside a category group.
// The ID is part of the contract: the admin panel deletes by it.
type SkillItem struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillGroup holds all skills of one category.
type SkillGroup struct {
	Category string      `json:"category"`
	Items    []SkillItem `json:"items"`
}

// ProjectItem is a project in the aggregated payload.
type ProjectItem struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Tech  string `json:"tech"`
	Img   string `json:"img"`
	Link  string `json:"link"`
}

// HobbyItem is a hobby in the aggregated payload.
type HobbyItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// Aggregate is the full public content payload.
type Aggregate struct {
	Profile  *ProfileData  `json:"profile"`
	Skills   []SkillGroup  `json:"skills"`
	Projects []ProjectItem `json:"projects"`
	Hobbies  []HobbyItem   `json:"hobbies"`
}

// GetAggregate assembles the whole public content in one logical read.
// Ordering is deterministic: skill groups by category, items by name,
// projects by display order then id, hobbies by id.
func GetAggregate(db *gorm.DB) (*Aggregate, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	out := &Aggregate{
		Skills:   make([]SkillGroup, 0),
		Projects: make([]ProjectItem, 0),
		Hobbies:  make([]HobbyItem, 0),
	}

	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}

	out.Profile = &ProfileData{
		Name:     profile.Name,
		Title:    profile.Title,
		Bio:      profile.Bio,
		ExpYears: profile.ExpYears(),
		Contacts: Contacts{
			Email:    profile.Email,
			GitHub:   profile.GitHub,
			LinkedIn: profile.LinkedIn,
		},
	}

	var skills []models.Skill
	if result := db.Order("category, name, id").Find(&skills); result.Error != nil {
		return nil, result.Error
	}

	for _, s := range skills {
		n := len(out.Skills)
		if n == 0 || out.Skills[n-1].Category != s.Category {
			out.Skills = append(out.Skills, SkillGroup{
				Category: s.Category,
				Items:    make([]SkillItem, 0),
			})
			n++
		}

		out.Skills[n-1].Items = append(out.Skills[n-1].Items, SkillItem{
			ID:    s.ID,
			Name:  s.Name,
			Level: s.Proficiency,
		})
	}

	var projects []models.Project
	if result := db.Order("display_order, id").Find(&projects); result.Error != nil {
		return nil, result.Error
	}

	for _, p := range projects {
		out.Projects = append(out.Projects, ProjectItem{
			ID:    p.ID,
			Title: p.Title,
			Desc:  p.Description,
			Tech:  p.TechStack,
			Img:   p.ImageURL,
			Link:  p.ProjectURL,
		})
	}

	var hobbies []models.Hobby
	if result := db.Order("id").Find(&hobbies); result.Error != nil {
		return nil, result.Error
	}

	for _, h := range hobbies {
		out.Hobbies = append(out.Hobbies, HobbyItem{
			ID:   h.ID,
			Name: h.Name,
			Desc: h.Description,
		})
	}

	return out, nil
}
