package content

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/config"
	contentctl "github.com/gbunao/portfolio-cms/internal/db/controller/content"
	"github.com/gbunao/portfolio-cms/internal/db/models"
	"github.com/gbunao/portfolio-cms/internal/mailer"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Hobby{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	return db
}

func newTestService(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()
	cfg := &config.Config{}
	mail := mailer.New(config.Mail{Enabled: false})

	var s Service
	if err := s.Init(app, cfg, db, mail); err != nil {
		t.Fatalf("failed to init content handler: %v", err)
	}

	return app
}

func seedProfile(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.Create(&models.Profile{
		ID:          models.ProfileID,
		Name:        "Gabriel",
		Title:       "Software Developer",
		Bio:         "I build things.",
		Email:       "gabriel@example.com",
		GitHub:      "https://github.com/gabriel",
		CareerStart: time.Now().AddDate(-3, 0, 0),
	}).Error
	if err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
}

func TestGet_AggregatedPayload(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db)

	if _, err := contentctl.CreateSkill(db, "Go", "Backend", 90); err != nil {
		t.Fatalf("failed to seed skill: %v", err)
	}

	app := newTestService(t, db)

	req := httptest.NewRequest(http.MethodGet, Path+"/", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var payload struct {
		Profile struct {
			Name     string `json:"name"`
			ExpYears int    `json:"exp_years"`
			Contacts struct {
				Email string `json:"email"`
			} `json:"contacts"`
		} `json:"profile"`
		Skills []struct {
			Category string `json:"category"`
			Items    []struct {
				ID    uint64 `json:"id"`
				Name  string `json:"name"`
				Level int    `json:"level"`
			} `json:"items"`
		} `json:"skills"`
		Projects []any `json:"projects"`
		Hobbies  []any `json:"hobbies"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if payload.Profile.Name != "Gabriel" {
		t.Errorf("expected profile name Gabriel, got %q", payload.Profile.Name)
	}

	if payload.Profile.ExpYears != 3 {
		t.Errorf("expected 3 years of experience, got %d", payload.Profile.ExpYears)
	}

	if payload.Profile.Contacts.Email != "gabriel@example.com" {
		t.Errorf("unexpected contact email %q", payload.Profile.Contacts.Email)
	}

	if len(payload.Skills) != 1 || payload.Skills[0].Category != "Backend" {
		t.Fatalf("expected one Backend skill group, got %+v", payload.Skills)
	}

	if payload.Skills[0].Items[0].ID == 0 {
		t.Error("skill items must carry their id")
	}

	if payload.Projects == nil || payload.Hobbies == nil {
		t.Error("empty lists must serialize as arrays, not null")
	}
}

func TestGet_MissingProfile(t *testing.T) {
	db := newTestDB(t)
	app := newTestService(t, db)

	req := httptest.NewRequest(http.MethodGet, Path+"/", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Error fetching data.") {
		t.Errorf("expected generic error message, got %q", string(body))
	}

	// no raw error detail outside dev mode
	if strings.Contains(string(body), "profile not found") {
		t.Errorf("internal error detail leaked: %q", string(body))
	}
}

func performContactPost(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path+"/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestPost_ContactForm_Success(t *testing.T) {
	db := newTestDB(t)
	app := newTestService(t, db)

	resp := performContactPost(t, app,
		`{"name":"Visitor","email":"v@example.com","message":"Hello there"}`)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Message sent successfully.") {
		t.Errorf("expected confirmation message, got %q", string(body))
	}

	var count int64
	if err := db.Model(&models.Message{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count messages: %v", err)
	}

	if count != 1 {
		t.Errorf("expected exactly one stored message, got %d", count)
	}
}

func TestPost_ContactForm_Incomplete(t *testing.T) {
	db := newTestDB(t)
	app := newTestService(t, db)

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing fields", body: `{"name":"Visitor"}`},
		{name: "empty message", body: `{"name":"Visitor","email":"v@example.com","message":""}`},
		{name: "whitespace only message", body: `{"name":"Visitor","email":"v@example.com","message":"   "}`},
		{name: "markup only message", body: `{"name":"Visitor","email":"v@example.com","message":"<script>x</script>"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := performContactPost(t, app, tc.body)

			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", resp.StatusCode)
			}

			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), "Incomplete data.") {
				t.Errorf("expected incomplete data message, got %q", string(body))
			}
		})
	}

	// nothing may have been stored along the way
	var count int64
	if err := db.Model(&models.Message{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count messages: %v", err)
	}

	if count != 0 {
		t.Errorf("expected no stored messages, got %d", count)
	}
}

func TestPost_ContactForm_PersistenceFailure(t *testing.T) {
	// a db without the messages table makes the insert fail
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	app := newTestService(t, db)

	resp := performContactPost(t, app,
		`{"name":"Visitor","email":"v@example.com","message":"Hello there"}`)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 Service Unavailable, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Unable to send message.") {
		t.Errorf("expected unable to send message, got %q", string(body))
	}
}

func TestPost_ContactForm_Sanitized(t *testing.T) {
	db := newTestDB(t)
	app := newTestService(t, db)

	resp := performContactPost(t, app,
		`{"name":"<b>Visitor</b>","email":"v@example.com","message":"  <i>Hello</i> there  "}`)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
	}

	var msg models.Message
	if err := db.First(&msg).Error; err != nil {
		t.Fatalf("failed to load stored message: %v", err)
	}

	if msg.Name != "Visitor" {
		t.Errorf("expected markup stripped from name, got %q", msg.Name)
	}

	if msg.Body != "Hello there" {
		t.Errorf("expected trimmed sanitized body, got %q", msg.Body)
	}
}
