package routes

import (
	"strings"
	"testing"

	"github.com/clinicproject/vetclinic-backend/internal/config"
	"github.com/clinicproject/vetclinic-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
)

func TestSetupRegistersEndpoints(t *testing.T) {
	app := fiber.New()
	Setup(app, &config.Config{JWTSecret: "test-secret"}, Handlers{
		Auth:          handlers.NewAuthHandler(nil),
		Health:        handlers.NewHealthHandler(func() error { return nil }, t.TempDir()),
		User:          handlers.NewUserHandler(nil),
		Tutor:         handlers.NewTutorHandler(nil),
		Pet:           handlers.NewPetHandler(nil),
		MedicalRecord: handlers.NewMedicalRecordHandler(nil),
	})

	registered := map[string]bool{}
	for _, r := range app.GetRoutes(true) {
		registered[r.Method+" "+strings.TrimSuffix(r.Path, "/")] = true
	}

	want := []string{
		"GET /health",
		"POST /auth/login",
		"POST /users/", "GET /users/search", "GET /users/:id", "PUT /users/:id", "DELETE /users/:id",
		"POST /tutors/", "GET /tutors/search", "GET /tutors/:id", "PUT /tutors/:id", "DELETE /tutors/:id",
		"GET /pets/", "POST /pets/:tutorId", "GET /pets/:id", "PATCH /pets/:id", "DELETE /pets/:id",
		"POST /medical-records/", "GET /medical-records/search", "GET /medical-records/attachments/:id",
		"GET /medical-records/:id", "PATCH /medical-records/:id", "DELETE /medical-records/:id",
	}
	for _, route := range want {
		if !registered[strings.TrimSuffix(route, "/")] {
			t.Errorf("route %q not registered", route)
		}
	}
}
