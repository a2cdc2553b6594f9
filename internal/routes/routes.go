package routes

import (
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/config"
	"github.com/clinicproject/vetclinic-backend/internal/handlers"
	"github.com/clinicproject/vetclinic-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Health        *handlers.HealthHandler
	User          *handlers.UserHandler
	Tutor         *handlers.TutorHandler
	Pet           *handlers.PetHandler
	MedicalRecord *handlers.MedicalRecordHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	// General rate limiter: 120 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		Next:              func(c *fiber.Ctx) bool { return c.Path() == "/health" },
	}))

	app.Get("/health", h.Health.Check)

	// Login is stricter: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", h.Auth.Login)

	// Bearer tokens are optional; they only name the actor on audit stamps.
	actor := middleware.OptionalJWT(cfg)

	users := app.Group("/users", actor)
	users.Post("/", h.User.Register)
	users.Get("/search", h.User.Search)
	users.Get("/:id", h.User.Get)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)

	tutors := app.Group("/tutors", actor)
	tutors.Post("/", h.Tutor.Register)
	tutors.Get("/search", h.Tutor.Search)
	tutors.Get("/:id", h.Tutor.Get)
	tutors.Put("/:id", h.Tutor.Update)
	tutors.Delete("/:id", h.Tutor.Delete)

	pets := app.Group("/pets", actor)
	pets.Get("/", h.Pet.Search)
	pets.Post("/:tutorId", h.Pet.Create)
	pets.Get("/:id", h.Pet.Get)
	pets.Patch("/:id", h.Pet.Update)
	pets.Delete("/:id", h.Pet.Delete)

	records := app.Group("/medical-records", actor)
	records.Post("/", h.MedicalRecord.Create)
	records.Get("/search", h.MedicalRecord.Search)
	records.Get("/attachments/:id", h.MedicalRecord.Attachments)
	records.Get("/:id", h.MedicalRecord.Get)
	records.Patch("/:id", h.MedicalRecord.Update)
	records.Delete("/:id", h.MedicalRecord.Delete)
}
