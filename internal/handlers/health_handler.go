package handlers

import (
	"os"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	ping      func() error
	uploadDir string
}

// NewHealthHandler reports on the database (through ping) and on the upload
// directory.
func NewHealthHandler(ping func() error, uploadDir string) *HealthHandler {
	return &HealthHandler{ping: ping, uploadDir: uploadDir}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "ok"

	dbStatus := "ok"
	if err := h.ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
		status = "degraded"
	}

	storageStatus := "ok"
	if info, err := os.Stat(h.uploadDir); err != nil {
		storageStatus = "unhealthy: " + err.Error()
		status = "degraded"
	} else if !info.IsDir() {
		storageStatus = "unhealthy: not a directory"
		status = "degraded"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Storage:   storageStatus,
	})
}
