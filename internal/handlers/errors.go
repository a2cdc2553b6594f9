package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errBadRequestBody = errors.New("invalid request body")

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var validation *dto.ValidationError
	switch {
	case errors.As(err, &validation),
		errors.Is(err, errBadRequestBody),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrCPFTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrFutureAdmission),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrAdminDeletion):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTutorNotFound),
		errors.Is(err, services.ErrPetNotFound),
		errors.Is(err, services.ErrVeterinarianNotFound),
		errors.Is(err, services.ErrMedicalRecordNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		message = "Internal server error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a valid UUID", services.ErrInvalidInput, name)
	}
	return id, nil
}

// bindJSON parses the body into v and validates it.
func bindJSON(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return errBadRequestBody
	}
	return dto.Validate(v)
}

func bindQuery(c *fiber.Ctx, v interface{}) error {
	if err := c.QueryParser(v); err != nil {
		return errBadRequestBody
	}
	return dto.Validate(v)
}

// multipartData returns the JSON "data" part of a multipart request, sent
// either as a plain field or as a file part, and the uploaded "files".
func multipartData(c *fiber.Ctx) ([]byte, []*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errBadRequestBody
	}
	files := form.File["files"]

	if values := form.Value["data"]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		return []byte(values[0]), files, nil
	}
	if parts := form.File["data"]; len(parts) > 0 {
		f, err := parts[0].Open()
		if err != nil {
			return nil, nil, errBadRequestBody
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, errBadRequestBody
		}
		return data, files, nil
	}
	return nil, files, nil
}
