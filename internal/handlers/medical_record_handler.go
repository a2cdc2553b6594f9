package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/middleware"
	"github.com/clinicproject/vetclinic-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MedicalRecordService interface {
	Create(ctx context.Context, req *dto.MedicalRecordRequest, files []*multipart.FileHeader) (*dto.MedicalRecordResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.MedicalRecordUpdateRequest, files []*multipart.FileHeader, actor string) (*dto.MedicalRecordResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	Search(ctx context.Context, q *dto.MedicalRecordSearchQuery) ([]dto.MedicalRecordResponse, error)
	Attachments(ctx context.Context, id uuid.UUID) ([]byte, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MedicalRecordHandler struct {
	recordService MedicalRecordService
}

func NewMedicalRecordHandler(recordService MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordService: recordService}
}

// Create expects multipart/form-data with a JSON "data" part and any number
// of "files" parts.
func (h *MedicalRecordHandler) Create(c *fiber.Ctx) error {
	data, files, err := multipartData(c)
	if err != nil {
		return respondError(c, err)
	}
	if data == nil {
		return respondError(c, fmt.Errorf("%w: data part is required", services.ErrInvalidInput))
	}

	var req dto.MedicalRecordRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return respondError(c, errBadRequestBody)
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.recordService.Create(c.UserContext(), &req, files)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update takes the same multipart shape as Create; both parts are optional.
// The veterinarianId header names the actor.
func (h *MedicalRecordHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	data, files, err := multipartData(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.MedicalRecordUpdateRequest
	if data != nil {
		if err := json.Unmarshal(data, &req); err != nil {
			return respondError(c, errBadRequestBody)
		}
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}

	actor := middleware.ActorID(c, c.Get("veterinarianId"))
	resp, err := h.recordService.Update(c.UserContext(), id, &req, files, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *MedicalRecordHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.recordService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *MedicalRecordHandler) Search(c *fiber.Ctx) error {
	var q dto.MedicalRecordSearchQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}

	resp, err := h.recordService.Search(c.UserContext(), &q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Attachments streams a zip of the record's files, or 204 when there are none.
func (h *MedicalRecordHandler) Attachments(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.recordService.Attachments(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Attachment(fmt.Sprintf("medical-record-%s-attachments.zip", id))
	return c.Send(data)
}

func (h *MedicalRecordHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.recordService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
