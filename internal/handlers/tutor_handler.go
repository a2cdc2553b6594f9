package handlers

import (
	"context"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TutorService interface {
	Register(ctx context.Context, req *dto.TutorRequest) (*dto.TutorResponse, error)
	Search(ctx context.Context, q *dto.TutorSearchQuery) ([]dto.TutorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TutorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.TutorUpdateRequest, actor string) (*dto.TutorResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}

type TutorHandler struct {
	tutorService TutorService
}

func NewTutorHandler(tutorService TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

func (h *TutorHandler) Register(c *fiber.Ctx) error {
	var req dto.TutorRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.tutorService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *TutorHandler) Search(c *fiber.Ctx) error {
	var q dto.TutorSearchQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}

	resp, err := h.tutorService.Search(c.UserContext(), &q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *TutorHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.tutorService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *TutorHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.TutorUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.tutorService.Update(c.UserContext(), id, &req, middleware.ActorID(c, c.Query("adminId")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *TutorHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.tutorService.Delete(c.UserContext(), id, middleware.ActorID(c, c.Query("adminId"))); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
