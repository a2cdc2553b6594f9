package handlers

import (
	"context"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PetService interface {
	Create(ctx context.Context, tutorID uuid.UUID, req *dto.PetRequest) (*dto.PetResponse, error)
	Search(ctx context.Context, q *dto.PetSearchQuery) ([]dto.PetResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.PetUpdateRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PetHandler struct {
	petService PetService
}

func NewPetHandler(petService PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// Create registers a pet for the tutor in the path.
func (h *PetHandler) Create(c *fiber.Ctx) error {
	tutorID, err := paramID(c, "tutorId")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.PetRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.petService.Create(c.UserContext(), tutorID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PetHandler) Search(c *fiber.Ctx) error {
	var q dto.PetSearchQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}

	resp, err := h.petService.Search(c.UserContext(), &q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.petService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.PetUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.petService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.petService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
