package handlers

import (
	"context"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error)
	Search(ctx context.Context, q *dto.UserSearchQuery) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UserUpdateRequest, actor string) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *UserHandler) Search(c *fiber.Ctx) error {
	var q dto.UserSearchQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}

	resp, err := h.userService.Search(c.UserContext(), &q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.userService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UserUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	resp, err := h.userService.Update(c.UserContext(), id, &req, middleware.ActorID(c, c.Query("adminId")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.userService.Delete(c.UserContext(), id, middleware.ActorID(c, c.Query("adminId"))); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
