package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/mapper"
	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/google/uuid"
)

type PetService struct {
	pets   repository.PetRepository
	tutors repository.TutorRepository
	now    func() time.Time
}

func NewPetService(pets repository.PetRepository, tutors repository.TutorRepository) *PetService {
	return &PetService{pets: pets, tutors: tutors, now: time.Now}
}

func (s *PetService) Create(ctx context.Context, tutorID uuid.UUID, req *dto.PetRequest) (*dto.PetResponse, error) {
	tutor, err := s.tutors.FindByID(ctx, tutorID)
	if err != nil {
		return nil, notFound(err, ErrTutorNotFound)
	}
	birth, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, invalid("%v", err)
	}

	pet := models.Pet{
		Name:      strings.TrimSpace(req.Name),
		Species:   req.Species,
		Breed:     req.Breed,
		Sex:       req.Sex,
		BirthDate: birth,
		Color:     req.Color,
		Weight:    req.Weight,
		Notes:     req.Notes,
		TutorID:   tutor.ID,
	}
	if err := s.pets.Create(ctx, &pet); err != nil {
		return nil, err
	}
	pet.Tutor = tutor

	slog.InfoContext(ctx, "pet created", "entity", "pet", "entity_id", pet.ID.String(), "tutor_id", tutor.ID.String())
	resp := mapper.Pet(&pet, s.now())
	return &resp, nil
}

func (s *PetService) Search(ctx context.Context, q *dto.PetSearchQuery) ([]dto.PetResponse, error) {
	pets, err := s.pets.Search(ctx, repository.PetFilter{
		Name:      q.Name,
		Species:   q.Species,
		Breed:     q.Breed,
		OwnerName: q.OwnerName,
		OwnerCPF:  q.OwnerCPF,
		OrderBy:   q.OrderBy,
	})
	if err != nil {
		return nil, err
	}
	return mapper.Pets(pets, s.now()), nil
}

func (s *PetService) Get(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPetNotFound)
	}
	resp := mapper.Pet(pet, s.now())
	return &resp, nil
}

// Update changes weight, color and notes only. A nil weight or notes and a
// blank color keep what is stored.
func (s *PetService) Update(ctx context.Context, id uuid.UUID, req *dto.PetUpdateRequest) (*dto.PetResponse, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPetNotFound)
	}

	if req.Weight != nil {
		pet.Weight = *req.Weight
	}
	if req.Color != nil && strings.TrimSpace(*req.Color) != "" {
		pet.Color = *req.Color
	}
	if req.Notes != nil {
		pet.Notes = *req.Notes
	}

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "pet updated", "entity", "pet", "entity_id", id.String())
	resp := mapper.Pet(pet, s.now())
	return &resp, nil
}

func (s *PetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.pets.Delete(ctx, id); err != nil {
		return notFound(err, ErrPetNotFound)
	}
	slog.InfoContext(ctx, "pet deleted", "entity", "pet", "entity_id", id.String())
	return nil
}
