package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/mapper"
	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/google/uuid"
)

type TutorService struct {
	tutors   repository.TutorRepository
	notifier Notifier
	now      func() time.Time
}

func NewTutorService(tutors repository.TutorRepository, notifier Notifier) *TutorService {
	return &TutorService{tutors: tutors, notifier: notifier, now: time.Now}
}

// Register creates a tutor account. The role is always TUTOR.
func (s *TutorService) Register(ctx context.Context, req *dto.TutorRequest) (*dto.TutorResponse, error) {
	birth, err := dto.ParseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, invalid("%v", err)
	}

	taken, err := s.tutors.ExistsByCPF(ctx, req.CPF)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCPFTaken
	}
	taken, err = s.tutors.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tutor := models.Tutor{
		Name:      strings.TrimSpace(req.Name),
		CPF:       req.CPF,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      models.RoleTutor,
		BirthDate: birth,
		Password:  hash,
		Active:    true,
	}
	if err := s.tutors.Create(ctx, &tutor); err != nil {
		return nil, duplicate(err)
	}

	slog.InfoContext(ctx, "tutor registered", "entity", "tutor", "entity_id", tutor.ID.String())
	s.notifier.TutorRegistered(ctx, &tutor)

	resp := mapper.Tutor(&tutor)
	return &resp, nil
}

func (s *TutorService) Search(ctx context.Context, q *dto.TutorSearchQuery) ([]dto.TutorResponse, error) {
	active, err := parseOptionalBool(q.Active)
	if err != nil {
		return nil, err
	}
	tutors, err := s.tutors.Search(ctx, repository.TutorFilter{
		Name:    q.Name,
		CPF:     q.CPF,
		Email:   q.Email,
		Phone:   q.Phone,
		Active:  active,
		OrderBy: q.OrderBy,
	})
	if err != nil {
		return nil, err
	}
	return mapper.Tutors(tutors), nil
}

func (s *TutorService) Get(ctx context.Context, id uuid.UUID) (*dto.TutorResponse, error) {
	tutor, err := s.tutors.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTutorNotFound)
	}
	resp := mapper.Tutor(tutor)
	return &resp, nil
}

func (s *TutorService) Update(ctx context.Context, id uuid.UUID, req *dto.TutorUpdateRequest, actor string) (*dto.TutorResponse, error) {
	tutor, err := s.tutors.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTutorNotFound)
	}

	if req.Email != "" && req.Email != tutor.Email {
		taken, err := s.tutors.EmailTakenByOther(ctx, req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		tutor.Email = req.Email
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		tutor.Name = name
	}
	if req.Phone != "" {
		tutor.Phone = req.Phone
	}
	if req.Address != "" {
		tutor.Address = req.Address
	}
	if req.BirthDate != "" {
		birth, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			return nil, invalid("%v", err)
		}
		tutor.BirthDate = &birth
	}
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		tutor.Password = hash
	}

	tutor.LastModifiedDate, tutor.LastModifiedBy = stamp(s.now(), actor)
	if err := s.tutors.Update(ctx, tutor); err != nil {
		return nil, duplicate(err)
	}

	slog.InfoContext(ctx, "tutor updated", "entity", "tutor", "entity_id", id.String(), "actor_id", actor)
	resp := mapper.Tutor(tutor)
	return &resp, nil
}

// Delete deactivates the tutor; pets and records stay untouched.
func (s *TutorService) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	tutor, err := s.tutors.FindByID(ctx, id)
	if err != nil {
		return notFound(err, ErrTutorNotFound)
	}

	tutor.Active = false
	tutor.LastModifiedDate, tutor.LastModifiedBy = stamp(s.now(), actor)
	if err := s.tutors.Update(ctx, tutor); err != nil {
		return err
	}

	slog.InfoContext(ctx, "tutor deactivated", "entity", "tutor", "entity_id", id.String(), "actor_id", actor)
	return nil
}
