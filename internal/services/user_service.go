package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/mapper"
	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	users    repository.UserRepository
	notifier Notifier
	now      func() time.Time
}

func NewUserService(users repository.UserRepository, notifier Notifier) *UserService {
	return &UserService{users: users, notifier: notifier, now: time.Now}
}

func (s *UserService) Register(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok || !role.IsStaff() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}
	admission, err := dto.ParseDate(req.AdmissionDate)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if admission.After(today(s.now())) {
		return nil, ErrFutureAdmission
	}

	if err := s.checkUnique(ctx, req); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:          strings.TrimSpace(req.Name),
		CPF:           req.CPF,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          role,
		AdmissionDate: admission,
		Username:      req.Username,
		Password:      hash,
		Active:        true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, duplicate(err)
	}

	slog.InfoContext(ctx, "user registered", "entity", "user", "entity_id", user.ID.String(), "role", role.String())
	s.notifier.StaffRegistered(ctx, &user)

	resp := mapper.User(&user)
	return &resp, nil
}

func (s *UserService) checkUnique(ctx context.Context, req *dto.UserRequest) error {
	checks := []struct {
		exists func(context.Context, string) (bool, error)
		value  string
		err    error
	}{
		{s.users.ExistsByCPF, req.CPF, ErrCPFTaken},
		{s.users.ExistsByEmail, req.Email, ErrEmailTaken},
		{s.users.ExistsByUsername, req.Username, ErrUsernameTaken},
	}
	for _, c := range checks {
		taken, err := c.exists(ctx, c.value)
		if err != nil {
			return err
		}
		if taken {
			return c.err
		}
	}
	return nil
}

func (s *UserService) Search(ctx context.Context, q *dto.UserSearchQuery) ([]dto.UserResponse, error) {
	filter := repository.UserFilter{
		Name:    q.Name,
		CPF:     q.CPF,
		OrderBy: q.OrderBy,
	}
	if strings.TrimSpace(q.Role) != "" {
		role, ok := models.ParseRole(q.Role)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, q.Role)
		}
		filter.Role = role
	}

	var err error
	if filter.AdmissionStart, err = dto.ParseOptionalDate(q.AdmissionStart); err != nil {
		return nil, invalid("%v", err)
	}
	if filter.AdmissionEnd, err = dto.ParseOptionalDate(q.AdmissionEnd); err != nil {
		return nil, invalid("%v", err)
	}
	if filter.Active, err = parseOptionalBool(q.Active); err != nil {
		return nil, err
	}

	users, err := s.users.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.Users(users), nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	resp := mapper.User(user)
	return &resp, nil
}

// Update changes contact data, role, admission date and password. Blank
// request fields keep the stored value.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UserUpdateRequest, actor string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	if req.Email != "" && req.Email != user.Email {
		taken, err := s.users.EmailTakenByOther(ctx, req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if strings.TrimSpace(req.Role) != "" {
		role, ok := models.ParseRole(req.Role)
		if !ok || !role.IsStaff() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
		}
		user.Role = role
	}
	if req.AdmissionDate != "" {
		admission, err := dto.ParseDate(req.AdmissionDate)
		if err != nil {
			return nil, invalid("%v", err)
		}
		if admission.After(today(s.now())) {
			return nil, ErrFutureAdmission
		}
		user.AdmissionDate = admission
	}
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}

	user.LastModifiedDate, user.LastModifiedBy = stamp(s.now(), actor)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, duplicate(err)
	}

	slog.InfoContext(ctx, "user updated", "entity", "user", "entity_id", id.String(), "actor_id", actor)
	resp := mapper.User(user)
	return &resp, nil
}

// Delete deactivates a staff member. Administrators are never removed.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if user.Role == models.RoleAdministrator {
		return ErrAdminDeletion
	}

	user.Active = false
	user.LastModifiedDate, user.LastModifiedBy = stamp(s.now(), actor)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deactivated", "entity", "user", "entity_id", id.String(), "actor_id", actor)
	return nil
}

func parseOptionalBool(s string) (*bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil, invalid("active must be true or false")
	}
	return &b, nil
}
