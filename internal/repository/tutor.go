package repository

import (
	"context"
	"fmt"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TutorRepository defines data operations on pet owners.
type TutorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tutor, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error)
	Search(ctx context.Context, filter TutorFilter) ([]models.Tutor, error)
	Create(ctx context.Context, tutor *models.Tutor) error
	Update(ctx context.Context, tutor *models.Tutor) error
}

type tutorRepository struct {
	db *gorm.DB
}

func NewTutorRepository(db *gorm.DB) TutorRepository {
	return &tutorRepository{db: db}
}

func (r *tutorRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
	var tutor models.Tutor
	if err := r.db.WithContext(ctx).First(&tutor, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find tutor %s: %w", id, translate(err))
	}
	return &tutor, nil
}

func (r *tutorRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return exists[models.Tutor](ctx, r.db, "cpf = ?", cpf)
}

func (r *tutorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists[models.Tutor](ctx, r.db, "email = ?", email)
}

func (r *tutorRepository) EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	return exists[models.Tutor](ctx, r.db, "email = ? AND id <> ?", email, id)
}

func (r *tutorRepository) Search(ctx context.Context, filter TutorFilter) ([]models.Tutor, error) {
	var tutors []models.Tutor
	err := r.db.WithContext(ctx).
		Scopes(tutorScopes(filter)...).
		Order(tutorOrder(filter.OrderBy)).
		Find(&tutors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search tutors: %w", err)
	}
	return tutors, nil
}

func (r *tutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	if err := r.db.WithContext(ctx).Create(tutor).Error; err != nil {
		return fmt.Errorf("failed to create tutor: %w", translate(err))
	}
	return nil
}

func (r *tutorRepository) Update(ctx context.Context, tutor *models.Tutor) error {
	if err := r.db.WithContext(ctx).Save(tutor).Error; err != nil {
		return fmt.Errorf("failed to update tutor %s: %w", tutor.ID, translate(err))
	}
	return nil
}

func tutorScopes(f TutorFilter) []func(db *gorm.DB) *gorm.DB {
	return []func(db *gorm.DB) *gorm.DB{
		containsFold("name", f.Name),
		equal("cpf", f.CPF),
		equal("email", f.Email),
		equal("phone", f.Phone),
		equalBool("active", f.Active),
	}
}
