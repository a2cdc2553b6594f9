package repository

import (
	"context"
	"fmt"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines data operations on clinic staff.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error)
	Search(ctx context.Context, filter UserFilter) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, translate(err))
	}
	return &user, nil
}

func (r *userRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return exists[models.User](ctx, r.db, "cpf = ?", cpf)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists[models.User](ctx, r.db, "email = ?", email)
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return exists[models.User](ctx, r.db, "username = ?", username)
}

func (r *userRepository) EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	return exists[models.User](ctx, r.db, "email = ? AND id <> ?", email, id)
}

func (r *userRepository) Search(ctx context.Context, filter UserFilter) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Scopes(userScopes(filter)...).
		Order(userOrder(filter.OrderBy)).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, translate(err))
	}
	return nil
}

func userScopes(f UserFilter) []func(db *gorm.DB) *gorm.DB {
	return []func(db *gorm.DB) *gorm.DB{
		containsFold("name", f.Name),
		equal("cpf", f.CPF),
		equal("role", string(f.Role)),
		between("admission_date", f.AdmissionStart, f.AdmissionEnd),
		equalBool("active", f.Active),
	}
}

func exists[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}
