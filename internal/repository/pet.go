package repository

import (
	"context"
	"fmt"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PetRepository defines data operations on pets. Pets are always loaded
// together with their tutor.
type PetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	Search(ctx context.Context, filter PetFilter) ([]models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) error
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).Joins("Tutor").First(&pet, "pets.id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find pet %s: %w", id, translate(err))
	}
	return &pet, nil
}

func (r *petRepository) Search(ctx context.Context, filter PetFilter) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.db.WithContext(ctx).
		Joins("Tutor").
		Scopes(petScopes(filter)...).
		Order(petOrder(filter.OrderBy)).
		Find(&pets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search pets: %w", err)
	}
	return pets, nil
}

func (r *petRepository) Create(ctx context.Context, pet *models.Pet) error {
	if err := r.db.WithContext(ctx).Omit("Tutor").Create(pet).Error; err != nil {
		return fmt.Errorf("failed to create pet: %w", translate(err))
	}
	return nil
}

func (r *petRepository) Update(ctx context.Context, pet *models.Pet) error {
	if err := r.db.WithContext(ctx).Omit("Tutor").Save(pet).Error; err != nil {
		return fmt.Errorf("failed to update pet %s: %w", pet.ID, translate(err))
	}
	return nil
}

func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Pet{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete pet %s: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete pet %s: %w", id, ErrNotFound)
	}
	return nil
}

// Owner columns come from the "Tutor" join alias.
func petScopes(f PetFilter) []func(db *gorm.DB) *gorm.DB {
	return []func(db *gorm.DB) *gorm.DB{
		containsFold("pets.name", f.Name),
		equalFold("pets.species", f.Species),
		containsFold("pets.breed", f.Breed),
		containsFold(`"Tutor".name`, f.OwnerName),
		equal(`"Tutor".cpf`, f.OwnerCPF),
	}
}
