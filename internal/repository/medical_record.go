package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecordChanges carries the fields an update may touch. Nil text
// fields are left unchanged.
type MedicalRecordChanges struct {
	Diagnosis        *string
	Prescription     *string
	Notes            *string
	LastModifiedDate time.Time
	LastModifiedBy   *string
	NewAttachments   []models.MedicalRecordAttachment
}

// MedicalRecordRepository defines data operations on medical records and
// their attachments.
type MedicalRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.MedicalRecord, error)
	Search(ctx context.Context, filter MedicalRecordFilter) ([]models.MedicalRecord, error)
	Create(ctx context.Context, record *models.MedicalRecord) error
	Update(ctx context.Context, id uuid.UUID, changes MedicalRecordChanges) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Veterinarian").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := r.withRelations(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find medical record %s: %w", id, translate(err))
	}
	return &record, nil
}

func (r *medicalRecordRepository) Search(ctx context.Context, filter MedicalRecordFilter) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.withRelations(ctx).
		Scopes(medicalRecordScopes(filter)...).
		Order("consultation_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search medical records: %w", err)
	}
	return records, nil
}

// Create inserts the record and its attachments in one statement group.
func (r *medicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	err := r.db.WithContext(ctx).
		Omit("Pet", "Veterinarian").
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", translate(err))
	}
	return nil
}

// Update applies field changes and appends attachments in a single
// transaction. Existing attachment rows are never touched.
func (r *medicalRecordRepository) Update(ctx context.Context, id uuid.UUID, changes MedicalRecordChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{
			"last_modified_date": changes.LastModifiedDate,
			"last_modified_by":   changes.LastModifiedBy,
		}
		if changes.Diagnosis != nil {
			fields["diagnosis"] = *changes.Diagnosis
		}
		if changes.Prescription != nil {
			fields["prescription"] = *changes.Prescription
		}
		if changes.Notes != nil {
			fields["notes"] = *changes.Notes
		}

		result := tx.Model(&models.MedicalRecord{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return fmt.Errorf("failed to update medical record %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("failed to update medical record %s: %w", id, ErrNotFound)
		}

		if len(changes.NewAttachments) == 0 {
			return nil
		}
		for i := range changes.NewAttachments {
			changes.NewAttachments[i].MedicalRecordID = id
		}
		if err := tx.Create(&changes.NewAttachments).Error; err != nil {
			return fmt.Errorf("failed to add attachments to medical record %s: %w", id, err)
		}
		return nil
	})
}

// Delete removes the record and, with it, its attachment rows.
func (r *medicalRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("medical_record_id = ?", id).Delete(&models.MedicalRecordAttachment{}).Error; err != nil {
			return fmt.Errorf("failed to delete attachments of medical record %s: %w", id, err)
		}
		result := tx.Delete(&models.MedicalRecord{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete medical record %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("failed to delete medical record %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

func medicalRecordScopes(f MedicalRecordFilter) []func(db *gorm.DB) *gorm.DB {
	scopes := []func(db *gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB { return db.Where("pet_id = ?", f.PetID) },
		between("consultation_date", f.StartDate, f.EndDate),
		containsFold("diagnosis", f.DiagnosisKeyword),
	}
	if f.VeterinarianID != nil {
		vetID := *f.VeterinarianID
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("veterinarian_id = ?", vetID)
		})
	}
	return scopes
}
