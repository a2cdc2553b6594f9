package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecord is a single consultation note. It exclusively owns its
// attachments: deleting the record removes their rows.
type MedicalRecord struct {
	ID               uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PetID            uuid.UUID                 `gorm:"type:uuid;not null;index" json:"petId"`
	Pet              *Pet                      `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	VeterinarianID   uuid.UUID                 `gorm:"type:uuid;not null;index" json:"veterinarianId"`
	Veterinarian     *User                     `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
	ConsultationDate time.Time                 `gorm:"type:date;not null;index" json:"consultationDate"`
	Diagnosis        string                    `gorm:"size:1000;not null" json:"diagnosis"`
	Prescription     string                    `gorm:"size:1000;not null" json:"prescription"`
	Notes            string                    `gorm:"size:1000" json:"notes"`
	Attachments      []MedicalRecordAttachment `gorm:"foreignKey:MedicalRecordID;constraint:OnDelete:CASCADE" json:"attachments"`
	LastModifiedDate *time.Time                `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   *string                   `gorm:"size:64" json:"lastModifiedBy,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MedicalRecordAttachment is one uploaded file. FilePath holds the name the
// file was stored under, relative to the upload root.
type MedicalRecordAttachment struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FileName        string    `gorm:"size:255;not null" json:"fileName"`
	FilePath        string    `gorm:"size:512;not null" json:"filePath"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medicalRecordId"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (a *MedicalRecordAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
