package dto

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecordRequest is the JSON "data" part of a multipart create request.
type MedicalRecordRequest struct {
	PetID            string `json:"petId" validate:"required,uuid"`
	VeterinarianID   string `json:"veterinarianId" validate:"required,uuid"`
	ConsultationDate string `json:"consultationDate" validate:"required,datetime=2006-01-02"`
	Diagnosis        string `json:"diagnosis" validate:"required,max=1000"`
	Prescription     string `json:"prescription" validate:"required,max=1000"`
	Notes            string `json:"notes" validate:"max=1000"`
}

type MedicalRecordUpdateRequest struct {
	Diagnosis    *string `json:"diagnosis" validate:"omitempty,max=1000"`
	Prescription *string `json:"prescription" validate:"omitempty,max=1000"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

type AttachmentResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	CreatedAt time.Time `json:"createdAt"`
}

type MedicalRecordResponse struct {
	ID               uuid.UUID            `json:"id"`
	PetID            uuid.UUID            `json:"petId"`
	PetName          string               `json:"petName,omitempty"`
	TutorID          *uuid.UUID           `json:"tutorId,omitempty"`
	VeterinarianID   uuid.UUID            `json:"veterinarianId"`
	VeterinarianName string               `json:"veterinarianName,omitempty"`
	ConsultationDate string               `json:"consultationDate"`
	Diagnosis        string               `json:"diagnosis"`
	Prescription     string               `json:"prescription"`
	Notes            string               `json:"notes"`
	Attachments      []AttachmentResponse `json:"attachments"`
	LastModifiedDate *time.Time           `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   *string              `json:"lastModifiedBy,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type MedicalRecordSearchQuery struct {
	PetID            string `query:"petId" validate:"required,uuid"`
	StartDate        string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	VeterinarianID   string `query:"veterinarianId" validate:"omitempty,uuid"`
	DiagnosisKeyword string `query:"diagnosisKeyword"`
}
