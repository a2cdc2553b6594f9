// Package mapper converts persisted entities into API responses.
package mapper

import (
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/models"
)

// AgeInYears returns the number of full years between birth and now.
func AgeInYears(birth, now time.Time) int {
	if birth.IsZero() || now.Before(birth) {
		return 0
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func User(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		CPF:              u.CPF,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             u.Role.String(),
		AdmissionDate:    dto.FormatDate(u.AdmissionDate),
		Username:         u.Username,
		Active:           u.Active,
		LastModifiedDate: u.LastModifiedDate,
		LastModifiedBy:   u.LastModifiedBy,
	}
}

func Users(users []models.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, User(&users[i]))
	}
	return out
}

func Tutor(t *models.Tutor) dto.TutorResponse {
	resp := dto.TutorResponse{
		ID:               t.ID,
		Name:             t.Name,
		CPF:              t.CPF,
		Email:            t.Email,
		Phone:            t.Phone,
		Address:          t.Address,
		Role:             t.Role.String(),
		Active:           t.Active,
		CreatedDate:      t.CreatedDate,
		LastModifiedDate: t.LastModifiedDate,
		LastModifiedBy:   t.LastModifiedBy,
	}
	if t.BirthDate != nil {
		resp.BirthDate = dto.FormatDate(*t.BirthDate)
	}
	return resp
}

func Tutors(tutors []models.Tutor) []dto.TutorResponse {
	out := make([]dto.TutorResponse, 0, len(tutors))
	for i := range tutors {
		out = append(out, Tutor(&tutors[i]))
	}
	return out
}

// Pet expects the Tutor relation to be loaded for the owner fields; a nil
// tutor leaves them empty.
func Pet(p *models.Pet, now time.Time) dto.PetResponse {
	resp := dto.PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Sex:         p.Sex,
		BirthDate:   dto.FormatDate(p.BirthDate),
		Age:         AgeInYears(p.BirthDate, now),
		Color:       p.Color,
		Weight:      p.Weight,
		Notes:       p.Notes,
		TutorID:     p.TutorID,
		CreatedDate: p.CreatedDate,
	}
	if p.Tutor != nil {
		resp.TutorName = p.Tutor.Name
		resp.TutorCPF = p.Tutor.CPF
	}
	return resp
}

func Pets(pets []models.Pet, now time.Time) []dto.PetResponse {
	out := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, Pet(&pets[i], now))
	}
	return out
}

func Attachment(a *models.MedicalRecordAttachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:        a.ID,
		FileName:  a.FileName,
		FilePath:  a.FilePath,
		CreatedAt: a.CreatedAt,
	}
}

func MedicalRecord(m *models.MedicalRecord) dto.MedicalRecordResponse {
	resp := dto.MedicalRecordResponse{
		ID:               m.ID,
		PetID:            m.PetID,
		VeterinarianID:   m.VeterinarianID,
		ConsultationDate: dto.FormatDate(m.ConsultationDate),
		Diagnosis:        m.Diagnosis,
		Prescription:     m.Prescription,
		Notes:            m.Notes,
		Attachments:      make([]dto.AttachmentResponse, 0, len(m.Attachments)),
		LastModifiedDate: m.LastModifiedDate,
		LastModifiedBy:   m.LastModifiedBy,
		CreatedAt:        m.CreatedAt,
	}
	if m.Pet != nil {
		resp.PetName = m.Pet.Name
		tutorID := m.Pet.TutorID
		resp.TutorID = &tutorID
	}
	if m.Veterinarian != nil {
		resp.VeterinarianName = m.Veterinarian.Name
	}
	for i := range m.Attachments {
		resp.Attachments = append(resp.Attachments, Attachment(&m.Attachments[i]))
	}
	return resp
}

func MedicalRecords(records []models.MedicalRecord) []dto.MedicalRecordResponse {
	out := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, MedicalRecord(&records[i]))
	}
	return out
}
