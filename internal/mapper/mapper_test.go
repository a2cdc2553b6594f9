package mapper

import (
	"testing"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInYears(t *testing.T) {
	now := date(2024, 6, 15)
	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday passed", date(2020, 1, 10), 4},
		{"birthday today", date(2020, 6, 15), 4},
		{"birthday tomorrow", date(2020, 6, 16), 3},
		{"born this year", date(2024, 2, 1), 0},
		{"future birth", date(2025, 1, 1), 0},
		{"zero birth", time.Time{}, 0},
	}
	for _, tt := range tests {
		if got := AgeInYears(tt.birth, now); got != tt.want {
			t.Errorf("%s: AgeInYears = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestPetCarriesOwner(t *testing.T) {
	tutorID := uuid.New()
	pet := models.Pet{
		ID:        uuid.New(),
		Name:      "Rex",
		BirthDate: date(2019, 3, 1),
		TutorID:   tutorID,
		Tutor:     &models.Tutor{ID: tutorID, Name: "Maria Silva", CPF: "12345678901"},
	}

	resp := Pet(&pet, date(2024, 3, 2))
	if resp.Age != 5 {
		t.Errorf("Age = %d, want 5", resp.Age)
	}
	if resp.TutorName != "Maria Silva" || resp.TutorCPF != "12345678901" {
		t.Errorf("owner fields = %q/%q", resp.TutorName, resp.TutorCPF)
	}
	if resp.BirthDate != "2019-03-01" {
		t.Errorf("BirthDate = %q", resp.BirthDate)
	}

	pet.Tutor = nil
	if resp := Pet(&pet, date(2024, 3, 2)); resp.TutorName != "" || resp.TutorID != tutorID {
		t.Errorf("nil tutor should leave name empty and keep id, got %+v", resp)
	}
}

func TestMedicalRecordResponse(t *testing.T) {
	tutorID := uuid.New()
	record := models.MedicalRecord{
		ID:               uuid.New(),
		ConsultationDate: date(2024, 5, 20),
		Pet:              &models.Pet{Name: "Rex", TutorID: tutorID},
		Veterinarian:     &models.User{Name: "Dr. Ana"},
		Attachments: []models.MedicalRecordAttachment{
			{FileName: "xray.png", FilePath: "a_xray.png"},
			{FileName: "blood.pdf", FilePath: "b_blood.pdf"},
		},
	}

	resp := MedicalRecord(&record)
	if resp.VeterinarianName != "Dr. Ana" || resp.PetName != "Rex" {
		t.Errorf("names = %q/%q", resp.VeterinarianName, resp.PetName)
	}
	if resp.TutorID == nil || *resp.TutorID != tutorID {
		t.Errorf("TutorID = %v, want %s", resp.TutorID, tutorID)
	}
	if len(resp.Attachments) != 2 || resp.Attachments[1].FileName != "blood.pdf" {
		t.Errorf("attachments = %+v", resp.Attachments)
	}
	if resp.ConsultationDate != "2024-05-20" {
		t.Errorf("ConsultationDate = %q", resp.ConsultationDate)
	}

	empty := MedicalRecord(&models.MedicalRecord{})
	if empty.Attachments == nil {
		t.Error("attachments should serialize as an empty list, not null")
	}
}
