package repository

import (
	"strings"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// Sort keys accepted by the search endpoints. Anything else falls back to
// the entity's default ordering.
const (
	SortByName    = "name"
	SortByDate    = "date"
	SortByCreated = "created"
	SortByOwner   = "owner"
)

type UserFilter struct {
	Name           string
	CPF            string
	Role           models.Role
	AdmissionStart *time.Time
	AdmissionEnd   *time.Time
	Active         *bool
	OrderBy        string
}

type TutorFilter struct {
	Name    string
	CPF     string
	Email   string
	Phone   string
	Active  *bool
	OrderBy string
}

type PetFilter struct {
	Name      string
	Species   string
	Breed     string
	OwnerName string
	OwnerCPF  string
	OrderBy   string
}

type MedicalRecordFilter struct {
	PetID            uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
	VeterinarianID   *uuid.UUID
	DiagnosisKeyword string
}

func userOrder(key string) clause.OrderByColumn {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortByDate:
		return clause.OrderByColumn{Column: clause.Column{Name: "admission_date"}}
	default:
		return clause.OrderByColumn{Column: clause.Column{Name: "name"}}
	}
}

func tutorOrder(key string) clause.OrderByColumn {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortByCreated:
		return clause.OrderByColumn{Column: clause.Column{Name: "created_date"}, Desc: true}
	default:
		return clause.OrderByColumn{Column: clause.Column{Name: "name"}}
	}
}

func petOrder(key string) clause.OrderByColumn {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortByOwner:
		return clause.OrderByColumn{Column: clause.Column{Table: "Tutor", Name: "name"}}
	default:
		return clause.OrderByColumn{Column: clause.Column{Table: "pets", Name: "name"}}
	}
}
