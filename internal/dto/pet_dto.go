package dto

import (
	"time"

	"github.com/google/uuid"
)

type PetRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Species   string  `json:"species" validate:"required,max=50"`
	Breed     string  `json:"breed" validate:"required,max=100"`
	Sex       string  `json:"sex" validate:"required,max=15"`
	BirthDate string  `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Color     string  `json:"color" validate:"required,max=50"`
	Weight    float64 `json:"weight" validate:"required,gt=0"`
	Notes     string  `json:"notes" validate:"max=500"`
}

// PetUpdateRequest only touches weight, color and notes. A nil weight or
// notes and a blank color keep the stored value.
type PetUpdateRequest struct {
	Weight *float64 `json:"weight" validate:"omitempty,gt=0"`
	Color  *string  `json:"color" validate:"omitempty,max=50"`
	Notes  *string  `json:"notes" validate:"omitempty,max=500"`
}

type PetResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Sex         string    `json:"sex"`
	BirthDate   string    `json:"birthDate"`
	Age         int       `json:"age"`
	Color       string    `json:"color"`
	Weight      float64   `json:"weight"`
	Notes       string    `json:"notes"`
	TutorID     uuid.UUID `json:"tutorId"`
	TutorName   string    `json:"tutorName"`
	TutorCPF    string    `json:"tutorCpf"`
	CreatedDate time.Time `json:"createdDate"`
}

type PetSearchQuery struct {
	Name      string `query:"name"`
	Species   string `query:"species"`
	Breed     string `query:"breed"`
	OwnerName string `query:"ownerName"`
	OwnerCPF  string `query:"ownerCpf"`
	OrderBy   string `query:"orderBy"`
}
