package dto

import (
	"time"

	"github.com/google/uuid"
)

type TutorRequest struct {
	Name      string `json:"name" validate:"required,max=150"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"required,phone"`
	Address   string `json:"address" validate:"required,max=100"`
	BirthDate string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Password  string `json:"password" validate:"required,min=8,max=20,password"`
}

type TutorUpdateRequest struct {
	Name      string `json:"name" validate:"omitempty,max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Address   string `json:"address" validate:"omitempty,max=100"`
	BirthDate string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Password  string `json:"password" validate:"omitempty,min=8,max=20,password"`
}

type TutorResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	CPF              string     `json:"cpf"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	Role             string     `json:"role"`
	BirthDate        string     `json:"birthDate,omitempty"`
	Active           bool       `json:"active"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   *string    `json:"lastModifiedBy,omitempty"`
}

type TutorSearchQuery struct {
	Name    string `query:"name"`
	CPF     string `query:"cpf"`
	Email   string `query:"email"`
	Phone   string `query:"phone"`
	Active  string `query:"active" validate:"omitempty,boolean"`
	OrderBy string `query:"orderBy"`
}
