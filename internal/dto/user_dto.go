package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRequest registers a staff member. Role must be one of the staff roles.
type UserRequest struct {
	Name          string `json:"name" validate:"required,max=150"`
	CPF           string `json:"cpf" validate:"required,cpf"`
	Email         string `json:"email" validate:"required,email,max=100"`
	Phone         string `json:"phone" validate:"required,phone"`
	Role          string `json:"role" validate:"required"`
	AdmissionDate string `json:"admissionDate" validate:"required,datetime=2006-01-02"`
	Username      string `json:"username" validate:"required,max=30"`
	Password      string `json:"password" validate:"required,min=8,max=20,password"`
}

// UserUpdateRequest changes a staff member. Empty fields are left as they are.
type UserUpdateRequest struct {
	Email         string `json:"email" validate:"omitempty,email,max=100"`
	Phone         string `json:"phone" validate:"omitempty,phone"`
	Role          string `json:"role"`
	AdmissionDate string `json:"admissionDate" validate:"omitempty,datetime=2006-01-02"`
	Password      string `json:"password" validate:"omitempty,min=8,max=20,password"`
}

type UserResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	CPF              string     `json:"cpf"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Role             string     `json:"role"`
	AdmissionDate    string     `json:"admissionDate"`
	Username         string     `json:"username"`
	Active           bool       `json:"active"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   *string    `json:"lastModifiedBy,omitempty"`
}

// UserSearchQuery is bound from the query string of GET /users/search.
type UserSearchQuery struct {
	Name           string `query:"name"`
	CPF            string `query:"cpf"`
	Role           string `query:"role"`
	AdmissionStart string `query:"admissionStart" validate:"omitempty,datetime=2006-01-02"`
	AdmissionEnd   string `query:"admissionEnd" validate:"omitempty,datetime=2006-01-02"`
	Active         string `query:"active" validate:"omitempty,boolean"`
	OrderBy        string `query:"orderBy"`
}
