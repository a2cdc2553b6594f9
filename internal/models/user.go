package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a clinic staff member (attendant, veterinarian or administrator).
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string     `gorm:"size:150;not null" json:"name"`
	CPF              string     `gorm:"size:11;not null;uniqueIndex:idx_users_cpf" json:"cpf"`
	Email            string     `gorm:"size:100;not null;uniqueIndex:idx_users_email" json:"email"`
	Phone            string     `gorm:"size:15;not null" json:"phone"`
	Role             Role       `gorm:"size:20;not null;index" json:"role"`
	AdmissionDate    time.Time  `gorm:"type:date;not null" json:"admissionDate"`
	Username         string     `gorm:"size:30;not null;uniqueIndex:idx_users_username" json:"username"`
	Password         string     `gorm:"size:100;not null" json:"-"`
	Active           bool       `gorm:"not null;default:true" json:"active"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   *string    `gorm:"size:64" json:"lastModifiedBy,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
