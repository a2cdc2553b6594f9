package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tutor is a pet owner account.
type Tutor struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string     `gorm:"size:150;not null;index" json:"name"`
	CPF              string     `gorm:"size:11;not null;uniqueIndex:idx_tutors_cpf" json:"cpf"`
	Email            string     `gorm:"size:100;not null;uniqueIndex:idx_tutors_email" json:"email"`
	Phone            string     `gorm:"size:15;not null" json:"phone"`
	Address          string     `gorm:"size:100;not null" json:"address"`
	Role             Role       `gorm:"size:20;not null;default:'TUTOR'" json:"role"`
	BirthDate        *time.Time `gorm:"type:date" json:"birthDate,omitempty"`
	Password         string     `gorm:"size:100;not null" json:"-"`
	Active           bool       `gorm:"not null;default:true" json:"active"`
	CreatedDate      time.Time  `gorm:"autoCreateTime" json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
	LastModifiedBy   *string    `gorm:"size:64" json:"lastModifiedBy,omitempty"`
}

func (t *Tutor) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
