package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pet belongs to exactly one tutor. Age is derived from BirthDate and never stored.
type Pet struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;index" json:"name"`
	Species     string    `gorm:"size:50;not null" json:"species"`
	Breed       string    `gorm:"size:100;not null" json:"breed"`
	Sex         string    `gorm:"size:15;not null" json:"sex"`
	BirthDate   time.Time `gorm:"type:date;not null" json:"birthDate"`
	Color       string    `gorm:"size:50;not null" json:"color"`
	Weight      float64   `gorm:"not null" json:"weight"`
	Notes       string    `gorm:"size:500" json:"notes"`
	TutorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"tutorId"`
	Tutor       *Tutor    `gorm:"foreignKey:TutorID" json:"tutor,omitempty"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"createdDate"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
