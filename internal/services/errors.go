package services

import (
	"errors"
	"fmt"

	"github.com/clinicproject/vetclinic-backend/internal/repository"
)

var (
	ErrCPFTaken              = errors.New("cpf already registered")
	ErrEmailTaken            = errors.New("email already registered")
	ErrUsernameTaken         = errors.New("username already registered")
	ErrFutureAdmission       = errors.New("admission date cannot be in the future")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidInput          = errors.New("invalid input")
	ErrAdminDeletion         = errors.New("administrators cannot be deleted")
	ErrUserNotFound          = errors.New("user not found")
	ErrTutorNotFound         = errors.New("tutor not found")
	ErrPetNotFound           = errors.New("pet not found")
	ErrVeterinarianNotFound  = errors.New("veterinarian not found")
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrAccessDenied          = errors.New("access denied: only veterinarians can create medical records")
	ErrInvalidCredentials    = errors.New("invalid username or password")
)

// duplicate maps a unique index violation caught by the database to the
// sentinel for the conflicting field. Other errors pass through.
func duplicate(err error) error {
	var dup *repository.DuplicateKeyError
	if !errors.As(err, &dup) {
		return err
	}
	switch dup.Field {
	case "cpf":
		return ErrCPFTaken
	case "email":
		return ErrEmailTaken
	case "username":
		return ErrUsernameTaken
	}
	return err
}

// notFound replaces repository.ErrNotFound with the entity sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
