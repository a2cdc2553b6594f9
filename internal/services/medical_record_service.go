package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/mapper"
	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/google/uuid"
)

// FileStore is the part of the attachment storage the record service needs.
type FileStore interface {
	SaveFile(fh *multipart.FileHeader) (string, error)
	Archive(names []string) ([]byte, int, error)
}

type MedicalRecordService struct {
	records repository.MedicalRecordRepository
	pets    repository.PetRepository
	users   repository.UserRepository
	files   FileStore
	now     func() time.Time
}

func NewMedicalRecordService(
	records repository.MedicalRecordRepository,
	pets repository.PetRepository,
	users repository.UserRepository,
	files FileStore,
) *MedicalRecordService {
	return &MedicalRecordService{records: records, pets: pets, users: users, files: files, now: time.Now}
}

// Create stores the uploaded files and then persists the record together
// with one attachment row per stored file. Only veterinarians may create.
func (s *MedicalRecordService) Create(ctx context.Context, req *dto.MedicalRecordRequest, files []*multipart.FileHeader) (*dto.MedicalRecordResponse, error) {
	vetID, err := parseID(req.VeterinarianID, "veterinarianId")
	if err != nil {
		return nil, err
	}
	petID, err := parseID(req.PetID, "petId")
	if err != nil {
		return nil, err
	}
	consultation, err := dto.ParseDate(req.ConsultationDate)
	if err != nil {
		return nil, invalid("%v", err)
	}

	vet, err := s.users.FindByID(ctx, vetID)
	if err != nil {
		return nil, notFound(err, ErrVeterinarianNotFound)
	}
	if vet.Role != models.RoleVeterinarian {
		slog.WarnContext(ctx, "medical record creation denied", "entity", "medical_record", "actor_id", vetID.String(), "role", vet.Role.String())
		return nil, ErrAccessDenied
	}
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, notFound(err, ErrPetNotFound)
	}

	attachments, err := s.store(files)
	if err != nil {
		return nil, err
	}

	record := models.MedicalRecord{
		PetID:            pet.ID,
		VeterinarianID:   vet.ID,
		ConsultationDate: consultation,
		Diagnosis:        req.Diagnosis,
		Prescription:     req.Prescription,
		Notes:            req.Notes,
		Attachments:      attachments,
	}
	if err := s.records.Create(ctx, &record); err != nil {
		return nil, err
	}
	record.Pet = pet
	record.Veterinarian = vet

	slog.InfoContext(ctx, "medical record created", "entity", "medical_record", "entity_id", record.ID.String(),
		"actor_id", vetID.String(), "files", len(attachments))
	resp := mapper.MedicalRecord(&record)
	return &resp, nil
}

// store saves each non-empty upload and returns the attachment rows for them.
func (s *MedicalRecordService) store(files []*multipart.FileHeader) ([]models.MedicalRecordAttachment, error) {
	attachments := make([]models.MedicalRecordAttachment, 0, len(files))
	for _, fh := range files {
		name, err := s.files.SaveFile(fh)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}
		attachments = append(attachments, models.MedicalRecordAttachment{
			FileName: fh.Filename,
			FilePath: name,
		})
	}
	return attachments, nil
}

// Update applies the non-nil text fields and appends the new files. The
// record change and the new attachment rows commit together.
func (s *MedicalRecordService) Update(ctx context.Context, id uuid.UUID, req *dto.MedicalRecordUpdateRequest, files []*multipart.FileHeader, actor string) (*dto.MedicalRecordResponse, error) {
	if _, err := s.records.FindByID(ctx, id); err != nil {
		return nil, notFound(err, ErrMedicalRecordNotFound)
	}

	attachments, err := s.store(files)
	if err != nil {
		return nil, err
	}

	modified, by := stamp(s.now(), actor)
	err = s.records.Update(ctx, id, repository.MedicalRecordChanges{
		Diagnosis:        req.Diagnosis,
		Prescription:     req.Prescription,
		Notes:            req.Notes,
		LastModifiedDate: *modified,
		LastModifiedBy:   by,
		NewAttachments:   attachments,
	})
	if err != nil {
		return nil, notFound(err, ErrMedicalRecordNotFound)
	}

	slog.InfoContext(ctx, "medical record updated", "entity", "medical_record", "entity_id", id.String(),
		"actor_id", actor, "files", len(attachments))
	return s.Get(ctx, id)
}

func (s *MedicalRecordService) Get(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrMedicalRecordNotFound)
	}
	resp := mapper.MedicalRecord(record)
	return &resp, nil
}

func (s *MedicalRecordService) Search(ctx context.Context, q *dto.MedicalRecordSearchQuery) ([]dto.MedicalRecordResponse, error) {
	petID, err := parseID(q.PetID, "petId")
	if err != nil {
		return nil, err
	}
	filter := repository.MedicalRecordFilter{
		PetID:            petID,
		DiagnosisKeyword: q.DiagnosisKeyword,
	}
	if q.VeterinarianID != "" {
		vetID, err := parseID(q.VeterinarianID, "veterinarianId")
		if err != nil {
			return nil, err
		}
		filter.VeterinarianID = &vetID
	}
	if filter.StartDate, err = dto.ParseOptionalDate(q.StartDate); err != nil {
		return nil, invalid("%v", err)
	}
	if filter.EndDate, err = dto.ParseOptionalDate(q.EndDate); err != nil {
		return nil, invalid("%v", err)
	}

	records, err := s.records.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.MedicalRecords(records), nil
}

// Attachments zips every attachment of the record that is still on disk.
// It returns nil when there is nothing to send.
func (s *MedicalRecordService) Attachments(ctx context.Context, id uuid.UUID) ([]byte, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrMedicalRecordNotFound)
	}
	if len(record.Attachments) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(record.Attachments))
	for _, a := range record.Attachments {
		names = append(names, a.FilePath)
	}
	data, written, err := s.files.Archive(names)
	if err != nil {
		return nil, fmt.Errorf("failed to archive attachments of medical record %s: %w", id, err)
	}
	if written == 0 {
		return nil, nil
	}
	return data, nil
}

func (s *MedicalRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return notFound(err, ErrMedicalRecordNotFound)
	}
	slog.InfoContext(ctx, "medical record deleted", "entity", "medical_record", "entity_id", id.String())
	return nil
}
