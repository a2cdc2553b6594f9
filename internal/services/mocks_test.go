package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/google/uuid"
)

var errNotImplemented = errors.New("not implemented")

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByIDFunc          func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByUsernameFunc    func(ctx context.Context, username string) (*models.User, error)
	existsByCPFFunc       func(ctx context.Context, cpf string) (bool, error)
	existsByEmailFunc     func(ctx context.Context, email string) (bool, error)
	existsByUsernameFunc  func(ctx context.Context, username string) (bool, error)
	emailTakenByOtherFunc func(ctx context.Context, email string, id uuid.UUID) (bool, error)
	searchFunc            func(ctx context.Context, filter repository.UserFilter) ([]models.User, error)
	createFunc            func(ctx context.Context, user *models.User) error
	updateFunc            func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	if m.existsByCPFFunc != nil {
		return m.existsByCPFFunc(ctx, cpf)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFunc != nil {
		return m.existsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) EmailTakenByOther(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	if m.emailTakenByOtherFunc != nil {
		return m.emailTakenByOtherFunc(ctx, email, id)
	}
	return false, nil
}

func (m *mockUserRepository) Search(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errNotImplemented
}

// =============================================================================
// In-memory TutorRepository
// =============================================================================

// memoryTutorRepository keeps tutors in a slice so registration and search
// can be exercised end to end without a database.
type memoryTutorRepository struct {
	tutors    []models.Tutor
	createErr error
}

func (m *memoryTutorRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Tutor, error) {
	for i := range m.tutors {
		if m.tutors[i].ID == id {
			t := m.tutors[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryTutorRepository) ExistsByCPF(_ context.Context, cpf string) (bool, error) {
	for _, t := range m.tutors {
		if t.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryTutorRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, t := range m.tutors {
		if t.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryTutorRepository) EmailTakenByOther(_ context.Context, email string, id uuid.UUID) (bool, error) {
	for _, t := range m.tutors {
		if t.Email == email && t.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryTutorRepository) Search(_ context.Context, f repository.TutorFilter) ([]models.Tutor, error) {
	var out []models.Tutor
	for _, t := range m.tutors {
		if f.CPF != "" && t.CPF != f.CPF {
			continue
		}
		if f.Email != "" && t.Email != f.Email {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memoryTutorRepository) Create(_ context.Context, tutor *models.Tutor) error {
	if m.createErr != nil {
		return m.createErr
	}
	tutor.ID = uuid.New()
	m.tutors = append(m.tutors, *tutor)
	return nil
}

func (m *memoryTutorRepository) Update(_ context.Context, tutor *models.Tutor) error {
	for i := range m.tutors {
		if m.tutors[i].ID == tutor.ID {
			m.tutors[i] = *tutor
			return nil
		}
	}
	return repository.ErrNotFound
}

// =============================================================================
// Mock PetRepository
// =============================================================================

type mockPetRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	searchFunc   func(ctx context.Context, filter repository.PetFilter) ([]models.Pet, error)
	createFunc   func(ctx context.Context, pet *models.Pet) error
	updateFunc   func(ctx context.Context, pet *models.Pet) error
	deleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockPetRepository) Search(ctx context.Context, filter repository.PetFilter) ([]models.Pet, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, errNotImplemented
}

func (m *mockPetRepository) Create(ctx context.Context, pet *models.Pet) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, pet)
	}
	return errNotImplemented
}

func (m *mockPetRepository) Update(ctx context.Context, pet *models.Pet) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, pet)
	}
	return errNotImplemented
}

func (m *mockPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

// =============================================================================
// In-memory MedicalRecordRepository
// =============================================================================

type memoryMedicalRecordRepository struct {
	records   map[uuid.UUID]*models.MedicalRecord
	updateErr error
	creates   int
}

func newMemoryMedicalRecordRepository() *memoryMedicalRecordRepository {
	return &memoryMedicalRecordRepository{records: map[uuid.UUID]*models.MedicalRecord{}}
}

func (m *memoryMedicalRecordRepository) FindByID(_ context.Context, id uuid.UUID) (*models.MedicalRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *r
	copied.Attachments = append([]models.MedicalRecordAttachment(nil), r.Attachments...)
	return &copied, nil
}

func (m *memoryMedicalRecordRepository) Search(_ context.Context, f repository.MedicalRecordFilter) ([]models.MedicalRecord, error) {
	var out []models.MedicalRecord
	for _, r := range m.records {
		if r.PetID == f.PetID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryMedicalRecordRepository) Create(_ context.Context, record *models.MedicalRecord) error {
	m.creates++
	record.ID = uuid.New()
	for i := range record.Attachments {
		record.Attachments[i].ID = uuid.New()
		record.Attachments[i].MedicalRecordID = record.ID
	}
	stored := *record
	stored.Attachments = append([]models.MedicalRecordAttachment(nil), record.Attachments...)
	m.records[record.ID] = &stored
	return nil
}

// Update mirrors the transactional repository: on error nothing changes.
func (m *memoryMedicalRecordRepository) Update(_ context.Context, id uuid.UUID, c repository.MedicalRecordChanges) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.records[id]
	if !ok {
		return repository.ErrNotFound
	}
	if c.Diagnosis != nil {
		r.Diagnosis = *c.Diagnosis
	}
	if c.Prescription != nil {
		r.Prescription = *c.Prescription
	}
	if c.Notes != nil {
		r.Notes = *c.Notes
	}
	modified := c.LastModifiedDate
	r.LastModifiedDate = &modified
	r.LastModifiedBy = c.LastModifiedBy
	for _, a := range c.NewAttachments {
		a.ID = uuid.New()
		a.MedicalRecordID = id
		r.Attachments = append(r.Attachments, a)
	}
	return nil
}

func (m *memoryMedicalRecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// =============================================================================
// Fake FileStore and Notifier
// =============================================================================

type fakeFileStore struct {
	saved   []string
	saveErr error
	archive func(names []string) ([]byte, int, error)
}

func (f *fakeFileStore) SaveFile(fh *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if fh.Size == 0 {
		return "", nil
	}
	name := uuid.NewString() + "_" + fh.Filename
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeFileStore) Archive(names []string) ([]byte, int, error) {
	if f.archive != nil {
		return f.archive(names)
	}
	return []byte("zip"), len(names), nil
}

type recordingNotifier struct {
	staff  []*models.User
	tutors []*models.Tutor
}

func (n *recordingNotifier) StaffRegistered(_ context.Context, user *models.User) {
	n.staff = append(n.staff, user)
}

func (n *recordingNotifier) TutorRegistered(_ context.Context, tutor *models.Tutor) {
	n.tutors = append(n.tutors, tutor)
}
