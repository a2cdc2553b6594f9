package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/dto"
	"github.com/clinicproject/vetclinic-backend/internal/models"
	"github.com/clinicproject/vetclinic-backend/internal/repository"
	"github.com/google/uuid"
)

type recordFixture struct {
	svc     *MedicalRecordService
	records *memoryMedicalRecordRepository
	files   *fakeFileStore
	vet     *models.User
	pet     *models.Pet
}

func newRecordFixture(t *testing.T, vetRole models.Role) *recordFixture {
	t.Helper()
	vet := &models.User{ID: uuid.New(), Name: "Dr. Ana", Role: vetRole}
	pet := &models.Pet{ID: uuid.New(), Name: "Rex", TutorID: uuid.New()}

	users := &mockUserRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			if id == vet.ID {
				return vet, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	pets := &mockPetRepository{
		findByIDFunc: func(_ context.Context, id uuid.UUID) (*models.Pet, error) {
			if id == pet.ID {
				return pet, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	records := newMemoryMedicalRecordRepository()
	files := &fakeFileStore{}

	svc := NewMedicalRecordService(records, pets, users, files)
	svc.now = func() time.Time { return fixedNow }
	return &recordFixture{svc: svc, records: records, files: files, vet: vet, pet: pet}
}

func (f *recordFixture) request() *dto.MedicalRecordRequest {
	return &dto.MedicalRecordRequest{
		PetID:            f.pet.ID.String(),
		VeterinarianID:   f.vet.ID.String(),
		ConsultationDate: "2024-06-10",
		Diagnosis:        "Otitis",
		Prescription:     "Drops twice a day",
	}
}

func upload(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestMedicalRecordCreate_NonVeterinarianDenied(t *testing.T) {
	f := newRecordFixture(t, models.RoleAttendant)

	_, err := f.svc.Create(context.Background(), f.request(), []*multipart.FileHeader{upload("xray.png", 10)})
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("Create() error = %v, want %v", err, ErrAccessDenied)
	}
	if f.records.creates != 0 || len(f.records.records) != 0 {
		t.Error("no record should be created")
	}
	if len(f.files.saved) != 0 {
		t.Error("no file should be stored")
	}
}

func TestMedicalRecordCreate_MissingReferences(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)

	req := f.request()
	req.VeterinarianID = uuid.NewString()
	if _, err := f.svc.Create(context.Background(), req, nil); !errors.Is(err, ErrVeterinarianNotFound) {
		t.Errorf("unknown vet error = %v, want %v", err, ErrVeterinarianNotFound)
	}

	req = f.request()
	req.PetID = uuid.NewString()
	if _, err := f.svc.Create(context.Background(), req, nil); !errors.Is(err, ErrPetNotFound) {
		t.Errorf("unknown pet error = %v, want %v", err, ErrPetNotFound)
	}

	req = f.request()
	req.PetID = "not-a-uuid"
	if _, err := f.svc.Create(context.Background(), req, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("malformed id error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestMedicalRecordCreate_SkipsEmptyFiles(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)

	resp, err := f.svc.Create(context.Background(), f.request(), []*multipart.FileHeader{
		upload("xray.png", 10), upload("empty.txt", 0), upload("blood.pdf", 20),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(resp.Attachments) != 2 {
		t.Fatalf("attachments = %d, want 2", len(resp.Attachments))
	}
	if resp.Attachments[0].FileName != "xray.png" || resp.Attachments[0].FilePath != f.files.saved[0] {
		t.Errorf("attachment = %+v", resp.Attachments[0])
	}
	if resp.VeterinarianName != "Dr. Ana" || resp.TutorID == nil || *resp.TutorID != f.pet.TutorID {
		t.Errorf("response = %+v", resp)
	}
}

// Two files at creation, one more on update: three entries in the archive and
// the first two untouched.
func TestMedicalRecordUpdate_AppendsAttachments(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.request(), []*multipart.FileHeader{upload("a.png", 1), upload("b.png", 1)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var archived []string
	f.files.archive = func(names []string) ([]byte, int, error) {
		archived = names
		return []byte("zip"), len(names), nil
	}

	data, err := f.svc.Attachments(ctx, created.ID)
	if err != nil || data == nil || len(archived) != 2 {
		t.Fatalf("archive before update: data=%v entries=%d err=%v", data, len(archived), err)
	}

	diagnosis := "Otitis externa"
	updated, err := f.svc.Update(ctx, created.ID, &dto.MedicalRecordUpdateRequest{Diagnosis: &diagnosis},
		[]*multipart.FileHeader{upload("c.png", 1)}, "vet-7")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Diagnosis != diagnosis || updated.Prescription != "Drops twice a day" {
		t.Errorf("fields = %q / %q", updated.Diagnosis, updated.Prescription)
	}
	if updated.LastModifiedBy == nil || *updated.LastModifiedBy != "vet-7" {
		t.Errorf("LastModifiedBy = %v", updated.LastModifiedBy)
	}
	if len(updated.Attachments) != 3 {
		t.Fatalf("attachments = %d, want 3", len(updated.Attachments))
	}
	for i := 0; i < 2; i++ {
		if updated.Attachments[i] != created.Attachments[i] {
			t.Errorf("attachment %d changed: %+v -> %+v", i, created.Attachments[i], updated.Attachments[i])
		}
	}

	if _, err := f.svc.Attachments(ctx, created.ID); err != nil || len(archived) != 3 {
		t.Errorf("archive after update has %d entries, err=%v", len(archived), err)
	}
}

func TestMedicalRecordUpdate_FailureLeavesAttachments(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.request(), []*multipart.FileHeader{upload("a.png", 1)})
	if err != nil {
		t.Fatal(err)
	}
	f.records.updateErr = errors.New("tx aborted")

	_, err = f.svc.Update(ctx, created.ID, &dto.MedicalRecordUpdateRequest{}, []*multipart.FileHeader{upload("b.png", 1)}, "")
	if err == nil {
		t.Fatal("Update() should fail")
	}
	got, _ := f.svc.Get(ctx, created.ID)
	if len(got.Attachments) != 1 {
		t.Errorf("attachments = %d, want 1", len(got.Attachments))
	}
}

func TestMedicalRecordUpdate_UnknownRecord(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)
	_, err := f.svc.Update(context.Background(), uuid.New(), &dto.MedicalRecordUpdateRequest{}, []*multipart.FileHeader{upload("a.png", 1)}, "")
	if !errors.Is(err, ErrMedicalRecordNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrMedicalRecordNotFound)
	}
	if len(f.files.saved) != 0 {
		t.Error("files should not be stored for an unknown record")
	}
}

func TestMedicalRecordAttachments_Empty(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.request(), nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := f.svc.Attachments(ctx, created.ID)
	if err != nil || data != nil {
		t.Errorf("no attachments = (%v, %v), want (nil, nil)", data, err)
	}

	withFile, _ := f.svc.Create(ctx, f.request(), []*multipart.FileHeader{upload("a.png", 1)})
	f.files.archive = func([]string) ([]byte, int, error) { return []byte("empty-zip"), 0, nil }
	data, err = f.svc.Attachments(ctx, withFile.ID)
	if err != nil || data != nil {
		t.Errorf("all files missing = (%v, %v), want (nil, nil)", data, err)
	}

	if _, err := f.svc.Attachments(ctx, uuid.New()); !errors.Is(err, ErrMedicalRecordNotFound) {
		t.Errorf("unknown record error = %v", err)
	}
}

func TestMedicalRecordSearch(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, f.request(), nil); err != nil {
		t.Fatal(err)
	}

	found, err := f.svc.Search(ctx, &dto.MedicalRecordSearchQuery{PetID: f.pet.ID.String()})
	if err != nil || len(found) != 1 {
		t.Errorf("Search() = %d results, err=%v", len(found), err)
	}
	if _, err := f.svc.Search(ctx, &dto.MedicalRecordSearchQuery{PetID: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad petId error = %v", err)
	}
	if _, err := f.svc.Search(ctx, &dto.MedicalRecordSearchQuery{PetID: f.pet.ID.String(), StartDate: "06/01/2024"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad startDate error = %v", err)
	}
}

func TestMedicalRecordDelete(t *testing.T) {
	f := newRecordFixture(t, models.RoleVeterinarian)
	ctx := context.Background()

	created, _ := f.svc.Create(ctx, f.request(), nil)
	if err := f.svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.svc.Delete(ctx, created.ID); !errors.Is(err, ErrMedicalRecordNotFound) {
		t.Errorf("second Delete() error = %v", err)
	}
}
