package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shinystarlight00/papi2/internal/app/models"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/pkg/apperrors"
)

// fakeExpertStore records calls and returns canned results.
type fakeExpertStore struct {
	listResult []*models.Expert
	getResult  *models.Expert
	err        error

	createCalled bool
	updateCalled bool
	deleteCalled bool

	lastChapterID int64
	lastRecno     int64
	lastFields    *dto.ExpertFields
}

func (f *fakeExpertStore) ListByChapter(ctx context.Context, chapterID int64) ([]*models.Expert, error) {
	f.lastChapterID = chapterID
	return f.listResult, f.err
}

func (f *fakeExpertStore) GetByID(ctx context.Context, chapterID, recno int64) (*models.Expert, error) {
	f.lastChapterID, f.lastRecno = chapterID, recno
	return f.getResult, f.err
}

func (f *fakeExpertStore) Create(ctx context.Context, chapterID int64, fields *dto.ExpertFields) error {
	f.createCalled = true
	f.lastChapterID, f.lastFields = chapterID, fields
	return f.err
}

func (f *fakeExpertStore) Update(ctx context.Context, chapterID, recno int64, fields *dto.ExpertFields) error {
	f.updateCalled = true
	f.lastChapterID, f.lastRecno, f.lastFields = chapterID, recno, fields
	return f.err
}

func (f *fakeExpertStore) Delete(ctx context.Context, chapterID, recno int64) error {
	f.deleteCalled = true
	f.lastChapterID, f.lastRecno = chapterID, recno
	return f.err
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func i64Ptr(v int64) *int64 { return &v }

func TestListExperts(t *testing.T) {
	store := &fakeExpertStore{
		listResult: []*models.Expert{{ID: 1, ChapterID: 7, Name: "Dr. Smith"}},
	}
	svc := NewExpertService(store)

	experts, err := svc.ListExperts(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListExperts returned error: %v", err)
	}
	if len(experts) != 1 || experts[0].Name != "Dr. Smith" {
		t.Errorf("unexpected result: %+v", experts)
	}
	if store.lastChapterID != 7 {
		t.Errorf("expected chapterID 7, got %d", store.lastChapterID)
	}
}

func TestListExpertsEmptyChapter(t *testing.T) {
	store := &fakeExpertStore{listResult: []*models.Expert{}}
	svc := NewExpertService(store)

	experts, err := svc.ListExperts(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListExperts returned error: %v", err)
	}
	if len(experts) != 0 {
		t.Errorf("expected empty slice, got %+v", experts)
	}
}

func TestListExpertsInvalidChapterID(t *testing.T) {
	svc := NewExpertService(&fakeExpertStore{})

	_, err := svc.ListExperts(context.Background(), 0)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestReadExpertNotFound(t *testing.T) {
	store := &fakeExpertStore{err: apperrors.ErrNotFound}
	svc := NewExpertService(store)

	_, err := svc.ReadExpert(context.Background(), 7, 99)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateExpertRequiresName(t *testing.T) {
	store := &fakeExpertStore{}
	svc := NewExpertService(store)

	err := svc.CreateExpert(context.Background(), 7, &dto.ExpertFields{Price: f64Ptr(10)})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
	if store.createCalled {
		t.Error("store should not be reached when name is missing")
	}
}

func TestCreateExpert(t *testing.T) {
	store := &fakeExpertStore{}
	svc := NewExpertService(store)

	fields := &dto.ExpertFields{
		Name:  strPtr("HelpBot"),
		Type:  strPtr("bot"),
		Price: f64Ptr(0),
	}
	if err := svc.CreateExpert(context.Background(), 7, fields); err != nil {
		t.Fatalf("CreateExpert returned error: %v", err)
	}
	if !store.createCalled {
		t.Fatal("expected store.Create to be called")
	}
	if store.lastChapterID != 7 {
		t.Errorf("expected chapterID 7, got %d", store.lastChapterID)
	}
}

func TestCreateExpertFieldValidation(t *testing.T) {
	cases := []struct {
		name   string
		fields *dto.ExpertFields
	}{
		{"empty name", &dto.ExpertFields{Name: strPtr("  ")}},
		{"negative price", &dto.ExpertFields{Name: strPtr("x"), Price: f64Ptr(-1)}},
		{"ranking above range", &dto.ExpertFields{Name: strPtr("x"), Ranking: f64Ptr(5.5)}},
		{"negative jobs", &dto.ExpertFields{Name: strPtr("x"), Jobs: i64Ptr(-2)}},
		{"bad online value", &dto.ExpertFields{Name: strPtr("x"), Online: strPtr("away")}},
		{"bad type value", &dto.ExpertFields{Name: strPtr("x"), Type: strPtr("cyborg")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeExpertStore{}
			svc := NewExpertService(store)

			err := svc.CreateExpert(context.Background(), 7, tc.fields)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected ErrValidationFailed, got %v", err)
			}
			if store.createCalled {
				t.Error("store should not be reached on invalid input")
			}
		})
	}
}

func TestUpdateExpertNoFields(t *testing.T) {
	store := &fakeExpertStore{}
	svc := NewExpertService(store)

	err := svc.UpdateExpert(context.Background(), 7, 1, &dto.ExpertFields{})
	if !errors.Is(err, apperrors.ErrNoFieldsToUpdate) {
		t.Errorf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if store.updateCalled {
		t.Error("store must not be reached for a no-op update")
	}
}

func TestUpdateExpert(t *testing.T) {
	store := &fakeExpertStore{}
	svc := NewExpertService(store)

	fields := &dto.ExpertFields{Ranking: f64Ptr(4.5)}
	if err := svc.UpdateExpert(context.Background(), 7, 3, fields); err != nil {
		t.Fatalf("UpdateExpert returned error: %v", err)
	}
	if !store.updateCalled {
		t.Fatal("expected store.Update to be called")
	}
	if store.lastChapterID != 7 || store.lastRecno != 3 {
		t.Errorf("expected key (7,3), got (%d,%d)", store.lastChapterID, store.lastRecno)
	}
}

func TestUpdateExpertNotFound(t *testing.T) {
	store := &fakeExpertStore{err: apperrors.ErrNotFound}
	svc := NewExpertService(store)

	err := svc.UpdateExpert(context.Background(), 7, 404, &dto.ExpertFields{Name: strPtr("x")})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteExpertNotFound(t *testing.T) {
	store := &fakeExpertStore{err: apperrors.ErrNotFound}
	svc := NewExpertService(store)

	err := svc.DeleteExpert(context.Background(), 7, 404)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteExpert(t *testing.T) {
	store := &fakeExpertStore{}
	svc := NewExpertService(store)

	if err := svc.DeleteExpert(context.Background(), 7, 3); err != nil {
		t.Fatalf("DeleteExpert returned error: %v", err)
	}
	if !store.deleteCalled {
		t.Fatal("expected store.Delete to be called")
	}
}
