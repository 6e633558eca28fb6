package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shinystarlight00/papi2/internal/app/models"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/pkg/apperrors"
	"github.com/shinystarlight00/papi2/internal/pkg/sqlbuild"
)

// ChapterStore abstracts chapter storage access for the service layer.
// *repositories.ChapterRepository satisfies it.
type ChapterStore interface {
	Create(ctx context.Context, fields *dto.ChapterFields) (int64, error)
	GetByID(ctx context.Context, chapterID int64) (*models.Chapter, error)
	List(ctx context.Context, chapterID *int64) ([]*models.Chapter, error)
	Update(ctx context.Context, chapterID int64, fields *dto.ChapterFields) error
	Delete(ctx context.Context, chapterID int64) error
}

// ChapterService defines the chapter operations exposed to the HTTP layer.
type ChapterService interface {
	CreateChapter(ctx context.Context, fields *dto.ChapterFields) (int64, error)
	GetChapter(ctx context.Context, chapterID int64) (*models.Chapter, error)
	ListChapters(ctx context.Context, chapterID *int64) ([]*models.Chapter, error)
	UpdateChapter(ctx context.Context, chapterID int64, fields *dto.ChapterFields) (int64, error)
	DeleteChapter(ctx context.Context, chapterID int64) (int64, error)
}

type chapterServiceImpl struct {
	chapters ChapterStore
}

// NewChapterService creates a new chapter service instance.
func NewChapterService(chapters ChapterStore) ChapterService {
	return &chapterServiceImpl{chapters: chapters}
}

func validateChapterFields(fields *dto.ChapterFields) error {
	if fields == nil {
		return nil
	}
	if fields.Budget != nil && *fields.Budget < 0 {
		return fmt.Errorf("%w: budget cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateChapter inserts a new chapter and returns the assigned id. At
// least one field must be supplied; an insert with zero columns is
// meaningless for this schema.
func (s *chapterServiceImpl) CreateChapter(ctx context.Context, fields *dto.ChapterFields) (int64, error) {
	if fields.Empty() {
		return 0, fmt.Errorf("%w: at least one field is required", apperrors.ErrValidationFailed)
	}
	if err := validateChapterFields(fields); err != nil {
		return 0, err
	}

	id, err := s.chapters.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, sqlbuild.ErrNoFields) {
			return 0, fmt.Errorf("%w: at least one field is required", apperrors.ErrValidationFailed)
		}
		return 0, fmt.Errorf("error creating chapter: %w", err)
	}
	return id, nil
}

// GetChapter retrieves a single chapter by id.
func (s *chapterServiceImpl) GetChapter(ctx context.Context, chapterID int64) (*models.Chapter, error) {
	if chapterID <= 0 {
		return nil, fmt.Errorf("%w: invalid chapter ID", apperrors.ErrValidationFailed)
	}

	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving chapter: %w", err)
	}
	return chapter, nil
}

// ListChapters returns every chapter, or a single-element list when a
// filter id is given. The full-table behavior is a documented
// limitation, acceptable only at small data volumes.
func (s *chapterServiceImpl) ListChapters(ctx context.Context, chapterID *int64) ([]*models.Chapter, error) {
	if chapterID != nil && *chapterID <= 0 {
		return nil, fmt.Errorf("%w: invalid chapter ID", apperrors.ErrValidationFailed)
	}

	chapters, err := s.chapters.List(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving chapters: %w", err)
	}
	return chapters, nil
}

// UpdateChapter applies a partial update and returns the id on success.
// A no-op payload is rejected before any storage access.
func (s *chapterServiceImpl) UpdateChapter(ctx context.Context, chapterID int64, fields *dto.ChapterFields) (int64, error) {
	if chapterID <= 0 {
		return 0, fmt.Errorf("%w: invalid chapter ID", apperrors.ErrValidationFailed)
	}
	if fields.Empty() {
		return 0, apperrors.ErrNoFieldsToUpdate
	}
	if err := validateChapterFields(fields); err != nil {
		return 0, err
	}

	err := s.chapters.Update(ctx, chapterID, fields)
	if err != nil {
		if errors.Is(err, sqlbuild.ErrNoFields) {
			return 0, apperrors.ErrNoFieldsToUpdate
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("error updating chapter: %w", err)
	}
	return chapterID, nil
}

// DeleteChapter removes a chapter and returns its id. Experts and child
// chapters under the deleted chapter are deliberately orphaned.
func (s *chapterServiceImpl) DeleteChapter(ctx context.Context, chapterID int64) (int64, error) {
	if chapterID <= 0 {
		return 0, fmt.Errorf("%w: invalid chapter ID", apperrors.ErrValidationFailed)
	}

	err := s.chapters.Delete(ctx, chapterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("error deleting chapter: %w", err)
	}
	return chapterID, nil
}
