package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shinystarlight00/papi2/internal/app/models"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/pkg/apperrors"
	"github.com/shinystarlight00/papi2/internal/pkg/sqlbuild"
)

// ExpertStore abstracts expert storage access for the service layer.
// *repositories.ExpertRepository satisfies it.
type ExpertStore interface {
	ListByChapter(ctx context.Context, chapterID int64) ([]*models.Expert, error)
	GetByID(ctx context.Context, chapterID, recno int64) (*models.Expert, error)
	Create(ctx context.Context, chapterID int64, fields *dto.ExpertFields) error
	Update(ctx context.Context, chapterID, recno int64, fields *dto.ExpertFields) error
	Delete(ctx context.Context, chapterID, recno int64) error
}

// ExpertService defines the expert operations exposed to the HTTP layer.
type ExpertService interface {
	ListExperts(ctx context.Context, chapterID int64) ([]*models.Expert, error)
	ReadExpert(ctx context.Context, chapterID, recno int64) (*models.Expert, error)
	CreateExpert(ctx context.Context, chapterID int64, fields *dto.ExpertFields) error
	UpdateExpert(ctx context.Context, chapterID, recno int64, fields *dto.ExpertFields) error
	DeleteExpert(ctx context.Context, chapterID, recno int64) error
}

type expertServiceImpl struct {
	experts ExpertStore
}

// NewExpertService creates a new expert service instance.
func NewExpertService(experts ExpertStore) ExpertService {
	return &expertServiceImpl{experts: experts}
}

// validateExpertFields checks domain constraints on whichever fields
// were actually supplied. Absent fields are never validated.
func validateExpertFields(fields *dto.ExpertFields) error {
	if fields == nil {
		return nil
	}
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if fields.Price != nil && *fields.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidationFailed)
	}
	if fields.Ranking != nil && (*fields.Ranking < 0 || *fields.Ranking > 5) {
		return fmt.Errorf("%w: ranking must be between 0 and 5", apperrors.ErrValidationFailed)
	}
	if fields.Jobs != nil && *fields.Jobs < 0 {
		return fmt.Errorf("%w: jobs cannot be negative", apperrors.ErrValidationFailed)
	}
	if fields.Online != nil && !models.ValidOnlineStatus(*fields.Online) {
		return fmt.Errorf("%w: online must be one of online, offline", apperrors.ErrValidationFailed)
	}
	if fields.Type != nil && !models.ValidExpertType(*fields.Type) {
		return fmt.Errorf("%w: type must be one of real, bot, AI", apperrors.ErrValidationFailed)
	}
	return nil
}

// ListExperts retrieves all expert records for a chapter. An empty
// result is returned as an empty slice; the boundary layer decides how
// to signal it.
func (s *expertServiceImpl) ListExperts(ctx context.Context, chapterID int64) ([]*models.Expert, error) {
	if chapterID <= 0 {
		return nil, fmt.Errorf("%w: invalid chapter ID", apperrors.ErrValidationFailed)
	}

	experts, err := s.experts.ListByChapter(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving experts: %w", err)
	}
	return experts, nil
}

// ReadExpert retrieves a single expert record.
func (s *expertServiceImpl) ReadExpert(ctx context.Context, chapterID, recno int64) (*models.Expert, error) {
	if chapterID <= 0 || recno <= 0 {
		return nil, fmt.Errorf("%w: invalid expert key", apperrors.ErrValidationFailed)
	}

	expert, err := s.experts.GetByID(ctx, chapterID, recno)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving expert: %w", err)
	}
	return expert, nil
}

// CreateExpert inserts a new expert record scoped to chapterID. The
// name is required; all other attributes are optional and omitted ones
// take their storage defaults. The generated id is not echoed back.
func (s *expertServiceImpl) CreateExpert(ctx context.Context, chapterID int64, fields *dto.ExpertFields) error {
	if chapterID <= 0 {
		return fmt.Errorf("%w: invalid chapter ID", apperrors.ErrValidationFailed)
	}
	if fields == nil || fields.Name == nil {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}
	if err := validateExpertFields(fields); err != nil {
		return err
	}

	if err := s.experts.Create(ctx, chapterID, fields); err != nil {
		return fmt.Errorf("error creating expert: %w", err)
	}
	return nil
}

// UpdateExpert applies a partial update to the record matching both
// keys. An empty field set is rejected before any storage access.
func (s *expertServiceImpl) UpdateExpert(ctx context.Context, chapterID, recno int64, fields *dto.ExpertFields) error {
	if chapterID <= 0 || recno <= 0 {
		return fmt.Errorf("%w: invalid expert key", apperrors.ErrValidationFailed)
	}
	if fields.Empty() {
		return apperrors.ErrNoFieldsToUpdate
	}
	if err := validateExpertFields(fields); err != nil {
		return err
	}

	err := s.experts.Update(ctx, chapterID, recno, fields)
	if err != nil {
		if errors.Is(err, sqlbuild.ErrNoFields) {
			return apperrors.ErrNoFieldsToUpdate
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("error updating expert: %w", err)
	}
	return nil
}

// DeleteExpert removes the record matching both keys. Deleting an
// already-deleted record reports not-found, the same way every time.
func (s *expertServiceImpl) DeleteExpert(ctx context.Context, chapterID, recno int64) error {
	if chapterID <= 0 || recno <= 0 {
		return fmt.Errorf("%w: invalid expert key", apperrors.ErrValidationFailed)
	}

	err := s.experts.Delete(ctx, chapterID, recno)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("error deleting expert: %w", err)
	}
	return nil
}
