package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shinystarlight00/papi2/internal/app/models"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/pkg/logger"
	"github.com/shinystarlight00/papi2/internal/pkg/sqlbuild"
)

// expertColumns is the select list for expert rows, in scan order.
var expertColumns = []string{
	"id", "chapter_id", "user_id", "name", "description", "schedule",
	"languages", "online", "price", "ranking", "jobs", "type",
	"url_image", "url_video", "active", "created_at",
}

// ExpertRepository handles expert database operations.
type ExpertRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExpertRepository creates a new ExpertRepository.
func NewExpertRepository(db *pgxpool.Pool) *ExpertRepository {
	return &ExpertRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// appendExpertFields maps the sparse attribute set onto columns. The
// order here is the canonical column order for generated INSERT/UPDATE
// statements and must stay stable.
func appendExpertFields(fs *sqlbuild.FieldSet, fields *dto.ExpertFields) *sqlbuild.FieldSet {
	if fields == nil {
		return fs
	}
	return fs.
		Int64("user_id", fields.UserID).
		String("name", fields.Name).
		String("description", fields.Description).
		String("schedule", fields.Schedule).
		String("languages", fields.Languages).
		String("online", fields.Online).
		Float64("price", fields.Price).
		Float64("ranking", fields.Ranking).
		Int64("jobs", fields.Jobs).
		String("type", fields.Type).
		String("url_image", fields.URLImage).
		String("url_video", fields.URLVideo).
		Bool("active", fields.Active)
}

func scanExpert(row pgx.Row) (*models.Expert, error) {
	expert := &models.Expert{}
	err := row.Scan(
		&expert.ID, &expert.ChapterID, &expert.UserID, &expert.Name,
		&expert.Description, &expert.Schedule, &expert.Languages,
		&expert.Online, &expert.Price, &expert.Ranking, &expert.Jobs,
		&expert.Type, &expert.URLImage, &expert.URLVideo,
		&expert.Active, &expert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return expert, nil
}

// ListByChapter retrieves every expert record for a chapter in storage
// order. An empty chapter yields an empty slice, not an error.
func (r *ExpertRepository) ListByChapter(ctx context.Context, chapterID int64) ([]*models.Expert, error) {
	sql, args, err := r.sb.Select(expertColumns...).
		From("experts").
		Where(squirrel.Eq{"chapter_id": chapterID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list experts SQL")
		return nil, fmt.Errorf("failed to build list experts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterID", chapterID).Msg("Error executing list experts query")
		return nil, fmt.Errorf("error querying experts: %w", err)
	}
	defer rows.Close()

	experts := []*models.Expert{}
	for rows.Next() {
		expert, err := scanExpert(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning expert row")
			return nil, fmt.Errorf("error scanning expert row: %w", err)
		}
		experts = append(experts, expert)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating expert rows")
		return nil, fmt.Errorf("error iterating expert rows: %w", err)
	}

	return experts, nil
}

// GetByID retrieves a single expert by its (chapterID, recno) pair.
func (r *ExpertRepository) GetByID(ctx context.Context, chapterID, recno int64) (*models.Expert, error) {
	sql, args, err := r.sb.Select(expertColumns...).
		From("experts").
		Where(squirrel.And{
			squirrel.Eq{"chapter_id": chapterID},
			squirrel.Eq{"id": recno},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get expert SQL")
		return nil, fmt.Errorf("failed to build get expert query: %w", err)
	}

	expert, err := scanExpert(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("chapterID", chapterID).Int64("recno", recno).Msg("Error scanning expert row")
		return nil, fmt.Errorf("error getting expert: %w", err)
	}

	return expert, nil
}

// Create inserts a new expert row scoped to chapterID. Only supplied
// fields appear in the statement; everything else takes its column
// default. The generated id is not returned.
func (r *ExpertRepository) Create(ctx context.Context, chapterID int64, fields *dto.ExpertFields) error {
	fs := appendExpertFields(sqlbuild.New().Int64("chapter_id", &chapterID), fields)

	sql, args, err := fs.Insert("experts")
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("chapterID", chapterID).Msg("Error executing create expert query")
		return fmt.Errorf("error creating expert: %w", err)
	}

	return nil
}

// Update applies a partial update to the row matching both keys.
// Returns sqlbuild.ErrNoFields without touching storage when the set is
// empty, and ErrNotFound when no row matched.
func (r *ExpertRepository) Update(ctx context.Context, chapterID, recno int64, fields *dto.ExpertFields) error {
	sql, args, err := appendExpertFields(sqlbuild.New(), fields).Update("experts", squirrel.And{
		squirrel.Eq{"chapter_id": chapterID},
		squirrel.Eq{"id": recno},
	})
	if err != nil {
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterID", chapterID).Int64("recno", recno).Msg("Error executing update expert query")
		return fmt.Errorf("error updating expert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the row matching both keys. Returns ErrNotFound when
// nothing matched, which makes repeated deletes indistinguishable from
// deleting a record that never existed.
func (r *ExpertRepository) Delete(ctx context.Context, chapterID, recno int64) error {
	sql, args, err := r.sb.Delete("experts").
		Where(squirrel.And{
			squirrel.Eq{"chapter_id": chapterID},
			squirrel.Eq{"id": recno},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete expert SQL")
		return fmt.Errorf("failed to build delete expert query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterID", chapterID).Int64("recno", recno).Msg("Error executing delete expert query")
		return fmt.Errorf("error deleting expert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
