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

// chapterColumns is the select list for chapter rows, in scan order.
var chapterColumns = []string{
	"chapter_id", "domain_id", "parent_id", "title",
	"enable_video", "enable_image", "enable_wiki", "enable_chat",
	"enable_expert", "enable_add", "playlist", "budget",
}

// ChapterRepository handles chapter database operations.
type ChapterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewChapterRepository creates a new ChapterRepository.
func NewChapterRepository(db *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// chapterFieldSet maps the sparse attribute set onto columns, keeping
// the canonical column order for generated statements.
func chapterFieldSet(fields *dto.ChapterFields) *sqlbuild.FieldSet {
	fs := sqlbuild.New()
	if fields == nil {
		return fs
	}
	return fs.
		Int64("domain_id", fields.DomainID).
		Int64("parent_id", fields.ParentID).
		String("title", fields.Title).
		Bool("enable_video", fields.EnableVideo).
		Bool("enable_image", fields.EnableImage).
		Bool("enable_wiki", fields.EnableWiki).
		Bool("enable_chat", fields.EnableChat).
		Bool("enable_expert", fields.EnableExpert).
		Bool("enable_add", fields.EnableAdd).
		String("playlist", fields.Playlist).
		Float64("budget", fields.Budget)
}

func scanChapter(row pgx.Row) (*models.Chapter, error) {
	chapter := &models.Chapter{}
	err := row.Scan(
		&chapter.ChapterID, &chapter.DomainID, &chapter.ParentID,
		&chapter.Title, &chapter.EnableVideo, &chapter.EnableImage,
		&chapter.EnableWiki, &chapter.EnableChat, &chapter.EnableExpert,
		&chapter.EnableAdd, &chapter.Playlist, &chapter.Budget,
	)
	if err != nil {
		return nil, err
	}
	return chapter, nil
}

// Create inserts a new chapter covering only the supplied fields and
// returns the generated chapter id.
func (r *ChapterRepository) Create(ctx context.Context, fields *dto.ChapterFields) (int64, error) {
	sql, args, err := chapterFieldSet(fields).InsertReturning("chapters", "chapter_id")
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create chapter query")
		return 0, fmt.Errorf("error creating chapter: %w", err)
	}

	return id, nil
}

// GetByID retrieves a chapter by id.
func (r *ChapterRepository) GetByID(ctx context.Context, chapterID int64) (*models.Chapter, error) {
	sql, args, err := r.sb.Select(chapterColumns...).
		From("chapters").
		Where(squirrel.Eq{"chapter_id": chapterID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get chapter SQL")
		return nil, fmt.Errorf("failed to build get chapter query: %w", err)
	}

	chapter, err := scanChapter(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("chapterID", chapterID).Msg("Error scanning chapter row")
		return nil, fmt.Errorf("error getting chapter: %w", err)
	}

	return chapter, nil
}

// List retrieves chapter rows. A non-nil filter narrows the result to a
// single id; otherwise the whole table is returned. There is no
// pagination, which is acceptable only at small data volumes.
func (r *ChapterRepository) List(ctx context.Context, chapterID *int64) ([]*models.Chapter, error) {
	builder := r.sb.Select(chapterColumns...).From("chapters")
	if chapterID != nil {
		builder = builder.Where(squirrel.Eq{"chapter_id": *chapterID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list chapters SQL")
		return nil, fmt.Errorf("failed to build list chapters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list chapters query")
		return nil, fmt.Errorf("error querying chapters: %w", err)
	}
	defer rows.Close()

	chapters := []*models.Chapter{}
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning chapter row")
			return nil, fmt.Errorf("error scanning chapter row: %w", err)
		}
		chapters = append(chapters, chapter)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating chapter rows")
		return nil, fmt.Errorf("error iterating chapter rows: %w", err)
	}

	return chapters, nil
}

// Update applies a partial update. Returns sqlbuild.ErrNoFields without
// touching storage when the set is empty, and ErrNotFound when the id
// did not match any row.
func (r *ChapterRepository) Update(ctx context.Context, chapterID int64, fields *dto.ChapterFields) error {
	sql, args, err := chapterFieldSet(fields).Update("chapters", squirrel.Eq{"chapter_id": chapterID})
	if err != nil {
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterID", chapterID).Msg("Error executing update chapter query")
		return fmt.Errorf("error updating chapter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a chapter by id. Child chapters and experts scoped to
// the deleted chapter are left in place; orphaning is the documented
// lifecycle policy, not an oversight.
func (r *ChapterRepository) Delete(ctx context.Context, chapterID int64) error {
	sql, args, err := r.sb.Delete("chapters").
		Where(squirrel.Eq{"chapter_id": chapterID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete chapter SQL")
		return fmt.Errorf("failed to build delete chapter query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterID", chapterID).Msg("Error executing delete chapter query")
		return fmt.Errorf("error deleting chapter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
