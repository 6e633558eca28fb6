package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shinystarlight00/papi2/internal/pkg/apperrors"
)

// ErrNotFound is the shared "no row matched" error for all repositories.
var ErrNotFound = apperrors.ErrNotFound

// Repositories holds all the repository instances.
type Repositories struct {
	ExpertRepository  *ExpertRepository
	ChapterRepository *ChapterRepository
}

// NewRepositories initializes all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ExpertRepository:  NewExpertRepository(db),
		ChapterRepository: NewChapterRepository(db),
	}
}
