// Package seed fills an empty database with a small demo hierarchy so
// the API is explorable right after first startup. It never runs
// against a database that already has chapters, and its failures are
// logged but never fatal.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	appRepos "github.com/shinystarlight00/papi2/internal/app/repositories"
)

func strPtr(s string) *string   { return &s }
func i64Ptr(i int64) *int64     { return &i }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

// CreateDemoData inserts sample chapters and experts when the chapters
// table is empty.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	chapterRepo := appRepos.NewChapterRepository(dbPool)
	expertRepo := appRepos.NewExpertRepository(dbPool)

	existing, err := chapterRepo.List(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("chapters", len(existing)).Msg("Demo data skipped, chapters already present")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")
	var finalErr error

	rootID, err := chapterRepo.Create(ctx, &dto.ChapterFields{
		Title:        strPtr("Science"),
		EnableExpert: boolPtr(true),
		EnableVideo:  boolPtr(true),
		Budget:       f64Ptr(100),
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating root demo chapter")
		return err
	}

	children := []dto.ChapterFields{
		{Title: strPtr("Physics"), ParentID: i64Ptr(rootID), EnableExpert: boolPtr(true), Budget: f64Ptr(50)},
		{Title: strPtr("Chemistry"), ParentID: i64Ptr(rootID), EnableExpert: boolPtr(true), EnableWiki: boolPtr(true), Budget: f64Ptr(25)},
		// budget 0 marks the chapter premium
		{Title: strPtr("Mathematics"), ParentID: i64Ptr(rootID), EnableChat: boolPtr(true), Budget: f64Ptr(0)},
	}

	childIDs := make([]int64, 0, len(children))
	for i := range children {
		id, err := chapterRepo.Create(ctx, &children[i])
		if err != nil {
			lgr.Error().Err(err).Str("title", *children[i].Title).Msg("Error creating demo chapter")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		childIDs = append(childIDs, id)
	}

	if len(childIDs) > 0 {
		experts := []dto.ExpertFields{
			{
				Name:      strPtr("Dr. Smith"),
				Languages: strPtr("English,German"),
				Online:    strPtr("online"),
				Price:     f64Ptr(25.00),
				Ranking:   f64Ptr(4.5),
				Type:      strPtr("real"),
			},
			{
				Name:      strPtr("HelpBot"),
				Languages: strPtr("English"),
				Online:    strPtr("online"),
				Price:     f64Ptr(0.50),
				Ranking:   f64Ptr(3.9),
				Type:      strPtr("bot"),
			},
			{
				Name:      strPtr("Athena"),
				Languages: strPtr("English,French,Spanish"),
				Online:    strPtr("offline"),
				Price:     f64Ptr(5.00),
				Ranking:   f64Ptr(4.8),
				Type:      strPtr("AI"),
			},
		}

		for i := range experts {
			chapterID := childIDs[i%len(childIDs)]
			if err := expertRepo.Create(ctx, chapterID, &experts[i]); err != nil {
				lgr.Error().Err(err).Str("name", *experts[i].Name).Msg("Error creating demo expert")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Int64("rootChapterID", rootID).Msg("Demo data seeded")
	}
	return finalErr
}
