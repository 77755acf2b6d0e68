// Package seed inserts demo data for non-production environments.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/app/services"
)

// CreateDefaultStudents inserts a couple of demo students when the store
// is empty. Failures are reported but individual inserts keep going.
func CreateDefaultStudents(ctx context.Context, studentService *services.StudentService, lgr zerolog.Logger) error {
	existing, err := studentService.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing students: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Student store already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default students...")

	defaults := []*models.Student{
		{
			Name:        "Ada Lovelace",
			IsGraduated: false,
			Courses:     []string{"Algorithms", "Number Theory"},
			Gender:      models.GenderFemale,
			Age:         20,
		},
		{
			Name:        "Alan Turing",
			IsGraduated: true,
			Courses:     []string{"Computability", "Cryptography", "Logic"},
			Gender:      models.GenderMale,
			Age:         24,
		},
	}

	var finalErr error
	for _, student := range defaults {
		created, err := studentService.Create(ctx, student)
		if err != nil {
			lgr.Error().Err(err).Str("name", student.Name).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("studentId", created.ID).Str("name", created.Name).Msg("Seeded student")
	}

	return finalErr
}
