// Package services holds the business logic orchestrating validation and
// persistence.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/app/repositories"
	"github.com/campushq/studenthub/internal/pkg/apperrors"
	"github.com/campushq/studenthub/internal/pkg/validation"
)

// StudentService orchestrates validation and persistence for student
// operations. Update and Remove existence-check before delegating so a
// missing id yields a distinguishable not-found signal; the gap between
// check and act is not protected against a concurrent delete, which the
// store's per-document atomicity bounds.
type StudentService struct {
	studentRepo repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create validates the student with the creation rule set and stores it.
// On violation the gateway is never called.
func (s *StudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if violations := validation.ValidateStudent(student, validation.RuleSetCreate); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", created.ID).Msg("Student created")
	return created, nil
}

// GetAll returns every stored student.
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByID returns the matching student, or (nil, nil) when absent.
func (s *StudentService) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Update replaces an existing student. A missing id fails with
// ErrStudentNotFound before the gateway replace is attempted; the
// incoming id always wins over any id carried in the payload.
func (s *StudentService) Update(ctx context.Context, id string, student *models.Student) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrStudentNotFound
	}

	if violations := validation.ValidateStudent(student, validation.RuleSetUpdate); len(violations) > 0 {
		return apperrors.NewValidationError(violations)
	}

	student.ID = id
	if err := s.studentRepo.Update(ctx, id, student); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", id).Msg("Student updated")
	return nil
}

// Remove deletes an existing student, failing with ErrStudentNotFound
// when no student matches the id.
func (s *StudentService) Remove(ctx context.Context, id string) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrStudentNotFound
	}

	if err := s.studentRepo.Remove(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", id).Msg("Student removed")
	return nil
}
