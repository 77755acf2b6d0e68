package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushq/studenthub/internal/app/models"
)

// MemoryStudentRepository is a mutex-guarded in-memory student store. It
// backs unit tests and the "memory" database driver, and enforces the
// same identifier format as the MongoDB gateway.
type MemoryStudentRepository struct {
	mu       sync.RWMutex
	students map[string]models.Student
}

// NewMemoryStudentRepository creates an empty in-memory student repository.
func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{
		students: make(map[string]models.Student),
	}
}

// Create assigns a fresh identifier and stores a copy of the student.
func (r *MemoryStudentRepository) Create(_ context.Context, student *models.Student) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyStudent(student)
	stored.ID = primitive.NewObjectID().Hex()
	r.students[stored.ID] = stored

	result := stored
	return &result, nil
}

// GetAll returns every stored student in map iteration order.
func (r *MemoryStudentRepository) GetAll(_ context.Context) ([]*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out := s
		students = append(students, &out)
	}
	return students, nil
}

// GetByID returns the matching student, or (nil, nil) when absent.
func (r *MemoryStudentRepository) GetByID(_ context.Context, id string) (*models.Student, error) {
	if _, err := parseObjectID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	if !ok {
		return nil, nil
	}
	out := s
	return &out, nil
}

// Update replaces the stored student. Replacing a missing id is a no-op.
func (r *MemoryStudentRepository) Update(_ context.Context, id string, student *models.Student) error {
	if _, err := parseObjectID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[id]; !ok {
		return nil
	}

	stored := copyStudent(student)
	stored.ID = id
	r.students[id] = stored
	return nil
}

// Remove deletes the stored student. Deleting a missing id is not an error.
func (r *MemoryStudentRepository) Remove(_ context.Context, id string) error {
	if _, err := parseObjectID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.students, id)
	return nil
}

// copyStudent makes a deep copy so stored state never aliases caller slices.
func copyStudent(student *models.Student) models.Student {
	out := *student
	if student.Courses != nil {
		out.Courses = append([]string(nil), student.Courses...)
	}
	return out
}
