package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studenthub/internal/app/models"
)

func validStudent() *models.Student {
	return &models.Student{
		Name:        "Jane Doe",
		IsGraduated: false,
		Courses:     []string{"Algorithms", "Databases"},
		Gender:      models.GenderFemale,
		Age:         21,
	}
}

func TestValidateStudent_Valid(t *testing.T) {
	for _, rules := range []RuleSet{RuleSetEntity, RuleSetCreate, RuleSetUpdate} {
		t.Run(rules.Name, func(t *testing.T) {
			assert.Empty(t, ValidateStudent(validStudent(), rules))
		})
	}
}

func TestValidateStudent_Name(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		message string
	}{
		{"empty", "", "name is required"},
		{"whitespace only", "   ", "name is required"},
		{"too long", strings.Repeat("x", 101), "name cannot exceed 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent()
			s.Name = tt.value

			violations := ValidateStudent(s, RuleSetEntity)
			require.Len(t, violations, 1)
			assert.Equal(t, "name", violations[0].Field)
			assert.Equal(t, tt.message, violations[0].Message)
		})
	}

	t.Run("exactly 100 characters is accepted", func(t *testing.T) {
		s := validStudent()
		s.Name = strings.Repeat("x", 100)
		assert.Empty(t, ValidateStudent(s, RuleSetEntity))
	})
}

func TestValidateStudent_Gender(t *testing.T) {
	t.Run("missing gender", func(t *testing.T) {
		s := validStudent()
		s.Gender = ""

		violations := ValidateStudent(s, RuleSetEntity)
		require.Len(t, violations, 1)
		assert.Equal(t, "gender", violations[0].Field)
	})

	t.Run("gender match is case-sensitive", func(t *testing.T) {
		s := validStudent()
		s.Gender = "male"

		violations := ValidateStudent(s, RuleSetEntity)
		require.Len(t, violations, 1)
		assert.Equal(t, "gender must be Male, Female, or Other", violations[0].Message)
	})
}

// TestValidateStudent_AgeBounds checks that each rule set keeps its own
// distinct age range.
func TestValidateStudent_AgeBounds(t *testing.T) {
	tests := []struct {
		name  string
		rules RuleSet
		age   int
		valid bool
	}{
		{"entity accepts 1", RuleSetEntity, 1, true},
		{"entity accepts 120", RuleSetEntity, 120, true},
		{"entity rejects 0", RuleSetEntity, 0, false},
		{"entity rejects 121", RuleSetEntity, 121, false},
		{"create rejects 9", RuleSetCreate, 9, false},
		{"create accepts 10", RuleSetCreate, 10, true},
		{"create accepts 120", RuleSetCreate, 120, true},
		{"update accepts 100", RuleSetUpdate, 100, true},
		{"update rejects 101", RuleSetUpdate, 101, false},
		{"update rejects 9", RuleSetUpdate, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent()
			s.Age = tt.age

			violations := ValidateStudent(s, tt.rules)
			if tt.valid {
				assert.Empty(t, violations)
			} else {
				require.Len(t, violations, 1)
				assert.Equal(t, "age", violations[0].Field)
			}
		})
	}
}

func TestValidateStudent_Courses(t *testing.T) {
	t.Run("nil courses", func(t *testing.T) {
		s := validStudent()
		s.Courses = nil

		violations := ValidateStudent(s, RuleSetCreate)
		require.Len(t, violations, 1)
		assert.Equal(t, "courses", violations[0].Field)
	})

	t.Run("empty courses", func(t *testing.T) {
		s := validStudent()
		s.Courses = []string{}

		violations := ValidateStudent(s, RuleSetCreate)
		require.Len(t, violations, 1)
		assert.Equal(t, "at least one course is required", violations[0].Message)
	})

	t.Run("blank entry", func(t *testing.T) {
		s := validStudent()
		s.Courses = []string{"Algorithms", "  "}

		violations := ValidateStudent(s, RuleSetCreate)
		require.Len(t, violations, 1)
		assert.Equal(t, "courses[1]", violations[0].Field)
	})

	t.Run("create caps at five", func(t *testing.T) {
		s := validStudent()
		s.Courses = []string{"A", "B", "C", "D", "E", "F"}

		violations := ValidateStudent(s, RuleSetCreate)
		require.Len(t, violations, 1)
		assert.Equal(t, "no more than 5 courses are allowed", violations[0].Message)
	})

	t.Run("entity rule set has no cap", func(t *testing.T) {
		s := validStudent()
		s.Courses = []string{"A", "B", "C", "D", "E", "F"}

		assert.Empty(t, ValidateStudent(s, RuleSetEntity))
	})
}

func TestValidateStudent_ViolationOrder(t *testing.T) {
	// Violations come back in field order: name, gender, age, courses.
	s := &models.Student{Name: "", Gender: "unknown", Age: 0, Courses: nil}

	violations := ValidateStudent(s, RuleSetEntity)
	require.Len(t, violations, 4)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, "gender", violations[1].Field)
	assert.Equal(t, "age", violations[2].Field)
	assert.Equal(t, "courses", violations[3].Field)
}

func TestValidateStudent_NilStudent(t *testing.T) {
	violations := ValidateStudent(nil, RuleSetEntity)
	require.Len(t, violations, 1)
	assert.Equal(t, "student", violations[0].Field)
}
