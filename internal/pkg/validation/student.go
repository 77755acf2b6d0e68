// Package validation holds the student business rules shared by every
// write path. Rules are pure: callers get back a list of violations and
// nothing else happens.
package validation

import (
	"fmt"
	"strings"

	"github.com/campushq/studenthub/internal/app/models"
)

// Violation describes a single failed rule on a named field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStudent checks a candidate student against the given rule set
// and returns the violations in a deterministic order: name, gender,
// age, courses. An empty result means the student is valid.
func ValidateStudent(student *models.Student, rules RuleSet) []Violation {
	if student == nil {
		return []Violation{{Field: "student", Message: "student payload is required"}}
	}

	var violations []Violation

	if strings.TrimSpace(student.Name) == "" {
		violations = append(violations, Violation{Field: "name", Message: "name is required"})
	} else if len(student.Name) > NameMaxLength {
		violations = append(violations, Violation{
			Field:   "name",
			Message: fmt.Sprintf("name cannot exceed %d characters", NameMaxLength),
		})
	}

	if student.Gender == "" {
		violations = append(violations, Violation{Field: "gender", Message: "gender is required"})
	} else if !student.Gender.IsValid() {
		violations = append(violations, Violation{
			Field:   "gender",
			Message: "gender must be Male, Female, or Other",
		})
	}

	if student.Age < rules.AgeMin || student.Age > rules.AgeMax {
		violations = append(violations, Violation{
			Field:   "age",
			Message: fmt.Sprintf("age must be between %d and %d", rules.AgeMin, rules.AgeMax),
		})
	}

	violations = append(violations, validateCourses(student.Courses, rules)...)

	return violations
}

func validateCourses(courses []string, rules RuleSet) []Violation {
	if len(courses) == 0 {
		return []Violation{{Field: "courses", Message: "at least one course is required"}}
	}

	var violations []Violation
	if rules.MaxCourses > 0 && len(courses) > rules.MaxCourses {
		violations = append(violations, Violation{
			Field:   "courses",
			Message: fmt.Sprintf("no more than %d courses are allowed", rules.MaxCourses),
		})
	}

	for i, course := range courses {
		if strings.TrimSpace(course) == "" {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("courses[%d]", i),
				Message: "course name cannot be blank",
			})
		}
	}

	return violations
}
