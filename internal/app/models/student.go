package models

// Gender is the enumerated gender of a student. The accepted values are
// case-sensitive and match the stored document representation exactly.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid reports whether g is one of the enumerated gender values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Student represents a student document in the store.
// ID is assigned by the repository on creation and is immutable afterwards;
// it is the empty string before a student has been persisted.
type Student struct {
	ID          string   `json:"id" example:"662f5e1a9d3f4c2b8a1d0e7f"` // Store-assigned identifier
	Name        string   `json:"name" example:"Jane Doe"`
	IsGraduated bool     `json:"isGraduated" example:"false"`
	Courses     []string `json:"courses" example:"Algorithms,Databases"`
	Gender      Gender   `json:"gender" example:"Female"`
	Age         int      `json:"age" example:"21"`
}
