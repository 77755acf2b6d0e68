package validation

// Name validation max length
const NameMaxLength = 100

// Course list cap applied by the create and update rule sets.
const MaxCourses = 5

// RuleSet selects the age bound and course cap applied at a given
// call-site. The three sets are intentionally distinct: direct entity
// validation, creation and update each enforce their own age range, and
// only create/update cap the course list.
type RuleSet struct {
	Name       string
	AgeMin     int
	AgeMax     int
	MaxCourses int // 0 means no cap
}

var (
	// RuleSetEntity validates a student independent of any operation.
	RuleSetEntity = RuleSet{Name: "entity", AgeMin: 1, AgeMax: 120}

	// RuleSetCreate is applied before inserting a new student.
	RuleSetCreate = RuleSet{Name: "create", AgeMin: 10, AgeMax: 120, MaxCourses: MaxCourses}

	// RuleSetUpdate is applied before replacing an existing student.
	RuleSetUpdate = RuleSet{Name: "update", AgeMin: 10, AgeMax: 100, MaxCourses: MaxCourses}
)
