package models

// Role defines the user role
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleInstructor
}

// AssignmentType discriminates the satellite record an assignment carries
type AssignmentType string

const (
	AssignmentReading AssignmentType = "READING"
	AssignmentVideo   AssignmentType = "VIDEO"
	AssignmentQuiz    AssignmentType = "QUIZ"
)

// AssignmentTypes returns every assignment type in declaration order
func AssignmentTypes() []AssignmentType {
	return []AssignmentType{AssignmentReading, AssignmentVideo, AssignmentQuiz}
}
