package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is owned by exactly one instructor
type Course struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Image        *string   `json:"image,omitempty" db:"image"`
	InstructorID uuid.UUID `json:"instructorId" db:"instructor_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Instructor *User   `json:"instructor,omitempty"`
	Units      []*Unit `json:"units,omitempty"`
}

// Unit belongs to one course
type Unit struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CourseID    uuid.UUID `json:"courseId" db:"course_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Assignments []*Assignment `json:"assignments,omitempty"`
}

// Assignment belongs to one unit; Type selects its satellite record
type Assignment struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	UnitID      uuid.UUID      `json:"unitId" db:"unit_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Type        AssignmentType `json:"type" db:"type"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`

	Reading *ReadingAssignment `json:"reading,omitempty"`
	Video   *VideoAssignment   `json:"video,omitempty"`
	Quiz    *QuizAssignment    `json:"quiz,omitempty"`
}

// ReadingAssignment is the READING satellite, keyed by assignment id
type ReadingAssignment struct {
	AssignmentID uuid.UUID `json:"assignmentId" db:"assignment_id"`
	Content      string    `json:"content" db:"content"`
}

// VideoAssignment is the VIDEO satellite, keyed by assignment id
type VideoAssignment struct {
	AssignmentID    uuid.UUID `json:"assignmentId" db:"assignment_id"`
	VideoURL        string    `json:"videoUrl" db:"video_url"`
	DurationSeconds int       `json:"durationSeconds" db:"duration_seconds"`
}

// QuizAssignment is the QUIZ satellite, keyed by assignment id
type QuizAssignment struct {
	AssignmentID uuid.UUID `json:"assignmentId" db:"assignment_id"`
	PassingScore int       `json:"passingScore" db:"passing_score"`
}
