package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
)

// InstructorResponse is the public view of a course owner
type InstructorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name" example:"Grace Hopper"`
	Email string    `json:"email" example:"grace@example.com"`
	Image *string   `json:"image,omitempty"`
}

// CourseResponse is a course in list responses
type CourseResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title" example:"Practical Compilers"`
	Description string              `json:"description"`
	Image       *string             `json:"image,omitempty"`
	Instructor  *InstructorResponse `json:"instructor,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// CourseListResponse is a page of courses
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// AssignmentResponse is an assignment with its type-specific details
type AssignmentResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type" example:"READING" enums:"READING,VIDEO,QUIZ"`
	Content         *string   `json:"content,omitempty"`
	VideoURL        *string   `json:"videoUrl,omitempty"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	PassingScore    *int      `json:"passingScore,omitempty"`
}

// UnitResponse is a unit with its assignments
type UnitResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Position    int                  `json:"position" example:"1"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// CourseDetailResponse is a course with its whole content tree
type CourseDetailResponse struct {
	CourseResponse
	Units []UnitResponse `json:"units"`
}

// NewInstructorResponse converts a user into its public instructor view
func NewInstructorResponse(u *models.User) *InstructorResponse {
	if u == nil {
		return nil
	}
	return &InstructorResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}

// NewCourseResponse converts a course model
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Image:       c.Image,
		Instructor:  NewInstructorResponse(c.Instructor),
		CreatedAt:   c.CreatedAt,
	}
}

// NewCourseDetailResponse converts a course with its units and assignments
func NewCourseDetailResponse(c *models.Course) CourseDetailResponse {
	resp := CourseDetailResponse{
		CourseResponse: NewCourseResponse(c),
		Units:          make([]UnitResponse, 0, len(c.Units)),
	}
	for _, u := range c.Units {
		unit := UnitResponse{
			ID:          u.ID,
			Title:       u.Title,
			Description: u.Description,
			Position:    u.Position,
			Assignments: make([]AssignmentResponse, 0, len(u.Assignments)),
		}
		for _, a := range u.Assignments {
			unit.Assignments = append(unit.Assignments, newAssignmentResponse(a))
		}
		resp.Units = append(resp.Units, unit)
	}
	return resp
}

func newAssignmentResponse(a *models.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Type:        string(a.Type),
	}
	if a.Reading != nil {
		resp.Content = &a.Reading.Content
	}
	if a.Video != nil {
		resp.VideoURL = &a.Video.VideoURL
		resp.DurationSeconds = &a.Video.DurationSeconds
	}
	if a.Quiz != nil {
		resp.PassingScore = &a.Quiz.PassingScore
	}
	return resp
}
