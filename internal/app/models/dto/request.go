package dto

// ListCoursesRequest holds the query parameters of the course list
type ListCoursesRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// HeaderRequest holds the query parameters of the header endpoint
type HeaderRequest struct {
	Path    string  `form:"path"`
	ScrollY float64 `form:"scrollY" binding:"omitempty,min=0"`
}
