package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// CourseController serves the course catalogue
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses returns a page of courses
// @Summary List courses
// @Description Returns courses with their instructor, newest first
// @Tags courses
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses"
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	req, ok := middleware.ValidatedQuery[dto.ListCoursesRequest](ctx)
	if !ok {
		req = &dto.ListCoursesRequest{}
	}
	limit, offset := helpers.NormalizeLimitOffset(req.Limit, req.Offset)

	courses, total, err := c.courseService.List(ctx.Request.Context(), limit, offset)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list courses")
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CourseListResponse{
		Courses:    make([]dto.CourseResponse, 0, len(courses)),
		Pagination: helpers.NewPaginationInfo(total, limit, offset),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.NewCourseResponse(course))
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetCourse returns a course with its units and assignments
// @Summary Get course
// @Description Returns the full content tree of a course. Requires a session.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailResponse} "Course"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/v1/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithField("id").WithDetails("Course ID must be a UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewCourseDetailResponse(course)})
}
