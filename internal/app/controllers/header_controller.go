package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/header"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
)

// HeaderController serves the computed site header
type HeaderController struct{}

// NewHeaderController creates a new HeaderController
func NewHeaderController() *HeaderController {
	return &HeaderController{}
}

// GetHeader computes the header for a route and scroll offset
// @Summary Site header
// @Description Returns the header classes, logo state and menu for the given route
// @Tags header
// @Produce json
// @Param path query string false "Current pathname" default(/)
// @Param scrollY query number false "Vertical scroll offset" default(0)
// @Success 200 {object} dto.APIResponse{data=header.View} "Header"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /api/v1/header [get]
func (h *HeaderController) GetHeader(ctx *gin.Context) {
	req, ok := middleware.ValidatedQuery[dto.HeaderRequest](ctx)
	if !ok {
		req = &dto.HeaderRequest{}
	}
	path := req.Path
	if path == "" {
		path = "/"
	}

	view := header.Build(header.State{
		Pathname: path,
		ScrollY:  req.ScrollY,
		Session:  middleware.CurrentSession(ctx),
	})
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: view})
}
