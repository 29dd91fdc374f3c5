package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	headerController *controllers.HeaderController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Every route sees the session, when there is one. Authorize guards the
	// protected path list.
	router.Use(authMiddleware.LoadSession(), authMiddleware.Authorize())

	auth := router.Group("/auth")
	{
		auth.GET("/providers", authController.Providers)
		auth.GET("/session", authController.Session)
		auth.POST("/callback/credentials", authController.CredentialsCallback)
		auth.GET("/signin/google", authController.GoogleSignIn)
		auth.GET("/callback/google", authController.GoogleCallback)
		auth.POST("/signout", authController.SignOut)
	}

	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", middleware.BindQuery[dto.ListCoursesRequest](), courseController.ListCourses)
		courses.GET("/:id", authMiddleware.RequireSession(), courseController.GetCourse)
	}

	v1.GET("/header", middleware.BindQuery[dto.HeaderRequest](), headerController.GetHeader)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
