package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/studenthub/internal/app/controllers"
	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	students := v1.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		// Read routes: any authenticated user
		students.GET("", studentController.GetAll)
		students.GET("/:id", studentController.GetByID)

		// Write routes: Admin or Moderator
		studentsWriteProtected := students.Group("")
		studentsWriteProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleModerator))
		{
			studentsWriteProtected.POST("", studentController.Create)
			studentsWriteProtected.PUT("/:id", studentController.Update)
		}

		// Delete: Admin only
		studentsAdminProtected := students.Group("")
		studentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			studentsAdminProtected.DELETE("/:id", studentController.Delete)
		}
	}
}
