package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/app/models/dto"
	"github.com/campushq/studenthub/internal/app/services"
	"github.com/campushq/studenthub/internal/middleware"
	"github.com/campushq/studenthub/internal/pkg/apperrors"
)

// StudentController handles student CRUD operations
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetAll retrieves all students
// @Summary List students
// @Description Retrieves every stored student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []*models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetByID retrieves a student by ID
// @Summary Get student by ID
// @Description Retrieves a specific student by its identifier
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if student == nil {
		c.logger.Warn().Str("studentId", id).Msg("Student not found")
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Create creates a new student
// @Summary Create a student
// @Description Creates a new student after validating the payload
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Student true "Student payload"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	created, err := c.studentService.Create(ctx.Request.Context(), &student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update replaces an existing student
// @Summary Update a student
// @Description Replaces an existing student after validating the payload
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body models.Student true "Student payload"
// @Success 200 {object} dto.SuccessResponse "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.studentService.Update(ctx.Request.Context(), id, &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student updated successfully"})
}

// Delete removes a student
// @Summary Delete a student
// @Description Permanently removes the student matching the identifier
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.studentService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
