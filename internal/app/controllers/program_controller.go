package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/app/models/dto"
	"github.com/murad/unidir/internal/app/services"
	"github.com/murad/unidir/internal/middleware"
)

// ProgramController handles program-related operations
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

func (c *ProgramController) toProgramResponse(program *models.Program) dto.ProgramResponse {
	return dto.ProgramResponse{
		ID:            program.ID,
		Number:        program.Number,
		DisplayNumber: c.programService.DisplayNumber(program.Number),
		Name:          program.Name,
		DepartmentID:  program.DepartmentID,
		DegreeType:    string(program.DegreeType),
		DurationYears: program.DurationYears,
		StudySystem:   program.StudySystem,
		Description:   program.Description,
	}
}

// CreateProgram handles program creation. The program number is assigned
// by the numbering scheme.
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program := &models.Program{
		Name:          req.Name,
		DepartmentID:  req.DepartmentID,
		DegreeType:    models.DegreeType(req.DegreeType),
		DurationYears: req.DurationYears,
		StudySystem:   req.StudySystem,
		Description:   req.Description,
	}
	id, err := c.programService.Create(ctx, program)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      c.toProgramResponse(program),
		Timestamp: time.Now(),
	})
}

// GetProgramByID retrieves a program by ID
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	program, err := c.programService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.toProgramResponse(program),
		Timestamp: time.Now(),
	})
}

// GetAllPrograms retrieves all programs ordered by number
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ProgramResponse, 0, len(programs))
	for _, program := range programs {
		responses = append(responses, c.toProgramResponse(program))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// UpdateProgram updates the user-editable fields of a program.
// The assigned number never changes.
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	existing, err := c.programService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program := &models.Program{
		ID:            id,
		Number:        existing.Number,
		Name:          req.Name,
		DepartmentID:  existing.DepartmentID,
		DegreeType:    models.DegreeType(req.DegreeType),
		DurationYears: req.DurationYears,
		StudySystem:   req.StudySystem,
		Description:   req.Description,
	}
	if err := c.programService.Update(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.toProgramResponse(program),
		Timestamp: time.Now(),
	})
}

// DeleteProgram deletes a program
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.programService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Program deleted"},
		Timestamp: time.Now(),
	})
}
