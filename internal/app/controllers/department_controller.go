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

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

func (c *DepartmentController) toDepartmentResponse(ctx *gin.Context, department *models.Department) (dto.DepartmentResponse, error) {
	displayNo, err := c.departmentService.DisplayNo(ctx, department)
	if err != nil {
		return dto.DepartmentResponse{}, err
	}
	return dto.DepartmentResponse{
		ID:          department.ID,
		DepNo:       department.DepNo,
		DisplayNo:   displayNo,
		Code:        department.Code,
		Name:        department.Name,
		Type:        string(department.Type),
		CollegeID:   department.CollegeID,
		Description: department.Description,
	}, nil
}

// CreateDepartment handles department creation. Both the department number
// and the short code are assigned by the numbering scheme.
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Type:        models.DepartmentType(req.Type),
		CollegeID:   req.CollegeID,
		Description: req.Description,
	}
	id, err := c.departmentService.Create(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department.ID = id
	response, err := c.toDepartmentResponse(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetDepartmentByID retrieves a department by ID
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	department, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response, err := c.toDepartmentResponse(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetAllDepartments retrieves all departments
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		response, err := c.toDepartmentResponse(ctx, department)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		responses = append(responses, response)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// UpdateDepartment updates the user-editable fields of a department.
// The assigned number and code never change.
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department := &models.Department{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.departmentService.Update(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response, err := c.toDepartmentResponse(ctx, updated)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// DeleteDepartment deletes a department
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Department deleted"},
		Timestamp: time.Now(),
	})
}
