package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/app/models/dto"
	"github.com/murad/unidir/internal/app/services"
	"github.com/murad/unidir/internal/middleware"
)

// UniversityController handles university-related operations
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{universityService: universityService}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier")
		errorDetail = errorDetail.WithField(name).WithDetails("must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func toUniversityResponse(u *models.University) dto.UniversityResponse {
	return dto.UniversityResponse{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		Location:    u.Location,
	}
}

func toDetailResponse(id int64, title, subtitle string) dto.DetailResponse {
	return dto.DetailResponse{ID: id, Title: title, Subtitle: subtitle}
}

// CreateUniversity handles university creation
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university := &models.University{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	id, err := c.universityService.Create(ctx, university)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	university.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toUniversityResponse(university),
		Timestamp: time.Now(),
	})
}

// GetUniversityByID retrieves a university by ID
func (c *UniversityController) GetUniversityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	university, err := c.universityService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toUniversityResponse(university),
		Timestamp: time.Now(),
	})
}

// GetAllUniversities retrieves all universities
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	universities, err := c.universityService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UniversityResponse, 0, len(universities))
	for _, u := range universities {
		responses = append(responses, toUniversityResponse(u))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// UpdateUniversity updates an existing university
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university := &models.University{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := c.universityService.Update(ctx, university); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toUniversityResponse(university),
		Timestamp: time.Now(),
	})
}

// DeleteUniversity deletes a university and its detail records
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.universityService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "University deleted"},
		Timestamp: time.Now(),
	})
}

// AddUniversityDetail attaches a detail record to a university
func (c *UniversityController) AddUniversityDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateDetailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid detail data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	detail := &models.UniversityDetail{
		UniversityID: id,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
	}
	detailID, err := c.universityService.AddDetail(ctx, detail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toDetailResponse(detailID, detail.Title, detail.Subtitle),
		Timestamp: time.Now(),
	})
}

// GetUniversityDetails lists the detail records of a university
func (c *UniversityController) GetUniversityDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	details, err := c.universityService.GetDetails(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.DetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, toDetailResponse(d.ID, d.Title, d.Subtitle))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// DeleteUniversityDetail removes a detail record from a university
func (c *UniversityController) DeleteUniversityDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	detailID, ok := parseIDParam(ctx, "detailId")
	if !ok {
		return
	}

	if err := c.universityService.RemoveDetail(ctx, id, detailID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Detail deleted"},
		Timestamp: time.Now(),
	})
}
