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

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

func (c *CollegeController) toCollegeResponse(college *models.College) dto.CollegeResponse {
	return dto.CollegeResponse{
		ID:          college.ID,
		Code:        college.Code,
		DisplayCode: c.collegeService.DisplayCode(college.Code),
		Name:        college.Name,
		Description: college.Description,
	}
}

// CreateCollege handles college creation. The numeric code is assigned by
// the numbering scheme; the request carries no code field.
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	college := &models.College{
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := c.collegeService.Create(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	college.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      c.toCollegeResponse(college),
		Timestamp: time.Now(),
	})
}

// GetCollegeByID retrieves a college by ID
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	college, err := c.collegeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.toCollegeResponse(college),
		Timestamp: time.Now(),
	})
}

// GetCollegeByCode retrieves a college by its assigned numeric code
func (c *CollegeController) GetCollegeByCode(ctx *gin.Context) {
	code, err := strconv.Atoi(ctx.Param("code"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college code")
		errorDetail = errorDetail.WithField("code").WithDetails("must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	college, err := c.collegeService.GetByCode(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.toCollegeResponse(college),
		Timestamp: time.Now(),
	})
}

// GetAllColleges retrieves all colleges ordered by code
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.CollegeResponse, 0, len(colleges))
	for _, college := range colleges {
		responses = append(responses, c.toCollegeResponse(college))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// UpdateCollege updates the user-editable fields of a college.
// The assigned code never changes.
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	college := &models.College{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.collegeService.Update(ctx, college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.collegeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.toCollegeResponse(updated),
		Timestamp: time.Now(),
	})
}

// DeleteCollege deletes a college and its detail records
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.collegeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "College deleted"},
		Timestamp: time.Now(),
	})
}

// AddCollegeDetail attaches a detail record to a college
func (c *CollegeController) AddCollegeDetail(ctx *gin.Context) {
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

	detail := &models.CollegeDetail{
		CollegeID: id,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
	}
	detailID, err := c.collegeService.AddDetail(ctx, detail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toDetailResponse(detailID, detail.Title, detail.Subtitle),
		Timestamp: time.Now(),
	})
}

// GetCollegeDetails lists the detail records of a college
func (c *CollegeController) GetCollegeDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	details, err := c.collegeService.GetDetails(ctx, id)
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

// DeleteCollegeDetail removes a detail record from a college
func (c *CollegeController) DeleteCollegeDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	detailID, ok := parseIDParam(ctx, "detailId")
	if !ok {
		return
	}

	if err := c.collegeService.RemoveDetail(ctx, id, detailID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Detail deleted"},
		Timestamp: time.Now(),
	})
}
