package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/filestorage"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// ComplaintController handles complaint lifecycle endpoints
type ComplaintController struct {
	complaintService services.ComplaintService
	fileStorage      filestorage.FileStorage
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService, fileStorage filestorage.FileStorage) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		fileStorage:      fileStorage,
	}
}

// CreateComplaint handles filing a new complaint
// @Summary File a complaint
// @Description Files a new complaint with an optional attachment. The complaint and its acknowledgement notification are created atomically.
// @Tags complaints
// @Accept multipart/form-data
// @Produce json
// @Param category formData string true "Complaint category"
// @Param subCategory formData string true "Complaint sub-category"
// @Param subject formData string true "Short subject line"
// @Param description formData string true "Full description"
// @Param file formData file false "Supporting attachment"
// @Success 201 {object} dto.APIResponse{data=dto.CreateComplaintResponse} "Complaint registered"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /complaints [post]
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	// Stage the attachment before the transaction; the service removes it
	// again if the creation fails.
	var filePath *string
	if fileHeader, err := ctx.FormFile("file"); err == nil && fileHeader != nil {
		stored, err := c.fileStorage.SaveFile(fileHeader, "complaints")
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		filePath = &stored
	}

	resp, err := c.complaintService.CreateComplaint(ctx, userID, &req, filePath)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetComplaint handles retrieving a single complaint
// @Summary Get complaint by ID
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint retrieved"
// @Failure 404 {object} dto.APIResponse "Complaint not found"
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.complaintService.GetComplaint(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListComplaints handles listing complaints with filters
// @Summary List complaints
// @Description Lists complaints. Students see only their own; staff see everything and can filter by status, category and assignee.
// @Tags complaints
// @Produce json
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param assignedTo query int false "Filter by assigned faculty ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintListResponse} "Complaints retrieved"
// @Router /complaints [get]
func (c *ComplaintController) ListComplaints(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var filter repositories.ComplaintFilter

	role, _ := ctx.Get("role")
	if role == string(models.RoleStudent) {
		filter.UserID = &userID
	} else {
		if assignedStr := ctx.Query("assignedTo"); assignedStr != "" {
			if assignedTo, err := strconv.ParseInt(assignedStr, 10, 64); err == nil {
				filter.AssignedTo = &assignedTo
			}
		}
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := models.ComplaintStatus(statusStr)
		filter.Status = &status
	}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}

	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.complaintService.ListComplaints(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateComplaint handles the staff-side partial update
// @Summary Update a complaint
// @Description Applies a partial update. Assigning a Pending complaint promotes it to In-Progress regardless of any status in the same payload.
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body dto.UpdateComplaintRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint updated"
// @Failure 400 {object} dto.APIResponse "Invalid status or priority"
// @Failure 404 {object} dto.APIResponse "Complaint not found"
// @Router /complaints/{id} [patch]
func (c *ComplaintController) UpdateComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.complaintService.UpdateComplaint(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AssignComplaint handles routing a complaint to a faculty member
// @Summary Assign a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body dto.AssignComplaintRequest true "Faculty to assign"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint assigned"
// @Failure 404 {object} dto.APIResponse "Complaint not found"
// @Router /complaints/{id}/assign [post]
func (c *ComplaintController) AssignComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.complaintService.AssignComplaint(ctx, id, req.FacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
