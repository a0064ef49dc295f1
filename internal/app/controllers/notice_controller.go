package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// NoticeController handles notice board endpoints
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// CreateNotice posts a notice
// @Summary Post a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param request body dto.CreateNoticeRequest true "Notice details"
// @Success 201 {object} dto.APIResponse{data=dto.NoticeResponse} "Notice posted"
// @Router /notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
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

	resp, err := c.noticeService.CreateNotice(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateNotice applies a partial update
// @Summary Update a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param id path int true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.NoticeResponse} "Notice updated"
// @Router /notices/{id} [patch]
func (c *NoticeController) UpdateNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.noticeService.UpdateNotice(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteNotice removes a notice
// @Summary Delete a notice
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse "Notice deleted"
// @Router /notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.noticeService.DeleteNotice(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notice deleted"))
}

// GetNotice retrieves one notice
// @Summary Get notice by ID
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoticeResponse} "Notice retrieved"
// @Router /notices/{id} [get]
func (c *NoticeController) GetNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.noticeService.GetNotice(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListNotices lists notices
// @Summary List notices
// @Tags notices
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.NoticeResponse} "Notices retrieved"
// @Router /notices [get]
func (c *NoticeController) ListNotices(ctx *gin.Context) {
	var category *string
	if cat := ctx.Query("category"); cat != "" {
		category = &cat
	}

	page, size := helpers.ParsePaginationParams(ctx)

	notices, pagination, err := c.noticeService.ListNotices(ctx, category, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"notices":    notices,
		"pagination": pagination,
	}))
}
