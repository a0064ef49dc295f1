package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// ClubController handles club endpoints
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// CreateClub registers a new club
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body dto.CreateClubRequest true "Club details"
// @Success 201 {object} dto.APIResponse{data=dto.ClubResponse} "Club created"
// @Router /clubs [post]
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.clubService.CreateClub(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateClub applies a partial update
// @Summary Update a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path int true "Club ID"
// @Param request body dto.UpdateClubRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club updated"
// @Router /clubs/{id} [patch]
func (c *ClubController) UpdateClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.clubService.UpdateClub(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteClub removes a club
// @Summary Delete a club
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse "Club deleted"
// @Router /clubs/{id} [delete]
func (c *ClubController) DeleteClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.clubService.DeleteClub(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Club deleted"))
}

// GetClub retrieves one club
// @Summary Get club by ID
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club retrieved"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.clubService.GetClub(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListClubs lists clubs
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubResponse} "Clubs retrieved"
// @Router /clubs [get]
func (c *ClubController) ListClubs(ctx *gin.Context) {
	var category *string
	if cat := ctx.Query("category"); cat != "" {
		category = &cat
	}

	page, size := helpers.ParsePaginationParams(ctx)

	clubs, pagination, err := c.clubService.ListClubs(ctx, category, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"clubs":      clubs,
		"pagination": pagination,
	}))
}

// JoinClub enrolls the caller in a club
// @Summary Join a club
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse "Joined"
// @Failure 409 {object} dto.APIResponse "Already a member"
// @Router /clubs/{id}/join [post]
func (c *ClubController) JoinClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.clubService.JoinClub(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Joined club"))
}

// LeaveClub drops the caller's membership
// @Summary Leave a club
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse "Left"
// @Router /clubs/{id}/leave [post]
func (c *ClubController) LeaveClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.clubService.LeaveClub(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Left club"))
}

// ListMembers retrieves a club's roster
// @Summary List club members
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserBrief} "Members retrieved"
// @Router /clubs/{id}/members [get]
func (c *ClubController) ListMembers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	members, err := c.clubService.ListMembers(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}
