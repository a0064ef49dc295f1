package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// PollController handles poll endpoints
type PollController struct {
	pollService services.PollService
}

// NewPollController creates a new PollController
func NewPollController(pollService services.PollService) *PollController {
	return &PollController{pollService: pollService}
}

// CreatePoll handles creating a poll with its options
// @Summary Create a poll
// @Description Creates a poll and its options atomically. Blank option texts are dropped; at least two must survive.
// @Tags polls
// @Accept json
// @Produce json
// @Param request body dto.CreatePollRequest true "Poll details"
// @Success 201 {object} dto.APIResponse{data=dto.PollResponse} "Poll created"
// @Failure 400 {object} dto.APIResponse "Too few non-blank options"
// @Router /polls [post]
func (c *PollController) CreatePoll(ctx *gin.Context) {
	var req dto.CreatePollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.pollService.CreatePoll(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// DeletePoll handles removing a poll with its options and votes
// @Summary Delete a poll
// @Tags polls
// @Produce json
// @Param id path int true "Poll ID"
// @Success 200 {object} dto.APIResponse "Poll deleted"
// @Failure 404 {object} dto.APIResponse "Poll not found"
// @Router /polls/{id} [delete]
func (c *PollController) DeletePoll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.pollService.DeletePoll(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Poll deleted"))
}

// UpdatePollStatus handles opening or closing a poll
// @Summary Set poll status
// @Tags polls
// @Accept json
// @Produce json
// @Param id path int true "Poll ID"
// @Param request body dto.UpdatePollStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.PollResponse} "Status updated"
// @Failure 404 {object} dto.APIResponse "Poll not found"
// @Router /polls/{id}/status [patch]
func (c *PollController) UpdatePollStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePollStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.pollService.UpdatePollStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Vote handles casting a vote
// @Summary Vote in a poll
// @Description Casts one vote. A second vote in the same poll, a closed poll, or an option belonging to another poll are all rejected.
// @Tags polls
// @Accept json
// @Produce json
// @Param id path int true "Poll ID"
// @Param request body dto.VoteRequest true "Chosen option"
// @Success 200 {object} dto.APIResponse{data=dto.PollResponse} "Vote recorded"
// @Failure 409 {object} dto.APIResponse "Already voted or poll closed"
// @Router /polls/{id}/vote [post]
func (c *PollController) Vote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VoteRequest
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

	resp, err := c.pollService.Vote(ctx, id, userID, req.OptionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetPoll handles retrieving one poll with its tallies
// @Summary Get poll by ID
// @Tags polls
// @Produce json
// @Param id path int true "Poll ID"
// @Success 200 {object} dto.APIResponse{data=dto.PollResponse} "Poll retrieved"
// @Failure 404 {object} dto.APIResponse "Poll not found"
// @Router /polls/{id} [get]
func (c *PollController) GetPoll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.pollService.GetPoll(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListPolls handles listing polls
// @Summary List polls
// @Tags polls
// @Produce json
// @Param status query string false "Filter by status (active, closed)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PollListResponse} "Polls retrieved"
// @Router /polls [get]
func (c *PollController) ListPolls(ctx *gin.Context) {
	var status *string
	if s := ctx.Query("status"); s != "" {
		status = &s
	}

	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.pollService.ListPolls(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
