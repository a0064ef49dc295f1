package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// HelpdeskController handles helpdesk ticket endpoints
type HelpdeskController struct {
	helpdeskService services.HelpdeskService
}

// NewHelpdeskController creates a new HelpdeskController
func NewHelpdeskController(helpdeskService services.HelpdeskService) *HelpdeskController {
	return &HelpdeskController{helpdeskService: helpdeskService}
}

// CreateTicket handles opening a ticket
// @Summary Open a helpdesk ticket
// @Description Opens a ticket; the request message becomes the first entry of the thread atomically.
// @Tags helpdesk
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} dto.APIResponse{data=dto.CreateTicketResponse} "Ticket opened"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Router /helpdesk/tickets [post]
func (c *HelpdeskController) CreateTicket(ctx *gin.Context) {
	var req dto.CreateTicketRequest
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

	resp, err := c.helpdeskService.CreateTicket(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// AddMessage handles appending a reply to a ticket thread
// @Summary Reply to a ticket
// @Description Appends a message. Replying to a Resolved ticket reopens it as In Progress.
// @Tags helpdesk
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body dto.AddMessageRequest true "Reply message"
// @Success 200 {object} dto.APIResponse{data=dto.TicketResponse} "Reply added"
// @Failure 404 {object} dto.APIResponse "Ticket not found"
// @Router /helpdesk/tickets/{id}/messages [post]
func (c *HelpdeskController) AddMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddMessageRequest
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

	resp, err := c.helpdeskService.AddMessage(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateTicketStatus handles the staff-side status override
// @Summary Set ticket status
// @Tags helpdesk
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body dto.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.TicketResponse} "Status updated"
// @Failure 404 {object} dto.APIResponse "Ticket not found"
// @Router /helpdesk/tickets/{id}/status [patch]
func (c *HelpdeskController) UpdateTicketStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTicketStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.helpdeskService.UpdateTicketStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetTicket handles retrieving one ticket with its thread
// @Summary Get ticket by ID
// @Tags helpdesk
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse{data=dto.TicketResponse} "Ticket retrieved"
// @Failure 404 {object} dto.APIResponse "Ticket not found"
// @Router /helpdesk/tickets/{id} [get]
func (c *HelpdeskController) GetTicket(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.helpdeskService.GetTicket(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListTickets handles listing tickets
// @Summary List tickets
// @Description Lists tickets. Students see only their own; staff see every requester's tickets.
// @Tags helpdesk
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.TicketListResponse} "Tickets retrieved"
// @Router /helpdesk/tickets [get]
func (c *HelpdeskController) ListTickets(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var owner *int64
	if role, _ := ctx.Get("role"); role == string(models.RoleStudent) {
		owner = &userID
	}

	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.helpdeskService.ListTickets(ctx, owner, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
