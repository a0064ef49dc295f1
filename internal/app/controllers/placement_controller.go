package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// PlacementController handles placement drive endpoints
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// CreatePlacement posts a recruitment drive
// @Summary Post a placement drive
// @Tags placements
// @Accept json
// @Produce json
// @Param request body dto.CreatePlacementRequest true "Drive details"
// @Success 201 {object} dto.APIResponse{data=dto.PlacementResponse} "Drive posted"
// @Router /placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.placementService.CreatePlacement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdatePlacement applies a partial update
// @Summary Update a placement drive
// @Tags placements
// @Accept json
// @Produce json
// @Param id path int true "Placement ID"
// @Param request body dto.UpdatePlacementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PlacementResponse} "Drive updated"
// @Router /placements/{id} [patch]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.placementService.UpdatePlacement(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeletePlacement removes a drive
// @Summary Delete a placement drive
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse "Drive deleted"
// @Router /placements/{id} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.placementService.DeletePlacement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Placement deleted"))
}

// GetPlacement retrieves one drive
// @Summary Get placement by ID
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlacementResponse} "Drive retrieved"
// @Router /placements/{id} [get]
func (c *PlacementController) GetPlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.placementService.GetPlacement(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListPlacements lists drives
// @Summary List placement drives
// @Tags placements
// @Produce json
// @Param upcoming query bool false "Only drives that have not happened yet"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.PlacementResponse} "Drives retrieved"
// @Router /placements [get]
func (c *PlacementController) ListPlacements(ctx *gin.Context) {
	upcoming := ctx.Query("upcoming") == "true"

	page, size := helpers.ParsePaginationParams(ctx)

	placements, pagination, err := c.placementService.ListPlacements(ctx, upcoming, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"placements": placements,
		"pagination": pagination,
	}))
}
