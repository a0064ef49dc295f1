package services

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// PlacementService defines the interface for placement drive operations
type PlacementService interface {
	CreatePlacement(ctx context.Context, req *dto.CreatePlacementRequest) (*dto.PlacementResponse, error)
	UpdatePlacement(ctx context.Context, id int64, req *dto.UpdatePlacementRequest) (*dto.PlacementResponse, error)
	DeletePlacement(ctx context.Context, id int64) error
	GetPlacement(ctx context.Context, id int64) (*dto.PlacementResponse, error)
	ListPlacements(ctx context.Context, upcoming bool, page, size int) ([]dto.PlacementResponse, dto.PaginationInfo, error)
}

// placementServiceImpl implements PlacementService
type placementServiceImpl struct {
	placementRepo *repositories.PlacementRepository
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(placementRepo *repositories.PlacementRepository) PlacementService {
	return &placementServiceImpl{placementRepo: placementRepo}
}

// CreatePlacement posts a recruitment drive
func (s *placementServiceImpl) CreatePlacement(ctx context.Context, req *dto.CreatePlacementRequest) (*dto.PlacementResponse, error) {
	placement := &models.Placement{
		Company:     req.Company,
		Role:        req.Role,
		Description: req.Description,
		Package:     req.Package,
		Eligibility: req.Eligibility,
		DriveDate:   req.DriveDate,
	}

	id, err := s.placementRepo.Create(ctx, placement)
	if err != nil {
		return nil, err
	}

	return s.GetPlacement(ctx, id)
}

// UpdatePlacement applies a partial update to a drive
func (s *placementServiceImpl) UpdatePlacement(ctx context.Context, id int64, req *dto.UpdatePlacementRequest) (*dto.PlacementResponse, error) {
	if err := s.placementRepo.Update(ctx, id, req.Company, req.Role, req.Description, req.Package, req.Eligibility, req.DriveDate); err != nil {
		return nil, err
	}

	return s.GetPlacement(ctx, id)
}

// DeletePlacement removes a drive
func (s *placementServiceImpl) DeletePlacement(ctx context.Context, id int64) error {
	return s.placementRepo.Delete(ctx, id)
}

// GetPlacement retrieves one drive
func (s *placementServiceImpl) GetPlacement(ctx context.Context, id int64) (*dto.PlacementResponse, error) {
	placement, err := s.placementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewPlacementResponse(placement)
	return &resp, nil
}

// ListPlacements retrieves one page of drives
func (s *placementServiceImpl) ListPlacements(ctx context.Context, upcoming bool, page, size int) ([]dto.PlacementResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	placements, total, err := s.placementRepo.List(ctx, upcoming, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing placements: %w", err)
	}

	responses := make([]dto.PlacementResponse, 0, len(placements))
	for i := range placements {
		responses = append(responses, dto.NewPlacementResponse(&placements[i]))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}
