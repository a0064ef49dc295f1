package services

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// ClubService defines the interface for club operations
type ClubService interface {
	CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubResponse, error)
	UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) (*dto.ClubResponse, error)
	DeleteClub(ctx context.Context, id int64) error
	GetClub(ctx context.Context, id int64) (*dto.ClubResponse, error)
	ListClubs(ctx context.Context, category *string, page, size int) ([]dto.ClubResponse, dto.PaginationInfo, error)
	JoinClub(ctx context.Context, clubID, userID int64) error
	LeaveClub(ctx context.Context, clubID, userID int64) error
	ListMembers(ctx context.Context, clubID int64) ([]dto.UserBrief, error)
}

// clubServiceImpl implements ClubService
type clubServiceImpl struct {
	clubRepo *repositories.ClubRepository
}

// NewClubService creates a new ClubService
func NewClubService(clubRepo *repositories.ClubRepository) ClubService {
	return &clubServiceImpl{clubRepo: clubRepo}
}

// CreateClub registers a new club
func (s *clubServiceImpl) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubResponse, error) {
	club := &models.Club{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		FacultyHead: req.FacultyHead,
	}

	id, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("clubId", id).Str("name", club.Name).Msg("Club created")

	return s.GetClub(ctx, id)
}

// UpdateClub applies a partial update to a club
func (s *clubServiceImpl) UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) (*dto.ClubResponse, error) {
	if err := s.clubRepo.Update(ctx, id, req.Name, req.Description, req.Category, req.FacultyHead); err != nil {
		return nil, err
	}

	return s.GetClub(ctx, id)
}

// DeleteClub removes a club and its memberships
func (s *clubServiceImpl) DeleteClub(ctx context.Context, id int64) error {
	return s.clubRepo.Delete(ctx, id)
}

// GetClub retrieves one club with its member count
func (s *clubServiceImpl) GetClub(ctx context.Context, id int64) (*dto.ClubResponse, error) {
	club, memberCount, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewClubResponse(club, memberCount)
	return &resp, nil
}

// ListClubs retrieves one page of clubs
func (s *clubServiceImpl) ListClubs(ctx context.Context, category *string, page, size int) ([]dto.ClubResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	clubs, counts, total, err := s.clubRepo.List(ctx, category, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing clubs: %w", err)
	}

	responses := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		responses = append(responses, dto.NewClubResponse(&clubs[i], counts[i]))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}

// JoinClub enrolls a user in a club
func (s *clubServiceImpl) JoinClub(ctx context.Context, clubID, userID int64) error {
	return s.clubRepo.AddMember(ctx, clubID, userID)
}

// LeaveClub drops a user's membership
func (s *clubServiceImpl) LeaveClub(ctx context.Context, clubID, userID int64) error {
	return s.clubRepo.RemoveMember(ctx, clubID, userID)
}

// ListMembers retrieves a club's member roster
func (s *clubServiceImpl) ListMembers(ctx context.Context, clubID int64) ([]dto.UserBrief, error) {
	members, err := s.clubRepo.GetMembers(ctx, clubID)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.UserBrief, 0, len(members))
	for _, m := range members {
		briefs = append(briefs, dto.UserBrief{
			ID:         m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Role:       string(m.Role),
			Department: m.Department,
		})
	}

	return briefs, nil
}
