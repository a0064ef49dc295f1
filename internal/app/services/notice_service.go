package services

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/helpers"
)

// NoticeService defines the interface for notice board operations
type NoticeService interface {
	CreateNotice(ctx context.Context, postedBy int64, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	UpdateNotice(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error)
	DeleteNotice(ctx context.Context, id int64) error
	GetNotice(ctx context.Context, id int64) (*dto.NoticeResponse, error)
	ListNotices(ctx context.Context, category *string, page, size int) ([]dto.NoticeResponse, dto.PaginationInfo, error)
}

// noticeServiceImpl implements NoticeService
type noticeServiceImpl struct {
	noticeRepo *repositories.NoticeRepository
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo *repositories.NoticeRepository) NoticeService {
	return &noticeServiceImpl{noticeRepo: noticeRepo}
}

// CreateNotice posts a notice to the board
func (s *noticeServiceImpl) CreateNotice(ctx context.Context, postedBy int64, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	notice := &models.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		PostedBy: postedBy,
	}

	id, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		return nil, err
	}

	return s.GetNotice(ctx, id)
}

// UpdateNotice applies a partial update to a notice
func (s *noticeServiceImpl) UpdateNotice(ctx context.Context, id int64, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error) {
	if err := s.noticeRepo.Update(ctx, id, req.Title, req.Content, req.Category); err != nil {
		return nil, err
	}

	return s.GetNotice(ctx, id)
}

// DeleteNotice removes a notice from the board
func (s *noticeServiceImpl) DeleteNotice(ctx context.Context, id int64) error {
	return s.noticeRepo.Delete(ctx, id)
}

// GetNotice retrieves one notice
func (s *noticeServiceImpl) GetNotice(ctx context.Context, id int64) (*dto.NoticeResponse, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewNoticeResponse(notice)
	return &resp, nil
}

// ListNotices retrieves one page of notices
func (s *noticeServiceImpl) ListNotices(ctx context.Context, category *string, page, size int) ([]dto.NoticeResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	notices, total, err := s.noticeRepo.List(ctx, category, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing notices: %w", err)
	}

	responses := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		responses = append(responses, dto.NewNoticeResponse(&notices[i]))
	}

	return responses, helpers.NewPaginationInfo(total, page, size), nil
}
