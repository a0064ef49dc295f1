package services

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/filestorage"
	"github.com/campushub/campushub/internal/pkg/helpers"
	"github.com/campushub/campushub/internal/pkg/identifier"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// complaintStore is the slice of the complaint repository this service uses
type complaintStore interface {
	Insert(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error)
	Update(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	List(ctx context.Context, filter repositories.ComplaintFilter, offset uint64, limit int) ([]models.Complaint, int64, error)
}

// notificationStore writes notification rows inside a caller-owned transaction
type notificationStore interface {
	Insert(ctx context.Context, q db.DBTX, n *models.Notification) error
}

// userStore looks up principals referenced by complaints
type userStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// ComplaintService defines the interface for complaint lifecycle operations
type ComplaintService interface {
	CreateComplaint(ctx context.Context, userID int64, req *dto.CreateComplaintRequest, filePath *string) (*dto.CreateComplaintResponse, error)
	UpdateComplaint(ctx context.Context, id int64, req *dto.UpdateComplaintRequest) (*dto.ComplaintResponse, error)
	AssignComplaint(ctx context.Context, id int64, facultyID int64) (*dto.ComplaintResponse, error)
	GetComplaint(ctx context.Context, id int64) (*dto.ComplaintResponse, error)
	ListComplaints(ctx context.Context, filter repositories.ComplaintFilter, page, size int) (*dto.ComplaintListResponse, error)
}

// complaintServiceImpl implements ComplaintService
type complaintServiceImpl struct {
	complaintRepo    complaintStore
	notificationRepo notificationStore
	userRepo         userStore
	txManager        db.TxManager
	fileStorage      filestorage.FileStorage
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(
	complaintRepo complaintStore,
	notificationRepo notificationStore,
	userRepo userStore,
	txManager db.TxManager,
	fileStorage filestorage.FileStorage,
) ComplaintService {
	return &complaintServiceImpl{
		complaintRepo:    complaintRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		fileStorage:      fileStorage,
	}
}

// CreateComplaint files a new complaint. The complaint row and the
// acknowledgement notification commit in one transaction; if either insert
// fails neither row survives and the staged attachment is removed.
func (s *complaintServiceImpl) CreateComplaint(ctx context.Context, userID int64, req *dto.CreateComplaintRequest, filePath *string) (*dto.CreateComplaintResponse, error) {
	complaint := &models.Complaint{
		ComplaintID: identifier.New(identifier.ComplaintPrefix),
		UserID:      userID,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Subject:     req.Subject,
		Description: req.Description,
		FilePath:    filePath,
		Status:      models.ComplaintStatusPending,
		Priority:    models.PriorityMedium,
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := s.complaintRepo.Insert(ctx, tx, complaint)
		if err != nil {
			return err
		}
		complaint.ID = id

		notification := &models.Notification{
			UserID:    userID,
			Title:     "Complaint Registered",
			Message:   fmt.Sprintf("Your complaint %s has been registered and is pending review.", complaint.ComplaintID),
			Type:      models.NotificationTypeComplaint,
			RelatedID: &id,
		}
		if err := s.notificationRepo.Insert(ctx, tx, notification); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrNotificationWrite, err)
		}

		return nil
	})
	if err != nil {
		if filePath != nil {
			if delErr := s.fileStorage.DeleteFile(*filePath); delErr != nil {
				logger.Warn().Err(delErr).Str("filePath", *filePath).Msg("Failed to remove staged attachment after rollback")
			}
		}
		return nil, err
	}

	logger.Info().Str("complaintId", complaint.ComplaintID).Int64("userId", userID).Msg("Complaint created")

	return &dto.CreateComplaintResponse{
		ComplaintID: complaint.ComplaintID,
		Status:      complaint.Status.String(),
	}, nil
}

// UpdateComplaint applies a staff-side partial update. Validation happens
// before any row is touched; the repository's single conditional statement
// carries the assignment promotion rule, so a concurrent update cannot wedge
// the status.
func (s *complaintServiceImpl) UpdateComplaint(ctx context.Context, id int64, req *dto.UpdateComplaintRequest) (*dto.ComplaintResponse, error) {
	upd, err := buildComplaintUpdate(req)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, apperrors.NewValidationError("update carries no fields")
	}

	if upd.AssignedTo != nil {
		if err := s.checkAssignee(ctx, *upd.AssignedTo); err != nil {
			return nil, err
		}
	}

	if _, err := s.complaintRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	return s.GetComplaint(ctx, id)
}

// AssignComplaint routes a complaint to a faculty member. A Pending complaint
// comes out In-Progress; any other status is left alone.
func (s *complaintServiceImpl) AssignComplaint(ctx context.Context, id int64, facultyID int64) (*dto.ComplaintResponse, error) {
	if err := s.checkAssignee(ctx, facultyID); err != nil {
		return nil, err
	}

	upd := models.ComplaintUpdate{AssignedTo: &facultyID}
	if _, err := s.complaintRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	logger.Info().Int64("complaintId", id).Int64("facultyId", facultyID).Msg("Complaint assigned")

	return s.GetComplaint(ctx, id)
}

// GetComplaint retrieves one complaint by its numeric ID
func (s *complaintServiceImpl) GetComplaint(ctx context.Context, id int64) (*dto.ComplaintResponse, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewComplaintResponse(complaint, s.fileURL(complaint))
	return &resp, nil
}

// ListComplaints retrieves one page of complaints
func (s *complaintServiceImpl) ListComplaints(ctx context.Context, filter repositories.ComplaintFilter, page, size int) (*dto.ComplaintListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	complaints, total, err := s.complaintRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}

	responses := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		responses = append(responses, dto.NewComplaintResponse(&complaints[i], s.fileURL(&complaints[i])))
	}

	return &dto.ComplaintListResponse{
		Complaints:     responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

func (s *complaintServiceImpl) fileURL(c *models.Complaint) *string {
	if c.FilePath == nil {
		return nil
	}
	url := s.fileStorage.FileURL(*c.FilePath)
	return &url
}

// checkAssignee rejects assignment to a missing or non-faculty principal
func (s *complaintServiceImpl) checkAssignee(ctx context.Context, facultyID int64) error {
	user, err := s.userRepo.FindByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleFaculty && user.Role != models.RoleAdmin {
		return apperrors.NewValidationError("assignee must be a faculty member")
	}
	return nil
}

// buildComplaintUpdate converts the wire payload into a typed update,
// rejecting unknown enum values up front.
func buildComplaintUpdate(req *dto.UpdateComplaintRequest) (models.ComplaintUpdate, error) {
	var upd models.ComplaintUpdate

	if req.Status != nil {
		status := models.ComplaintStatus(*req.Status)
		if !status.IsValid() {
			return upd, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, *req.Status)
		}
		upd.Status = &status
	}
	if req.Priority != nil {
		priority := models.ComplaintPriority(*req.Priority)
		if !priority.IsValid() {
			return upd, fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, *req.Priority)
		}
		upd.Priority = &priority
	}
	upd.AssignedTo = req.AssignedTo
	upd.InternalNotes = req.InternalNotes
	upd.FacultyReply = req.FacultyReply

	return upd, nil
}
