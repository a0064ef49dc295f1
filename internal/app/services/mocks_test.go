package services

import (
	"context"
	"mime/multipart"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/db"
)

// fakeTxManager runs the transaction function directly against a nil querier.
// An error from the function stands in for a rollback.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	m.calls++
	return fn(ctx, nil)
}

type mockComplaintStore struct {
	InsertFn  func(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error)
	UpdateFn  func(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error)
	GetByIDFn func(ctx context.Context, id int64) (*models.Complaint, error)
	ListFn    func(ctx context.Context, filter repositories.ComplaintFilter, offset uint64, limit int) ([]models.Complaint, int64, error)
}

func (m *mockComplaintStore) Insert(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error) {
	return m.InsertFn(ctx, q, c)
}

func (m *mockComplaintStore) Update(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error) {
	return m.UpdateFn(ctx, id, upd)
}

func (m *mockComplaintStore) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockComplaintStore) List(ctx context.Context, filter repositories.ComplaintFilter, offset uint64, limit int) ([]models.Complaint, int64, error) {
	return m.ListFn(ctx, filter, offset, limit)
}

type mockNotificationStore struct {
	InsertFn func(ctx context.Context, q db.DBTX, n *models.Notification) error
}

func (m *mockNotificationStore) Insert(ctx context.Context, q db.DBTX, n *models.Notification) error {
	return m.InsertFn(ctx, q, n)
}

type mockUserStore struct {
	FindByIDFn func(ctx context.Context, id int64) (*models.User, error)
}

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return m.FindByIDFn(ctx, id)
}

type mockHelpdeskStore struct {
	InsertTicketFn  func(ctx context.Context, q db.DBTX, t *models.HelpdeskTicket) (int64, error)
	InsertMessageFn func(ctx context.Context, q db.DBTX, m *models.HelpdeskMessage) error
	TouchForReplyFn func(ctx context.Context, q db.DBTX, ticketID int64) error
	UpdateStatusFn  func(ctx context.Context, id int64, status models.TicketStatus) error
	GetTicketByIDFn func(ctx context.Context, id int64) (*models.HelpdeskTicket, error)
	ListTicketsFn   func(ctx context.Context, userID *int64, offset uint64, limit int) ([]models.HelpdeskTicket, int64, error)
}

func (m *mockHelpdeskStore) InsertTicket(ctx context.Context, q db.DBTX, t *models.HelpdeskTicket) (int64, error) {
	return m.InsertTicketFn(ctx, q, t)
}

func (m *mockHelpdeskStore) InsertMessage(ctx context.Context, q db.DBTX, msg *models.HelpdeskMessage) error {
	return m.InsertMessageFn(ctx, q, msg)
}

func (m *mockHelpdeskStore) TouchForReply(ctx context.Context, q db.DBTX, ticketID int64) error {
	return m.TouchForReplyFn(ctx, q, ticketID)
}

func (m *mockHelpdeskStore) UpdateStatus(ctx context.Context, id int64, status models.TicketStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

func (m *mockHelpdeskStore) GetTicketByID(ctx context.Context, id int64) (*models.HelpdeskTicket, error) {
	return m.GetTicketByIDFn(ctx, id)
}

func (m *mockHelpdeskStore) ListTickets(ctx context.Context, userID *int64, offset uint64, limit int) ([]models.HelpdeskTicket, int64, error) {
	return m.ListTicketsFn(ctx, userID, offset, limit)
}

type mockPollStore struct {
	InsertPollFn         func(ctx context.Context, q db.DBTX, p *models.Poll) (int64, error)
	InsertOptionFn       func(ctx context.Context, q db.DBTX, pollID int64, optionText string) error
	DeleteFn             func(ctx context.Context, q db.DBTX, id int64) error
	UpdateStatusFn       func(ctx context.Context, id int64, status models.PollStatus) error
	GetStatusFn          func(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error)
	InsertVoteFn         func(ctx context.Context, q db.DBTX, v *models.PollVote) error
	IncrementVoteCountFn func(ctx context.Context, q db.DBTX, pollID, optionID int64) error
	GetByIDFn            func(ctx context.Context, id int64) (*models.Poll, error)
	ListFn               func(ctx context.Context, status *models.PollStatus, offset uint64, limit int) ([]models.Poll, int64, error)
}

func (m *mockPollStore) InsertPoll(ctx context.Context, q db.DBTX, p *models.Poll) (int64, error) {
	return m.InsertPollFn(ctx, q, p)
}

func (m *mockPollStore) InsertOption(ctx context.Context, q db.DBTX, pollID int64, optionText string) error {
	return m.InsertOptionFn(ctx, q, pollID, optionText)
}

func (m *mockPollStore) Delete(ctx context.Context, q db.DBTX, id int64) error {
	return m.DeleteFn(ctx, q, id)
}

func (m *mockPollStore) UpdateStatus(ctx context.Context, id int64, status models.PollStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

func (m *mockPollStore) GetStatus(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error) {
	return m.GetStatusFn(ctx, q, id)
}

func (m *mockPollStore) InsertVote(ctx context.Context, q db.DBTX, v *models.PollVote) error {
	return m.InsertVoteFn(ctx, q, v)
}

func (m *mockPollStore) IncrementVoteCount(ctx context.Context, q db.DBTX, pollID, optionID int64) error {
	return m.IncrementVoteCountFn(ctx, q, pollID, optionID)
}

func (m *mockPollStore) GetByID(ctx context.Context, id int64) (*models.Poll, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockPollStore) List(ctx context.Context, status *models.PollStatus, offset uint64, limit int) ([]models.Poll, int64, error) {
	return m.ListFn(ctx, status, offset, limit)
}

// mockFileStorage records deletions so tests can assert staged-file cleanup
type mockFileStorage struct {
	Deleted []string
}

func (m *mockFileStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	return subPath, nil
}

func (m *mockFileStorage) DeleteFile(filePath string) error {
	m.Deleted = append(m.Deleted, filePath)
	return nil
}

func (m *mockFileStorage) FileURL(filePath string) string {
	return "/uploads/" + filePath
}
