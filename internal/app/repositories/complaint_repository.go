package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// ComplaintRepository handles database operations for complaints
type ComplaintRepository struct {
	db db.DBTX
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db db.DBTX) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Insert writes a new complaint row. It runs on the querier the caller
// provides so the write can join the caller's transaction.
func (r *ComplaintRepository) Insert(ctx context.Context, q db.DBTX, c *models.Complaint) (int64, error) {
	query := `
		INSERT INTO complaints (complaint_id, user_id, category, sub_category, subject, description, file_path, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		c.ComplaintID, c.UserID, c.Category, c.SubCategory, c.Subject,
		c.Description, c.FilePath, c.Status, c.Priority).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting complaint: %w", err)
	}

	return id, nil
}

// complaintUpdateSQL merges a partial update into a complaint in one
// statement. The CASE expression applies the assignment promotion rule
// server-side: supplying an assignee while the stored status is still Pending
// forces In-Progress, overriding any status the same request carried. Every
// other field is set-if-provided, preserved-if-absent via COALESCE. Running
// the merge in a single statement avoids the lost update a read-modify-write
// would allow under concurrent status changes.
const complaintUpdateSQL = `
	UPDATE complaints
	SET status = CASE
			WHEN $1::bigint IS NOT NULL AND status = 'Pending' THEN 'In-Progress'
			ELSE COALESCE($2::text, status)
		END,
		assigned_to = COALESCE($1::bigint, assigned_to),
		priority = COALESCE($3::text, priority),
		internal_notes = COALESCE($4::text, internal_notes),
		faculty_reply = COALESCE($5::text, faculty_reply),
		updated_at = NOW()
	WHERE id = $6
`

// complaintUpdateArgs lays out the statement arguments for complaintUpdateSQL.
func complaintUpdateArgs(id int64, upd models.ComplaintUpdate) []any {
	var status *string
	if upd.Status != nil {
		s := upd.Status.String()
		status = &s
	}

	var priority *string
	if upd.Priority != nil {
		p := string(*upd.Priority)
		priority = &p
	}

	return []any{upd.AssignedTo, status, priority, upd.InternalNotes, upd.FacultyReply, id}
}

// Update applies a conditional merge to a complaint and returns the affected
// row count. A zero row match is surfaced as ErrComplaintNotFound, never a
// silent no-op.
func (r *ComplaintRepository) Update(ctx context.Context, id int64, upd models.ComplaintUpdate) (int64, error) {
	result, err := r.db.Exec(ctx, complaintUpdateSQL, complaintUpdateArgs(id, upd)...)
	if err != nil {
		return 0, fmt.Errorf("error updating complaint: %w", err)
	}

	if result.RowsAffected() == 0 {
		return 0, apperrors.ErrComplaintNotFound
	}

	return result.RowsAffected(), nil
}

// GetByID retrieves a complaint by its numeric id, with the assignee attached
// when one is set.
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := `
		SELECT c.id, c.complaint_id, c.user_id, c.category, c.sub_category, c.subject,
			c.description, c.file_path, c.status, c.priority, c.assigned_to,
			c.internal_notes, c.faculty_reply, c.created_at, c.updated_at,
			u.id, u.name, u.email
		FROM complaints c
		LEFT JOIN users u ON u.id = c.assigned_to
		WHERE c.id = $1
	`

	var c models.Complaint
	var assigneeID *int64
	var assigneeName, assigneeEmail *string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ComplaintID, &c.UserID, &c.Category, &c.SubCategory, &c.Subject,
		&c.Description, &c.FilePath, &c.Status, &c.Priority, &c.AssignedTo,
		&c.InternalNotes, &c.FacultyReply, &c.CreatedAt, &c.UpdatedAt,
		&assigneeID, &assigneeName, &assigneeEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error fetching complaint: %w", err)
	}

	if assigneeID != nil {
		c.Assignee = &models.User{ID: *assigneeID, Name: *assigneeName, Email: *assigneeEmail}
	}

	return &c, nil
}

// ComplaintFilter narrows a complaint listing
type ComplaintFilter struct {
	UserID     *int64
	Status     *models.ComplaintStatus
	Category   *string
	AssignedTo *int64
}

// List retrieves complaints matching the filter, newest first, with the total
// match count for pagination.
func (r *ComplaintRepository) List(ctx context.Context, filter ComplaintFilter, offset uint64, limit int) ([]models.Complaint, int64, error) {
	builder := squirrel.Select(
		"id", "complaint_id", "user_id", "category", "sub_category", "subject",
		"description", "file_path", "status", "priority", "assigned_to",
		"internal_notes", "faculty_reply", "created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).
		From("complaints").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserID != nil {
		builder = builder.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		builder = builder.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		builder = builder.Where("category = ?", *filter.Category)
	}
	if filter.AssignedTo != nil {
		builder = builder.Where("assigned_to = ?", *filter.AssignedTo)
	}

	builder = builder.OrderBy("created_at DESC").Offset(offset).Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	var total int64
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(
			&c.ID, &c.ComplaintID, &c.UserID, &c.Category, &c.SubCategory, &c.Subject,
			&c.Description, &c.FilePath, &c.Status, &c.Priority, &c.AssignedTo,
			&c.InternalNotes, &c.FacultyReply, &c.CreatedAt, &c.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	if complaints == nil {
		complaints = []models.Complaint{}
	}

	return complaints, total, nil
}
