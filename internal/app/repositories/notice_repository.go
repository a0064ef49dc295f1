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

// NoticeRepository handles database operations for notice board entries
type NoticeRepository struct {
	db db.DBTX
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db db.DBTX) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create inserts a new notice row.
func (r *NoticeRepository) Create(ctx context.Context, n *models.Notice) (int64, error) {
	query := `
		INSERT INTO notices (title, content, category, posted_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, n.Title, n.Content, n.Category, n.PostedBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting notice: %w", err)
	}

	return id, nil
}

// Update applies a partial update to a notice.
func (r *NoticeRepository) Update(ctx context.Context, id int64, title, content, category *string) error {
	builder := squirrel.Update("notices").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if title != nil {
		builder = builder.Set("title", *title)
	}
	if content != nil {
		builder = builder.Set("content", *content)
	}
	if category != nil {
		builder = builder.Set("category", *category)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating notice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}

// Delete removes a notice.
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}

// GetByID retrieves one notice.
func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	query := `
		SELECT id, title, content, category, posted_by, created_at, updated_at
		FROM notices
		WHERE id = $1
	`

	var n models.Notice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Content, &n.Category, &n.PostedBy, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error fetching notice: %w", err)
	}

	return &n, nil
}

// List retrieves one page of notices, newest first.
func (r *NoticeRepository) List(ctx context.Context, category *string, offset uint64, limit int) ([]models.Notice, int64, error) {
	builder := squirrel.Select(
		"id", "title", "content", "category", "posted_by",
		"created_at", "updated_at", "COUNT(*) OVER() AS total_count",
	).
		From("notices").
		PlaceholderFormat(squirrel.Dollar)

	if category != nil {
		builder = builder.Where("category = ?", *category)
	}

	builder = builder.OrderBy("created_at DESC").Offset(offset).Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing notices: %w", err)
	}
	defer rows.Close()

	var notices []models.Notice
	var total int64
	for rows.Next() {
		var n models.Notice
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Content, &n.Category, &n.PostedBy,
			&n.CreatedAt, &n.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning notice row: %w", err)
		}
		notices = append(notices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating notice rows: %w", err)
	}

	if notices == nil {
		notices = []models.Notice{}
	}

	return notices, total, nil
}
