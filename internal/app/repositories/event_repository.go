package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/dberrors"
)

// EventRepository handles database operations for campus events
type EventRepository struct {
	db db.DBTX
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db db.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event row.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, description, venue, club_id, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		e.Title, e.Description, e.Venue, e.ClubID, e.StartsAt, e.EndsAt,
	).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrClubNotFound
		}
		return 0, fmt.Errorf("error inserting event: %w", err)
	}

	return id, nil
}

// Update applies a partial update to an event.
func (r *EventRepository) Update(ctx context.Context, id int64, title, description, venue *string, startsAt, endsAt *time.Time) error {
	builder := squirrel.Update("events").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if title != nil {
		builder = builder.Set("title", *title)
	}
	if description != nil {
		builder = builder.Set("description", *description)
	}
	if venue != nil {
		builder = builder.Set("venue", *venue)
	}
	if startsAt != nil {
		builder = builder.Set("starts_at", *startsAt)
	}
	if endsAt != nil {
		builder = builder.Set("ends_at", *endsAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// GetByID retrieves one event with its organizing club, if any.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.venue, e.club_id, e.starts_at, e.ends_at,
			e.created_at, e.updated_at,
			c.id, c.name, c.category
		FROM events e
		LEFT JOIN clubs c ON c.id = e.club_id
		WHERE e.id = $1
	`

	var e models.Event
	var clubID *int64
	var clubName, clubCategory *string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Venue, &e.ClubID, &e.StartsAt, &e.EndsAt,
		&e.CreatedAt, &e.UpdatedAt,
		&clubID, &clubName, &clubCategory,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error fetching event: %w", err)
	}

	if clubID != nil {
		e.Club = &models.Club{ID: *clubID, Name: *clubName, Category: *clubCategory}
	}

	return &e, nil
}

// EventFilter narrows an event listing.
type EventFilter struct {
	ClubID   *int64
	Upcoming bool
}

// List retrieves one page of events ordered by start time.
func (r *EventRepository) List(ctx context.Context, filter EventFilter, offset uint64, limit int) ([]models.Event, int64, error) {
	builder := squirrel.Select(
		"e.id", "e.title", "e.description", "e.venue", "e.club_id",
		"e.starts_at", "e.ends_at", "e.created_at", "e.updated_at",
		"COUNT(*) OVER() AS total_count",
	).
		From("events e").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ClubID != nil {
		builder = builder.Where("e.club_id = ?", *filter.ClubID)
	}
	if filter.Upcoming {
		builder = builder.Where("e.ends_at >= NOW()")
	}

	builder = builder.OrderBy("e.starts_at").Offset(offset).Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	var total int64
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Venue, &e.ClubID,
			&e.StartsAt, &e.EndsAt, &e.CreatedAt, &e.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	if events == nil {
		events = []models.Event{}
	}

	return events, total, nil
}
