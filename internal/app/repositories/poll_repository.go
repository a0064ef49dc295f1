package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/dberrors"
)

// PollRepository handles database operations for polls, their options and votes
type PollRepository struct {
	db db.DBTX
}

// NewPollRepository creates a new PollRepository
func NewPollRepository(db db.DBTX) *PollRepository {
	return &PollRepository{db: db}
}

// InsertPoll writes a new poll row on the caller's querier.
func (r *PollRepository) InsertPoll(ctx context.Context, q db.DBTX, p *models.Poll) (int64, error) {
	query := `
		INSERT INTO polls (title, description, category, deadline, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query, p.Title, p.Description, p.Category, p.Deadline, p.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting poll: %w", err)
	}

	return id, nil
}

// InsertOption writes one poll option on the caller's querier.
func (r *PollRepository) InsertOption(ctx context.Context, q db.DBTX, pollID int64, optionText string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO poll_options (poll_id, option_text) VALUES ($1, $2)`, pollID, optionText)
	if err != nil {
		return fmt.Errorf("error inserting poll option: %w", err)
	}

	return nil
}

// Delete removes a poll row on the caller's querier. Options and votes go
// with it through the schema's ON DELETE CASCADE, so the transaction commit
// is the single point where the poll and all derived rows disappear.
func (r *PollRepository) Delete(ctx context.Context, q db.DBTX, id int64) error {
	result, err := q.Exec(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting poll: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPollNotFound
	}

	return nil
}

// UpdateStatus opens or closes a poll. Single-row, no dependent writes, so it
// runs as one auto-committing statement.
func (r *PollRepository) UpdateStatus(ctx context.Context, id int64, status models.PollStatus) error {
	result, err := r.db.Exec(ctx, `UPDATE polls SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating poll status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPollNotFound
	}

	return nil
}

// GetStatus reads a poll's status on the caller's querier, used inside the
// voting transaction.
func (r *PollRepository) GetStatus(ctx context.Context, q db.DBTX, id int64) (models.PollStatus, error) {
	var status models.PollStatus
	err := q.QueryRow(ctx, `SELECT status FROM polls WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", apperrors.ErrPollNotFound
		}
		return "", fmt.Errorf("error fetching poll status: %w", err)
	}

	return status, nil
}

// InsertVote records a user's vote on the caller's querier. The unique
// constraint on (poll_id, user_id) turns a second vote into ErrAlreadyVoted.
func (r *PollRepository) InsertVote(ctx context.Context, q db.DBTX, v *models.PollVote) error {
	_, err := q.Exec(ctx,
		`INSERT INTO poll_votes (poll_id, option_id, user_id) VALUES ($1, $2, $3)`,
		v.PollID, v.OptionID, v.UserID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyVoted
		}
		return fmt.Errorf("error inserting vote: %w", err)
	}

	return nil
}

// IncrementVoteCount bumps an option's tally on the caller's querier. The
// option must belong to the poll being voted on.
func (r *PollRepository) IncrementVoteCount(ctx context.Context, q db.DBTX, pollID, optionID int64) error {
	result, err := q.Exec(ctx,
		`UPDATE poll_options SET votes_count = votes_count + 1 WHERE id = $1 AND poll_id = $2`,
		optionID, pollID)
	if err != nil {
		return fmt.Errorf("error incrementing vote count: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPollOptionNotFound
	}

	return nil
}

// GetByID retrieves a poll with its options.
func (r *PollRepository) GetByID(ctx context.Context, id int64) (*models.Poll, error) {
	query := `
		SELECT id, title, description, category, deadline, status, created_at
		FROM polls
		WHERE id = $1
	`

	var p models.Poll
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Deadline, &p.Status, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPollNotFound
		}
		return nil, fmt.Errorf("error fetching poll: %w", err)
	}

	optionsQuery := `
		SELECT id, poll_id, option_text, votes_count
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, optionsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching poll options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.PollOption
		if err := rows.Scan(&o.ID, &o.PollID, &o.OptionText, &o.VotesCount); err != nil {
			return nil, fmt.Errorf("error scanning poll option row: %w", err)
		}
		p.Options = append(p.Options, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll option rows: %w", err)
	}

	return &p, nil
}

// List retrieves one page of polls, newest first. A non-nil status narrows to
// active or closed polls.
func (r *PollRepository) List(ctx context.Context, status *models.PollStatus, offset uint64, limit int) ([]models.Poll, int64, error) {
	query := `
		SELECT id, title, description, category, deadline, status, created_at,
			COUNT(*) OVER() AS total_count
		FROM polls
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.db.Query(ctx, query, statusArg, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing polls: %w", err)
	}
	defer rows.Close()

	var polls []models.Poll
	var total int64
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Deadline,
			&p.Status, &p.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning poll row: %w", err)
		}
		polls = append(polls, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating poll rows: %w", err)
	}

	if polls == nil {
		polls = []models.Poll{}
	}

	return polls, total, nil
}
