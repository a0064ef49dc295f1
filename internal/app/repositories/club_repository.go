package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/db"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/dberrors"
)

// ClubRepository handles database operations for clubs and their members
type ClubRepository struct {
	db db.DBTX
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db db.DBTX) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create inserts a new club row.
func (r *ClubRepository) Create(ctx context.Context, c *models.Club) (int64, error) {
	query := `
		INSERT INTO clubs (name, description, category, faculty_head)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, c.Name, c.Description, c.Category, c.FacultyHead).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting club: %w", err)
	}

	return id, nil
}

// Update applies a partial update to a club.
func (r *ClubRepository) Update(ctx context.Context, id int64, name, description, category *string, facultyHead *int64) error {
	builder := squirrel.Update("clubs").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if name != nil {
		builder = builder.Set("name", *name)
	}
	if description != nil {
		builder = builder.Set("description", *description)
	}
	if category != nil {
		builder = builder.Set("category", *category)
	}
	if facultyHead != nil {
		builder = builder.Set("faculty_head", *facultyHead)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating club: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}

	return nil
}

// Delete removes a club; memberships go with it through the schema cascade.
func (r *ClubRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting club: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}

	return nil
}

// GetByID retrieves a club with its member count.
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, int64, error) {
	query := `
		SELECT c.id, c.name, c.description, c.category, c.faculty_head, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id) AS member_count
		FROM clubs c
		WHERE c.id = $1
	`

	var c models.Club
	var memberCount int64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Category, &c.FacultyHead,
		&c.CreatedAt, &c.UpdatedAt, &memberCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, apperrors.ErrClubNotFound
		}
		return nil, 0, fmt.Errorf("error fetching club: %w", err)
	}

	return &c, memberCount, nil
}

// List retrieves one page of clubs with member counts.
func (r *ClubRepository) List(ctx context.Context, category *string, offset uint64, limit int) ([]models.Club, []int64, int64, error) {
	builder := squirrel.Select(
		"c.id", "c.name", "c.description", "c.category", "c.faculty_head",
		"c.created_at", "c.updated_at",
		"(SELECT COUNT(*) FROM club_members m WHERE m.club_id = c.id) AS member_count",
		"COUNT(*) OVER() AS total_count",
	).
		From("clubs c").
		PlaceholderFormat(squirrel.Dollar)

	if category != nil {
		builder = builder.Where("c.category = ?", *category)
	}

	builder = builder.OrderBy("c.name").Offset(offset).Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error listing clubs: %w", err)
	}
	defer rows.Close()

	var clubs []models.Club
	var counts []int64
	var total int64
	for rows.Next() {
		var c models.Club
		var memberCount int64
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Category, &c.FacultyHead,
			&c.CreatedAt, &c.UpdatedAt, &memberCount, &total,
		); err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, c)
		counts = append(counts, memberCount)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error iterating club rows: %w", err)
	}

	if clubs == nil {
		clubs = []models.Club{}
		counts = []int64{}
	}

	return clubs, counts, total, nil
}

// AddMember records a user's membership; joining twice is a conflict.
func (r *ClubRepository) AddMember(ctx context.Context, clubID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO club_members (club_id, user_id) VALUES ($1, $2)`, clubID, userID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyMember
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrClubNotFound
		}
		return fmt.Errorf("error adding club member: %w", err)
	}

	return nil
}

// RemoveMember drops a user's membership.
func (r *ClubRepository) RemoveMember(ctx context.Context, clubID, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	if err != nil {
		return fmt.Errorf("error removing club member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("membership not found")
	}

	return nil
}

// GetMembers retrieves a club's members.
func (r *ClubRepository) GetMembers(ctx context.Context, clubID int64) ([]models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.department
		FROM users u
		JOIN club_members m ON m.user_id = u.id
		WHERE m.club_id = $1
		ORDER BY m.joined_at
	`

	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("error fetching club members: %w", err)
	}
	defer rows.Close()

	var members []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	if members == nil {
		members = []models.User{}
	}

	return members, nil
}
