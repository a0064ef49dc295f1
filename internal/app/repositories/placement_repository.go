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
)

// PlacementRepository handles database operations for placement drives
type PlacementRepository struct {
	db db.DBTX
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db db.DBTX) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// Create inserts a new placement drive row.
func (r *PlacementRepository) Create(ctx context.Context, p *models.Placement) (int64, error) {
	query := `
		INSERT INTO placements (company, role, description, package, eligibility, drive_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		p.Company, p.Role, p.Description, p.Package, p.Eligibility, p.DriveDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting placement: %w", err)
	}

	return id, nil
}

// Update applies a partial update to a placement drive.
func (r *PlacementRepository) Update(ctx context.Context, id int64, company, role, description, pkg, eligibility *string, driveDate *time.Time) error {
	builder := squirrel.Update("placements").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if company != nil {
		builder = builder.Set("company", *company)
	}
	if role != nil {
		builder = builder.Set("role", *role)
	}
	if description != nil {
		builder = builder.Set("description", *description)
	}
	if pkg != nil {
		builder = builder.Set("package", *pkg)
	}
	if eligibility != nil {
		builder = builder.Set("eligibility", *eligibility)
	}
	if driveDate != nil {
		builder = builder.Set("drive_date", *driveDate)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// Delete removes a placement drive.
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM placements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting placement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// GetByID retrieves one placement drive.
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `
		SELECT id, company, role, description, package, eligibility, drive_date, created_at, updated_at
		FROM placements
		WHERE id = $1
	`

	var p models.Placement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Company, &p.Role, &p.Description, &p.Package, &p.Eligibility,
		&p.DriveDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error fetching placement: %w", err)
	}

	return &p, nil
}

// List retrieves one page of placement drives ordered by drive date.
func (r *PlacementRepository) List(ctx context.Context, upcoming bool, offset uint64, limit int) ([]models.Placement, int64, error) {
	builder := squirrel.Select(
		"id", "company", "role", "description", "package", "eligibility",
		"drive_date", "created_at", "updated_at", "COUNT(*) OVER() AS total_count",
	).
		From("placements").
		PlaceholderFormat(squirrel.Dollar)

	if upcoming {
		builder = builder.Where("drive_date >= NOW()")
	}

	builder = builder.OrderBy("drive_date").Offset(offset).Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing placements: %w", err)
	}
	defer rows.Close()

	var placements []models.Placement
	var total int64
	for rows.Next() {
		var p models.Placement
		if err := rows.Scan(
			&p.ID, &p.Company, &p.Role, &p.Description, &p.Package, &p.Eligibility,
			&p.DriveDate, &p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning placement row: %w", err)
		}
		placements = append(placements, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating placement rows: %w", err)
	}

	if placements == nil {
		placements = []models.Placement{}
	}

	return placements, total, nil
}
