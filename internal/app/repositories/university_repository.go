package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/pkg/apperrors"
	"github.com/murad/unidir/internal/pkg/dberrors"
	"github.com/murad/unidir/internal/pkg/logger"
)

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new university
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "description", "location").
		Values(university.Name, university.Description, university.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}

	university.ID = id
	return id, nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "location").
		From("universities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university := &models.University{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&university.ID, &university.Name, &university.Description, &university.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}

	return university, nil
}

// GetAll retrieves all universities ordered by name
func (r *UniversityRepository) GetAll(ctx context.Context) ([]*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "location").
		From("universities").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		university := &models.University{}
		if err := rows.Scan(&university.ID, &university.Name, &university.Description, &university.Location); err != nil {
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, university)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// Update updates an existing university
func (r *UniversityRepository) Update(ctx context.Context, university *models.University) error {
	sql, args, err := r.sb.Update("universities").
		SetMap(map[string]interface{}{
			"name":        university.Name,
			"description": university.Description,
			"location":    university.Location,
		}).
		Where(squirrel.Eq{"id": university.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Int64("universityID", university.ID).Msg("Error executing update university query")
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Delete deletes a university by ID. Detail records go with it through
// the ON DELETE CASCADE constraint.
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("universities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error executing delete university query")
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// CreateDetail attaches a detail record to a university
func (r *UniversityRepository) CreateDetail(ctx context.Context, detail *models.UniversityDetail) (int64, error) {
	sql, args, err := r.sb.Insert("university_details").
		Columns("university_id", "title", "subtitle").
		Values(detail.UniversityID, detail.Title, detail.Subtitle).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create university detail query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUniversityNotFound
		}
		return 0, fmt.Errorf("error creating university detail: %w", err)
	}

	detail.ID = id
	return id, nil
}

// ListDetails retrieves the detail records owned by a university
func (r *UniversityRepository) ListDetails(ctx context.Context, universityID int64) ([]*models.UniversityDetail, error) {
	sql, args, err := r.sb.Select("id", "university_id", "title", "subtitle").
		From("university_details").
		Where(squirrel.Eq{"university_id": universityID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list university details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying university details: %w", err)
	}
	defer rows.Close()

	details := []*models.UniversityDetail{}
	for rows.Next() {
		detail := &models.UniversityDetail{}
		if err := rows.Scan(&detail.ID, &detail.UniversityID, &detail.Title, &detail.Subtitle); err != nil {
			return nil, fmt.Errorf("error scanning university detail row: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university detail rows: %w", err)
	}

	return details, nil
}

// DeleteDetail removes a single detail record; the parent scope guards
// against deleting another university's detail.
func (r *UniversityRepository) DeleteDetail(ctx context.Context, universityID, detailID int64) error {
	sql, args, err := r.sb.Delete("university_details").
		Where(squirrel.Eq{"id": detailID, "university_id": universityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete university detail query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting university detail: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDetailNotFound
	}

	return nil
}
