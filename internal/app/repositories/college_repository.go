package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/db"
	"github.com/murad/unidir/internal/numbering"
	"github.com/murad/unidir/internal/pkg/apperrors"
	"github.com/murad/unidir/internal/pkg/dberrors"
	"github.com/murad/unidir/internal/pkg/logger"
)

// errCodeTaken signals that the computed candidate code lost the insert
// race and the creation should recompute. Internal to the retry loop.
var errCodeTaken = errors.New("candidate code already taken")

// CollegeRepository handles college database operations, including the
// assignment of the unique numeric code at creation time.
type CollegeRepository struct {
	db     *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	scheme numbering.Scheme
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(pool *pgxpool.Pool, scheme numbering.Scheme) *CollegeRepository {
	return &CollegeRepository{
		db:     pool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		scheme: scheme,
	}
}

// Scheme exposes the numbering scheme so callers can format codes.
func (r *CollegeRepository) Scheme() numbering.Scheme {
	return r.scheme
}

// Create inserts a new college, assigning the next free code. The new ID
// is returned and also set on the model. The max-read and the insert run
// in one transaction; when a concurrent creation wins the race for the
// same code, the unique constraint rejects the insert and the whole
// computation is retried with a fresh read. After maxCodeAttempts the
// creation fails with ErrCodeCollision.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		id, err := r.tryCreate(ctx, college)
		if err == nil {
			college.ID = id
			return id, nil
		}
		if errors.Is(err, errCodeTaken) {
			logger.Warn().Int("attempt", attempt).Int("code", college.Code).
				Msg("College code race lost, retrying with fresh code")
			continue
		}
		return 0, err
	}

	return 0, fmt.Errorf("%w after %d attempts", apperrors.ErrCodeCollision, maxCodeAttempts)
}

func (r *CollegeRepository) tryCreate(ctx context.Context, college *models.College) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var current int
		if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(code), 0) FROM colleges`).Scan(&current); err != nil {
			return fmt.Errorf("error reading current max college code: %w", err)
		}

		code, err := r.scheme.Next(current)
		if err != nil {
			if errors.Is(err, numbering.ErrExhausted) {
				return fmt.Errorf("%w: %v", apperrors.ErrCodeExhausted, err)
			}
			return err
		}
		college.Code = code

		sql, args, err := r.sb.Insert("colleges").
			Columns("code", "name", "description").
			Values(college.Code, college.Name, college.Description).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create college query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return errCodeTaken
			}
			return fmt.Errorf("error creating college: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "description").
		From("colleges").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college := &models.College{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&college.ID, &college.Code, &college.Name, &college.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		logger.Error().Err(err).Int64("collegeID", id).Msg("Error scanning college row")
		return nil, fmt.Errorf("error getting college by ID: %w", err)
	}

	return college, nil
}

// GetByCode retrieves a college by its numeric code
func (r *CollegeRepository) GetByCode(ctx context.Context, code int) (*models.College, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "description").
		From("colleges").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get college by code query: %w", err)
	}

	college := &models.College{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&college.ID, &college.Code, &college.Name, &college.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error getting college by code: %w", err)
	}

	return college, nil
}

// GetAll retrieves all colleges ordered by code
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "description").
		From("colleges").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges := []*models.College{}
	for rows.Next() {
		college := &models.College{}
		if err := rows.Scan(&college.ID, &college.Code, &college.Name, &college.Description); err != nil {
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, nil
}

// Update updates the user-editable fields of a college. The code is fixed
// at creation and never written here.
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	sql, args, err := r.sb.Update("colleges").
		SetMap(map[string]interface{}{
			"name":        college.Name,
			"description": college.Description,
		}).
		Where(squirrel.Eq{"id": college.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update college query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeID", college.ID).Msg("Error executing update college query")
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// Delete deletes a college by ID; its details and departments cascade.
func (r *CollegeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("colleges").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete college query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeID", id).Msg("Error executing delete college query")
		return fmt.Errorf("error deleting college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// CreateDetail attaches a detail record to a college
func (r *CollegeRepository) CreateDetail(ctx context.Context, detail *models.CollegeDetail) (int64, error) {
	sql, args, err := r.sb.Insert("college_details").
		Columns("college_id", "title", "subtitle").
		Values(detail.CollegeID, detail.Title, detail.Subtitle).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create college detail query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCollegeNotFound
		}
		return 0, fmt.Errorf("error creating college detail: %w", err)
	}

	detail.ID = id
	return id, nil
}

// ListDetails retrieves the detail records owned by a college
func (r *CollegeRepository) ListDetails(ctx context.Context, collegeID int64) ([]*models.CollegeDetail, error) {
	sql, args, err := r.sb.Select("id", "college_id", "title", "subtitle").
		From("college_details").
		Where(squirrel.Eq{"college_id": collegeID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list college details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying college details: %w", err)
	}
	defer rows.Close()

	details := []*models.CollegeDetail{}
	for rows.Next() {
		detail := &models.CollegeDetail{}
		if err := rows.Scan(&detail.ID, &detail.CollegeID, &detail.Title, &detail.Subtitle); err != nil {
			return nil, fmt.Errorf("error scanning college detail row: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating college detail rows: %w", err)
	}

	return details, nil
}

// DeleteDetail removes a single detail record scoped to its parent college
func (r *CollegeRepository) DeleteDetail(ctx context.Context, collegeID, detailID int64) error {
	sql, args, err := r.sb.Delete("college_details").
		Where(squirrel.Eq{"id": detailID, "college_id": collegeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete college detail query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting college detail: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDetailNotFound
	}

	return nil
}
