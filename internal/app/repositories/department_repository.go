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

// departmentCodeMaxLen bounds the name-derived short code.
const departmentCodeMaxLen = 10

// DepartmentRepository handles department database operations. Department
// numbers are scoped: academic departments count within their college,
// administrative ones within the college-less scope.
type DepartmentRepository struct {
	db     *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	scheme numbering.Scheme
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(pool *pgxpool.Pool, scheme numbering.Scheme) *DepartmentRepository {
	return &DepartmentRepository{
		db:     pool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		scheme: scheme,
	}
}

// Scheme exposes the numbering scheme so callers can format numbers.
func (r *DepartmentRepository) Scheme() numbering.Scheme {
	return r.scheme
}

// Create inserts a new department, assigning the next free number inside
// its scope plus a unique short code derived from the name. Same retry
// contract as college creation: the (college_id, dep_no) and code unique
// constraints arbitrate races, the loser recomputes.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		id, err := r.tryCreate(ctx, department)
		if err == nil {
			department.ID = id
			return id, nil
		}
		if errors.Is(err, errCodeTaken) {
			logger.Warn().Int("attempt", attempt).Str("code", department.Code).
				Msg("Department numbering race lost, retrying")
			continue
		}
		return 0, err
	}

	return 0, fmt.Errorf("%w after %d attempts", apperrors.ErrCodeCollision, maxCodeAttempts)
}

func (r *DepartmentRepository) tryCreate(ctx context.Context, department *models.Department) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// Next number in the department's scope
		scopeSQL := `SELECT COALESCE(MAX(dep_no), 0) FROM departments WHERE college_id IS NULL`
		scopeArgs := []interface{}{}
		if department.CollegeID != nil {
			scopeSQL = `SELECT COALESCE(MAX(dep_no), 0) FROM departments WHERE college_id = $1`
			scopeArgs = append(scopeArgs, *department.CollegeID)
		}

		var current int
		if err := tx.QueryRow(ctx, scopeSQL, scopeArgs...).Scan(&current); err != nil {
			return fmt.Errorf("error reading current max department number: %w", err)
		}

		depNo, err := r.scheme.Next(current)
		if err != nil {
			if errors.Is(err, numbering.ErrExhausted) {
				return fmt.Errorf("%w: %v", apperrors.ErrCodeExhausted, err)
			}
			return err
		}
		department.DepNo = depNo

		// Unique short code from the name's initials
		base := numbering.Abbreviate(department.Name, departmentCodeMaxLen-1)
		if base == "" {
			return fmt.Errorf("%w: department name yields no code", apperrors.ErrValidationFailed)
		}

		existing, err := r.codesWithPrefix(ctx, tx, base)
		if err != nil {
			return err
		}
		department.Code = numbering.UniqueCode(base, existing)

		sql, args, err := r.sb.Insert("departments").
			Columns("dep_no", "code", "name", "dept_type", "college_id", "description").
			Values(department.DepNo, department.Code, department.Name, department.Type,
				department.CollegeID, department.Description).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create department query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return errCodeTaken
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrCollegeNotFound
			}
			return fmt.Errorf("error creating department: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// codesWithPrefix lists existing department codes starting with base,
// read inside the creation transaction.
func (r *DepartmentRepository) codesWithPrefix(ctx context.Context, tx pgx.Tx, base string) ([]string, error) {
	sql, args, err := r.sb.Select("code").
		From("departments").
		Where(squirrel.Like{"code": base + "%"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department code prefix query: %w", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying department codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning department code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "dep_no", "code", "name", "dept_type", "college_id", "description").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&department.ID, &department.DepNo, &department.Code, &department.Name,
		&department.Type, &department.CollegeID, &department.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}

	return department, nil
}

// GetAll retrieves all departments ordered by college scope and number
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select("id", "dep_no", "code", "name", "dept_type", "college_id", "description").
		From("departments").
		OrderBy("college_id ASC NULLS LAST", "dep_no ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.ID, &department.DepNo, &department.Code, &department.Name,
			&department.Type, &department.CollegeID, &department.Description); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Update updates the user-editable fields of a department. Number, code
// and college binding are fixed at creation.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		SetMap(map[string]interface{}{
			"name":        department.Name,
			"description": department.Description,
		}).
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID; its programs cascade.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
