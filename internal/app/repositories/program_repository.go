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

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db     *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	scheme numbering.Scheme
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(pool *pgxpool.Pool, scheme numbering.Scheme) *ProgramRepository {
	return &ProgramRepository{
		db:     pool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		scheme: scheme,
	}
}

// Scheme exposes the numbering scheme so callers can format numbers.
func (r *ProgramRepository) Scheme() numbering.Scheme {
	return r.scheme
}

// Create inserts a new program, assigning the next free number under the
// same retry contract as college creation.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (int64, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		id, err := r.tryCreate(ctx, program)
		if err == nil {
			program.ID = id
			return id, nil
		}
		if errors.Is(err, errCodeTaken) {
			logger.Warn().Int("attempt", attempt).Int("number", program.Number).
				Msg("Program number race lost, retrying")
			continue
		}
		return 0, err
	}

	return 0, fmt.Errorf("%w after %d attempts", apperrors.ErrCodeCollision, maxCodeAttempts)
}

func (r *ProgramRepository) tryCreate(ctx context.Context, program *models.Program) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var current int
		if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(number), 0) FROM programs`).Scan(&current); err != nil {
			return fmt.Errorf("error reading current max program number: %w", err)
		}

		number, err := r.scheme.Next(current)
		if err != nil {
			if errors.Is(err, numbering.ErrExhausted) {
				return fmt.Errorf("%w: %v", apperrors.ErrCodeExhausted, err)
			}
			return err
		}
		program.Number = number

		sql, args, err := r.sb.Insert("programs").
			Columns("number", "name", "department_id", "degree_type", "duration_years", "study_system", "description").
			Values(program.Number, program.Name, program.DepartmentID, program.DegreeType,
				program.DurationYears, program.StudySystem, program.Description).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create program query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return errCodeTaken
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrDepartmentNotFound
			}
			return fmt.Errorf("error creating program: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select("id", "number", "name", "department_id", "degree_type",
		"duration_years", "study_system", "description").
		From("programs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&program.ID, &program.Number, &program.Name, &program.DepartmentID,
		&program.DegreeType, &program.DurationYears, &program.StudySystem, &program.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error getting program by ID: %w", err)
	}

	return program, nil
}

// GetAll retrieves all programs ordered by number
func (r *ProgramRepository) GetAll(ctx context.Context) ([]*models.Program, error) {
	sql, args, err := r.sb.Select("id", "number", "name", "department_id", "degree_type",
		"duration_years", "study_system", "description").
		From("programs").
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program := &models.Program{}
		if err := rows.Scan(&program.ID, &program.Number, &program.Name, &program.DepartmentID,
			&program.DegreeType, &program.DurationYears, &program.StudySystem, &program.Description); err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// Update updates the user-editable fields of a program. The number is
// fixed at creation.
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	sql, args, err := r.sb.Update("programs").
		SetMap(map[string]interface{}{
			"name":           program.Name,
			"degree_type":    program.DegreeType,
			"duration_years": program.DurationYears,
			"study_system":   program.StudySystem,
			"description":    program.Description,
		}).
		Where(squirrel.Eq{"id": program.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Delete deletes a program by ID
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", id).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}
