package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/numbering"
	"github.com/murad/unidir/internal/pkg/apperrors"
	"github.com/murad/unidir/internal/pkg/logger"
)

// programStore is the storage surface the program service needs.
type programStore interface {
	Create(ctx context.Context, program *models.Program) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetAll(ctx context.Context) ([]*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
	Scheme() numbering.Scheme
}

// departmentLookup resolves parent departments for program validation.
type departmentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// ProgramService defines the interface for program-related operations
type ProgramService interface {
	Create(ctx context.Context, program *models.Program) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetAll(ctx context.Context) ([]*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
	// DisplayNumber renders a stored program number as its display string.
	DisplayNumber(number int) string
}

type programServiceImpl struct {
	store       programStore
	departments departmentLookup
	cache       *cache.Client
}

// NewProgramService creates a new program service instance
func NewProgramService(store programStore, departments departmentLookup, directoryCache *cache.Client) ProgramService {
	return &programServiceImpl{store: store, departments: departments, cache: directoryCache}
}

func (s *programServiceImpl) validateProgram(ctx context.Context, program *models.Program) error {
	if program == nil {
		return fmt.Errorf("%w: program is nil", apperrors.ErrValidationFailed)
	}
	program.Name = strings.TrimSpace(program.Name)
	if program.Name == "" {
		return fmt.Errorf("%w: program name is required", apperrors.ErrValidationFailed)
	}
	if !models.ValidDegreeType(program.DegreeType) {
		return fmt.Errorf("%w: unknown degree type %q", apperrors.ErrValidationFailed, program.DegreeType)
	}
	if program.DurationYears < 1 || program.DurationYears > 10 {
		return fmt.Errorf("%w: duration must be between 1 and 10 years", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *programServiceImpl) Create(ctx context.Context, program *models.Program) (int64, error) {
	if err := s.validateProgram(ctx, program); err != nil {
		return 0, err
	}
	if _, err := s.departments.GetByID(ctx, program.DepartmentID); err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, program)
	if err != nil {
		return 0, err
	}

	s.invalidateListing(ctx)
	return id, nil
}

func (s *programServiceImpl) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid program ID", apperrors.ErrValidationFailed)
	}
	return s.store.GetByID(ctx, id)
}

func (s *programServiceImpl) GetAll(ctx context.Context) ([]*models.Program, error) {
	var cached []*models.Program
	if err := s.cache.GetJSON(ctx, cache.KeyPrograms, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Msg("Program listing cache read failed, falling through to database")
	}

	programs, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyPrograms, programs); err != nil {
		logger.Warn().Err(err).Msg("Failed to populate program listing cache")
	}
	return programs, nil
}

func (s *programServiceImpl) Update(ctx context.Context, program *models.Program) error {
	if program == nil || program.ID <= 0 {
		return fmt.Errorf("%w: invalid program ID", apperrors.ErrValidationFailed)
	}
	if err := s.validateProgram(ctx, program); err != nil {
		return err
	}

	if err := s.store.Update(ctx, program); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *programServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid program ID", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *programServiceImpl) DisplayNumber(number int) string {
	return s.store.Scheme().Format(number)
}

func (s *programServiceImpl) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyPrograms); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate program listing cache")
	}
}
