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

// departmentStore is the storage surface the department service needs.
type departmentStore interface {
	Create(ctx context.Context, department *models.Department) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	Scheme() numbering.Scheme
}

// collegeLookup is the slice of the college store the department service
// needs to resolve parent colleges.
type collegeLookup interface {
	GetByID(ctx context.Context, id int64) (*models.College, error)
}

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	Create(ctx context.Context, department *models.Department) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	// DisplayNo renders a department number inside its college scope.
	DisplayNo(ctx context.Context, department *models.Department) (string, error)
}

type departmentServiceImpl struct {
	store    departmentStore
	colleges collegeLookup
	cache    *cache.Client
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(store departmentStore, colleges collegeLookup, directoryCache *cache.Client) DepartmentService {
	return &departmentServiceImpl{store: store, colleges: colleges, cache: directoryCache}
}

func (s *departmentServiceImpl) validateDepartment(ctx context.Context, department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}
	department.Name = strings.TrimSpace(department.Name)
	if department.Name == "" {
		return fmt.Errorf("%w: department name is required", apperrors.ErrValidationFailed)
	}

	switch department.Type {
	case models.DepartmentAcademic:
		if department.CollegeID == nil {
			return fmt.Errorf("%w: academic departments require a college", apperrors.ErrValidationFailed)
		}
		if _, err := s.colleges.GetByID(ctx, *department.CollegeID); err != nil {
			return err
		}
	case models.DepartmentAdministrative:
		// Administrative departments stand outside any college.
		department.CollegeID = nil
	default:
		return fmt.Errorf("%w: unknown department type %q", apperrors.ErrValidationFailed, department.Type)
	}

	return nil
}

func (s *departmentServiceImpl) Create(ctx context.Context, department *models.Department) (int64, error) {
	if err := s.validateDepartment(ctx, department); err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, department)
	if err != nil {
		return 0, err
	}

	s.invalidateListing(ctx)
	return id, nil
}

func (s *departmentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}
	return s.store.GetByID(ctx, id)
}

func (s *departmentServiceImpl) GetAll(ctx context.Context) ([]*models.Department, error) {
	var cached []*models.Department
	if err := s.cache.GetJSON(ctx, cache.KeyDepartments, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Msg("Department listing cache read failed, falling through to database")
	}

	departments, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyDepartments, departments); err != nil {
		logger.Warn().Err(err).Msg("Failed to populate department listing cache")
	}
	return departments, nil
}

func (s *departmentServiceImpl) Update(ctx context.Context, department *models.Department) error {
	if department == nil || department.ID <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}
	department.Name = strings.TrimSpace(department.Name)
	if department.Name == "" {
		return fmt.Errorf("%w: department name is required", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, department); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *departmentServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

// DisplayNo renders the department number with its college code as prefix
// for academic departments ("12-01"), standalone otherwise ("01").
func (s *departmentServiceImpl) DisplayNo(ctx context.Context, department *models.Department) (string, error) {
	if department == nil {
		return "", fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}
	if department.CollegeID == nil {
		return s.store.Scheme().Format(department.DepNo), nil
	}

	college, err := s.colleges.GetByID(ctx, *department.CollegeID)
	if err != nil {
		return "", err
	}
	return s.store.Scheme().FormatScoped(college.Code, department.DepNo), nil
}

func (s *departmentServiceImpl) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyDepartments); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate department listing cache")
	}
}
