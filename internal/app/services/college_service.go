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

// collegeStore is the storage surface the college service needs.
type collegeStore interface {
	Create(ctx context.Context, college *models.College) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetByCode(ctx context.Context, code int) (*models.College, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id int64) error
	CreateDetail(ctx context.Context, detail *models.CollegeDetail) (int64, error)
	ListDetails(ctx context.Context, collegeID int64) ([]*models.CollegeDetail, error)
	DeleteDetail(ctx context.Context, collegeID, detailID int64) error
	Scheme() numbering.Scheme
}

// CollegeService defines the interface for college-related operations.
// Create assigns the unique numeric code; callers never supply one.
type CollegeService interface {
	Create(ctx context.Context, college *models.College) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetByCode(ctx context.Context, code int) (*models.College, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id int64) error
	AddDetail(ctx context.Context, detail *models.CollegeDetail) (int64, error)
	GetDetails(ctx context.Context, collegeID int64) ([]*models.CollegeDetail, error)
	RemoveDetail(ctx context.Context, collegeID, detailID int64) error
	// ValidateCode checks a code against the numbering scheme's range.
	ValidateCode(code int) error
	// DisplayCode renders a stored code as its display string.
	DisplayCode(code int) string
}

type collegeServiceImpl struct {
	store collegeStore
	cache *cache.Client
}

// NewCollegeService creates a new college service instance
func NewCollegeService(store collegeStore, directoryCache *cache.Client) CollegeService {
	return &collegeServiceImpl{store: store, cache: directoryCache}
}

// validateCollege enforces the pre-persist contract: the name must be
// non-empty after whitespace trimming, and a present code must fall inside
// the scheme's range.
func (s *collegeServiceImpl) validateCollege(college *models.College) error {
	if college == nil {
		return fmt.Errorf("%w: college is nil", apperrors.ErrValidationFailed)
	}
	college.Name = strings.TrimSpace(college.Name)
	if college.Name == "" {
		return fmt.Errorf("%w: college name is required", apperrors.ErrValidationFailed)
	}
	if college.Code != 0 {
		if err := s.store.Scheme().Validate(college.Code); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
		}
	}
	return nil
}

func (s *collegeServiceImpl) Create(ctx context.Context, college *models.College) (int64, error) {
	// The code is system-assigned; drop anything a caller smuggled in.
	if college != nil {
		college.Code = 0
	}
	if err := s.validateCollege(college); err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, college)
	if err != nil {
		return 0, err
	}

	s.invalidateListing(ctx)
	return id, nil
}

func (s *collegeServiceImpl) GetByID(ctx context.Context, id int64) (*models.College, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}
	return s.store.GetByID(ctx, id)
}

func (s *collegeServiceImpl) GetByCode(ctx context.Context, code int) (*models.College, error) {
	if err := s.ValidateCode(code); err != nil {
		return nil, err
	}
	return s.store.GetByCode(ctx, code)
}

func (s *collegeServiceImpl) GetAll(ctx context.Context) ([]*models.College, error) {
	var cached []*models.College
	if err := s.cache.GetJSON(ctx, cache.KeyColleges, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Msg("College listing cache read failed, falling through to database")
	}

	colleges, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyColleges, colleges); err != nil {
		logger.Warn().Err(err).Msg("Failed to populate college listing cache")
	}
	return colleges, nil
}

func (s *collegeServiceImpl) Update(ctx context.Context, college *models.College) error {
	if college == nil || college.ID <= 0 {
		return fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}
	// Code updates are not accepted; validate only the editable fields.
	college.Code = 0
	if err := s.validateCollege(college); err != nil {
		return err
	}

	if err := s.store.Update(ctx, college); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *collegeServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *collegeServiceImpl) AddDetail(ctx context.Context, detail *models.CollegeDetail) (int64, error) {
	if detail == nil {
		return 0, fmt.Errorf("%w: detail is nil", apperrors.ErrValidationFailed)
	}
	detail.Title = strings.TrimSpace(detail.Title)
	if detail.Title == "" {
		return 0, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if detail.CollegeID <= 0 {
		return 0, fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}

	return s.store.CreateDetail(ctx, detail)
}

func (s *collegeServiceImpl) GetDetails(ctx context.Context, collegeID int64) ([]*models.CollegeDetail, error) {
	if collegeID <= 0 {
		return nil, fmt.Errorf("%w: invalid college ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.store.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.store.ListDetails(ctx, collegeID)
}

func (s *collegeServiceImpl) RemoveDetail(ctx context.Context, collegeID, detailID int64) error {
	if collegeID <= 0 || detailID <= 0 {
		return fmt.Errorf("%w: invalid identifier", apperrors.ErrValidationFailed)
	}
	return s.store.DeleteDetail(ctx, collegeID, detailID)
}

func (s *collegeServiceImpl) ValidateCode(code int) error {
	if err := s.store.Scheme().Validate(code); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return nil
}

func (s *collegeServiceImpl) DisplayCode(code int) string {
	return s.store.Scheme().Format(code)
}

func (s *collegeServiceImpl) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyColleges); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate college listing cache")
	}
}
