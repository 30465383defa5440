package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/pkg/apperrors"
	"github.com/murad/unidir/internal/pkg/logger"
)

// universityStore is the storage surface the university service needs.
type universityStore interface {
	Create(ctx context.Context, university *models.University) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	GetAll(ctx context.Context) ([]*models.University, error)
	Update(ctx context.Context, university *models.University) error
	Delete(ctx context.Context, id int64) error
	CreateDetail(ctx context.Context, detail *models.UniversityDetail) (int64, error)
	ListDetails(ctx context.Context, universityID int64) ([]*models.UniversityDetail, error)
	DeleteDetail(ctx context.Context, universityID, detailID int64) error
}

// UniversityService defines the interface for university-related operations
type UniversityService interface {
	Create(ctx context.Context, university *models.University) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	GetAll(ctx context.Context) ([]*models.University, error)
	Update(ctx context.Context, university *models.University) error
	Delete(ctx context.Context, id int64) error
	AddDetail(ctx context.Context, detail *models.UniversityDetail) (int64, error)
	GetDetails(ctx context.Context, universityID int64) ([]*models.UniversityDetail, error)
	RemoveDetail(ctx context.Context, universityID, detailID int64) error
}

type universityServiceImpl struct {
	store universityStore
	cache *cache.Client
}

// NewUniversityService creates a new university service instance
func NewUniversityService(store universityStore, directoryCache *cache.Client) UniversityService {
	return &universityServiceImpl{store: store, cache: directoryCache}
}

func validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}
	university.Name = strings.TrimSpace(university.Name)
	if university.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *universityServiceImpl) Create(ctx context.Context, university *models.University) (int64, error) {
	if err := validateUniversity(university); err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, university)
	if err != nil {
		return 0, err
	}

	s.invalidateListing(ctx)
	return id, nil
}

func (s *universityServiceImpl) GetByID(ctx context.Context, id int64) (*models.University, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}
	return s.store.GetByID(ctx, id)
}

func (s *universityServiceImpl) GetAll(ctx context.Context) ([]*models.University, error) {
	var cached []*models.University
	if err := s.cache.GetJSON(ctx, cache.KeyUniversities, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Msg("University listing cache read failed, falling through to database")
	}

	universities, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyUniversities, universities); err != nil {
		logger.Warn().Err(err).Msg("Failed to populate university listing cache")
	}
	return universities, nil
}

func (s *universityServiceImpl) Update(ctx context.Context, university *models.University) error {
	if err := validateUniversity(university); err != nil {
		return err
	}
	if university.ID <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	if err := s.store.Update(ctx, university); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *universityServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *universityServiceImpl) AddDetail(ctx context.Context, detail *models.UniversityDetail) (int64, error) {
	if detail == nil {
		return 0, fmt.Errorf("%w: detail is nil", apperrors.ErrValidationFailed)
	}
	detail.Title = strings.TrimSpace(detail.Title)
	if detail.Title == "" {
		return 0, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if detail.UniversityID <= 0 {
		return 0, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	return s.store.CreateDetail(ctx, detail)
}

func (s *universityServiceImpl) GetDetails(ctx context.Context, universityID int64) ([]*models.UniversityDetail, error) {
	if universityID <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	// Confirm the parent exists so an empty list is not conflated with a
	// missing university.
	if _, err := s.store.GetByID(ctx, universityID); err != nil {
		return nil, err
	}
	return s.store.ListDetails(ctx, universityID)
}

func (s *universityServiceImpl) RemoveDetail(ctx context.Context, universityID, detailID int64) error {
	if universityID <= 0 || detailID <= 0 {
		return fmt.Errorf("%w: invalid identifier", apperrors.ErrValidationFailed)
	}
	return s.store.DeleteDetail(ctx, universityID, detailID)
}

func (s *universityServiceImpl) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.KeyUniversities); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate university listing cache")
	}
}
