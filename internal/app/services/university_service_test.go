package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/pkg/apperrors"
)

type UniversityServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memUniversityStore
	service UniversityService
}

func (s *UniversityServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemUniversityStore()
	s.service = NewUniversityService(s.store, nil)
}

func TestUniversityServiceSuite(t *testing.T) {
	suite.Run(t, new(UniversityServiceSuite))
}

func (s *UniversityServiceSuite) TestCreateAndGet() {
	location := "Baghdad"
	university := &models.University{Name: "University of Baghdad", Location: &location}

	id, err := s.service.Create(s.ctx, university)
	s.Require().NoError(err)
	s.Positive(id)

	found, err := s.service.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("University of Baghdad", found.Name)
	s.Require().NotNil(found.Location)
	s.Equal("Baghdad", *found.Location)
}

func (s *UniversityServiceSuite) TestCreateRequiresName() {
	for _, name := range []string{"", "   "} {
		_, err := s.service.Create(s.ctx, &models.University{Name: name})
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	}
}

func (s *UniversityServiceSuite) TestCreateDuplicateName() {
	_, err := s.service.Create(s.ctx, &models.University{Name: "University of Baghdad"})
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, &models.University{Name: "University of Baghdad"})
	s.ErrorIs(err, apperrors.ErrUniversityAlreadyExists)
}

func (s *UniversityServiceSuite) TestGetByIDMissing() {
	_, err := s.service.GetByID(s.ctx, 42)
	s.ErrorIs(err, apperrors.ErrUniversityNotFound)

	_, err = s.service.GetByID(s.ctx, 0)
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}

func (s *UniversityServiceSuite) TestGetAllOrdered() {
	_, err := s.service.Create(s.ctx, &models.University{Name: "Alpha University"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, &models.University{Name: "Beta University"})
	s.Require().NoError(err)

	all, err := s.service.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Alpha University", all[0].Name)
	s.Equal("Beta University", all[1].Name)
}

func (s *UniversityServiceSuite) TestUpdateValidates() {
	id, err := s.service.Create(s.ctx, &models.University{Name: "Alpha University"})
	s.Require().NoError(err)

	err = s.service.Update(s.ctx, &models.University{ID: id, Name: " "})
	s.ErrorIs(err, apperrors.ErrValidationFailed)

	err = s.service.Update(s.ctx, &models.University{ID: id, Name: "Alpha Tech University"})
	s.Require().NoError(err)

	updated, err := s.service.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Alpha Tech University", updated.Name)
}

func (s *UniversityServiceSuite) TestDetailLifecycle() {
	id, err := s.service.Create(s.ctx, &models.University{Name: "Alpha University"})
	s.Require().NoError(err)

	detailID, err := s.service.AddDetail(s.ctx, &models.UniversityDetail{
		UniversityID: id,
		Title:        "Founded",
		Subtitle:     "1957",
	})
	s.Require().NoError(err)

	details, err := s.service.GetDetails(s.ctx, id)
	s.Require().NoError(err)
	s.Len(details, 1)

	s.Require().NoError(s.service.RemoveDetail(s.ctx, id, detailID))

	details, err = s.service.GetDetails(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(details)
}

func (s *UniversityServiceSuite) TestAddDetailToMissingParent() {
	_, err := s.service.AddDetail(s.ctx, &models.UniversityDetail{
		UniversityID: 42,
		Title:        "Founded",
	})
	s.ErrorIs(err, apperrors.ErrUniversityNotFound)
}

func (s *UniversityServiceSuite) TestRemoveDetailMissing() {
	id, err := s.service.Create(s.ctx, &models.University{Name: "Alpha University"})
	s.Require().NoError(err)

	s.ErrorIs(s.service.RemoveDetail(s.ctx, id, 999), apperrors.ErrDetailNotFound)
}
