package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/pkg/apperrors"
)

type CollegeServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memCollegeStore
	service CollegeService
}

func (s *CollegeServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemCollegeStore()
	s.service = NewCollegeService(s.store, nil)
}

func TestCollegeServiceSuite(t *testing.T) {
	suite.Run(t, new(CollegeServiceSuite))
}

func (s *CollegeServiceSuite) TestCreateAssignsSequentialCodes() {
	first := &models.College{Name: "Engineering"}
	second := &models.College{Name: "Medicine"}

	_, err := s.service.Create(s.ctx, first)
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, second)
	s.Require().NoError(err)

	s.Equal(1, first.Code)
	s.Equal(2, second.Code)
}

func (s *CollegeServiceSuite) TestCreateIgnoresCallerSuppliedCode() {
	college := &models.College{Name: "Engineering", Code: 42}

	_, err := s.service.Create(s.ctx, college)
	s.Require().NoError(err)

	s.Equal(1, college.Code, "code must be system-assigned, not taken from the caller")
}

func (s *CollegeServiceSuite) TestCreateRequiresName() {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.service.Create(s.ctx, &models.College{Name: name})
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	}
}

func (s *CollegeServiceSuite) TestCreateTrimsName() {
	college := &models.College{Name: "  Engineering  "}

	_, err := s.service.Create(s.ctx, college)
	s.Require().NoError(err)
	s.Equal("Engineering", college.Name)
}

func (s *CollegeServiceSuite) TestGetByCodeValidatesRange() {
	_, err := s.service.GetByCode(s.ctx, 0)
	s.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = s.service.GetByCode(s.ctx, 100)
	s.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = s.service.GetByCode(s.ctx, 7)
	s.ErrorIs(err, apperrors.ErrCollegeNotFound)
}

func (s *CollegeServiceSuite) TestGetByCodeFindsCreated() {
	college := &models.College{Name: "Science"}
	_, err := s.service.Create(s.ctx, college)
	s.Require().NoError(err)

	found, err := s.service.GetByCode(s.ctx, college.Code)
	s.Require().NoError(err)
	s.Equal(college.ID, found.ID)
	s.Equal("Science", found.Name)
}

func (s *CollegeServiceSuite) TestDisplayCode() {
	s.Equal("01", s.service.DisplayCode(1))
	s.Equal("12", s.service.DisplayCode(12))
	s.Equal("99", s.service.DisplayCode(99))
	s.Equal("", s.service.DisplayCode(0), "absent code renders empty")
}

func (s *CollegeServiceSuite) TestDisplayCodeIsDeterministic() {
	for i := 0; i < 5; i++ {
		s.Equal("07", s.service.DisplayCode(7))
	}
}

func (s *CollegeServiceSuite) TestValidateCode() {
	s.NoError(s.service.ValidateCode(1))
	s.NoError(s.service.ValidateCode(99))
	s.ErrorIs(s.service.ValidateCode(0), apperrors.ErrValidationFailed)
	s.ErrorIs(s.service.ValidateCode(-3), apperrors.ErrValidationFailed)
	s.ErrorIs(s.service.ValidateCode(100), apperrors.ErrValidationFailed)
}

func (s *CollegeServiceSuite) TestUpdateKeepsCode() {
	college := &models.College{Name: "Engineering"}
	id, err := s.service.Create(s.ctx, college)
	s.Require().NoError(err)
	assigned := college.Code

	err = s.service.Update(s.ctx, &models.College{ID: id, Name: "Engineering and Technology", Code: 55})
	s.Require().NoError(err)

	updated, err := s.service.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Engineering and Technology", updated.Name)
	s.Equal(assigned, updated.Code, "updates must not touch the assigned code")
}

func (s *CollegeServiceSuite) TestUpdateRequiresName() {
	id, err := s.service.Create(s.ctx, &models.College{Name: "Engineering"})
	s.Require().NoError(err)

	err = s.service.Update(s.ctx, &models.College{ID: id, Name: "   "})
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}

func (s *CollegeServiceSuite) TestDeleteMissing() {
	s.ErrorIs(s.service.Delete(s.ctx, 123), apperrors.ErrCollegeNotFound)
}

func (s *CollegeServiceSuite) TestDetailLifecycle() {
	id, err := s.service.Create(s.ctx, &models.College{Name: "Engineering"})
	s.Require().NoError(err)

	detailID, err := s.service.AddDetail(s.ctx, &models.CollegeDetail{
		CollegeID: id,
		Title:     "Accreditation",
		Subtitle:  "ABET since 2019",
	})
	s.Require().NoError(err)

	details, err := s.service.GetDetails(s.ctx, id)
	s.Require().NoError(err)
	s.Len(details, 1)
	s.Equal("Accreditation", details[0].Title)

	s.Require().NoError(s.service.RemoveDetail(s.ctx, id, detailID))

	details, err = s.service.GetDetails(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(details)
}

func (s *CollegeServiceSuite) TestGetDetailsChecksParent() {
	_, err := s.service.GetDetails(s.ctx, 99)
	s.ErrorIs(err, apperrors.ErrCollegeNotFound)
}

func (s *CollegeServiceSuite) TestAddDetailRequiresTitle() {
	id, err := s.service.Create(s.ctx, &models.College{Name: "Engineering"})
	s.Require().NoError(err)

	_, err = s.service.AddDetail(s.ctx, &models.CollegeDetail{CollegeID: id, Title: "  "})
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}
