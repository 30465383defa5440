package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/pkg/apperrors"
)

type DepartmentServiceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memDepartmentStore
	colleges *memCollegeStore
	service  DepartmentService
}

func (s *DepartmentServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemDepartmentStore()
	s.colleges = newMemCollegeStore()
	s.service = NewDepartmentService(s.store, s.colleges, nil)
}

func TestDepartmentServiceSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceSuite))
}

func (s *DepartmentServiceSuite) createCollege(name string) *models.College {
	college := &models.College{Name: name}
	_, err := s.colleges.Create(s.ctx, college)
	s.Require().NoError(err)
	return college
}

func (s *DepartmentServiceSuite) TestAcademicRequiresCollege() {
	_, err := s.service.Create(s.ctx, &models.Department{
		Name: "Computer Science",
		Type: models.DepartmentAcademic,
	})
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}

func (s *DepartmentServiceSuite) TestAcademicRequiresExistingCollege() {
	missing := int64(77)
	_, err := s.service.Create(s.ctx, &models.Department{
		Name:      "Computer Science",
		Type:      models.DepartmentAcademic,
		CollegeID: &missing,
	})
	s.ErrorIs(err, apperrors.ErrCollegeNotFound)
}

func (s *DepartmentServiceSuite) TestAdministrativeDropsCollege() {
	college := s.createCollege("Engineering")
	department := &models.Department{
		Name:      "Human Resources",
		Type:      models.DepartmentAdministrative,
		CollegeID: &college.ID,
	}

	_, err := s.service.Create(s.ctx, department)
	s.Require().NoError(err)
	s.Nil(department.CollegeID, "administrative departments stand outside colleges")
}

func (s *DepartmentServiceSuite) TestUnknownTypeRejected() {
	_, err := s.service.Create(s.ctx, &models.Department{
		Name: "Mystery",
		Type: models.DepartmentType("technical"),
	})
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}

func (s *DepartmentServiceSuite) TestNumberingScopedByCollege() {
	engineering := s.createCollege("Engineering")
	science := s.createCollege("Science")

	a := &models.Department{Name: "Civil Engineering", Type: models.DepartmentAcademic, CollegeID: &engineering.ID}
	b := &models.Department{Name: "Electrical Engineering", Type: models.DepartmentAcademic, CollegeID: &engineering.ID}
	c := &models.Department{Name: "Physics", Type: models.DepartmentAcademic, CollegeID: &science.ID}

	for _, d := range []*models.Department{a, b, c} {
		_, err := s.service.Create(s.ctx, d)
		s.Require().NoError(err)
	}

	s.Equal(1, a.DepNo)
	s.Equal(2, b.DepNo)
	s.Equal(1, c.DepNo, "each college numbers its departments from 1")
}

func (s *DepartmentServiceSuite) TestCodeSuffixOnCollision() {
	college := s.createCollege("Engineering")

	first := &models.Department{Name: "Computer Science", Type: models.DepartmentAcademic, CollegeID: &college.ID}
	second := &models.Department{Name: "Cognitive Science", Type: models.DepartmentAcademic, CollegeID: &college.ID}
	third := &models.Department{Name: "Climate Studies", Type: models.DepartmentAcademic, CollegeID: &college.ID}

	for _, d := range []*models.Department{first, second, third} {
		_, err := s.service.Create(s.ctx, d)
		s.Require().NoError(err)
	}

	s.Equal("CS", first.Code)
	s.Equal("CS1", second.Code)
	s.Equal("CS2", third.Code)
}

func (s *DepartmentServiceSuite) TestDisplayNoWithCollegePrefix() {
	college := s.createCollege("Engineering")
	department := &models.Department{Name: "Civil Engineering", Type: models.DepartmentAcademic, CollegeID: &college.ID}

	_, err := s.service.Create(s.ctx, department)
	s.Require().NoError(err)

	display, err := s.service.DisplayNo(s.ctx, department)
	s.Require().NoError(err)
	s.Equal("01-01", display)
}

func (s *DepartmentServiceSuite) TestDisplayNoStandalone() {
	department := &models.Department{Name: "Human Resources", Type: models.DepartmentAdministrative}

	_, err := s.service.Create(s.ctx, department)
	s.Require().NoError(err)

	display, err := s.service.DisplayNo(s.ctx, department)
	s.Require().NoError(err)
	s.Equal("01", display)
}

func (s *DepartmentServiceSuite) TestCreateRequiresName() {
	_, err := s.service.Create(s.ctx, &models.Department{Name: "  ", Type: models.DepartmentAdministrative})
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}
