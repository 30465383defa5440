package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/pkg/apperrors"
)

type ProgramServiceSuite struct {
	suite.Suite
	ctx         context.Context
	store       *memProgramStore
	departments *memDepartmentStore
	service     ProgramService
}

func (s *ProgramServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemProgramStore()
	s.departments = newMemDepartmentStore()
	s.service = NewProgramService(s.store, s.departments, nil)
}

func TestProgramServiceSuite(t *testing.T) {
	suite.Run(t, new(ProgramServiceSuite))
}

func (s *ProgramServiceSuite) createDepartment(name string) *models.Department {
	department := &models.Department{Name: name, Type: models.DepartmentAdministrative}
	_, err := s.departments.Create(s.ctx, department)
	s.Require().NoError(err)
	return department
}

func (s *ProgramServiceSuite) TestCreateAssignsNumber() {
	department := s.createDepartment("Computer Science")

	first := &models.Program{Name: "Software Engineering", DepartmentID: department.ID, DegreeType: models.DegreeBachelor, DurationYears: 4}
	second := &models.Program{Name: "Data Science", DepartmentID: department.ID, DegreeType: models.DegreeMaster, DurationYears: 2}

	_, err := s.service.Create(s.ctx, first)
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, second)
	s.Require().NoError(err)

	s.Equal(1, first.Number)
	s.Equal(2, second.Number)
}

func (s *ProgramServiceSuite) TestCreateRequiresExistingDepartment() {
	_, err := s.service.Create(s.ctx, &models.Program{
		Name:          "Software Engineering",
		DepartmentID:  42,
		DegreeType:    models.DegreeBachelor,
		DurationYears: 4,
	})
	s.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

func (s *ProgramServiceSuite) TestCreateValidates() {
	department := s.createDepartment("Computer Science")

	cases := []struct {
		name    string
		program *models.Program
	}{
		{"blank name", &models.Program{Name: " ", DepartmentID: department.ID, DegreeType: models.DegreeBachelor, DurationYears: 4}},
		{"unknown degree", &models.Program{Name: "SE", DepartmentID: department.ID, DegreeType: models.DegreeType("Certificate"), DurationYears: 4}},
		{"zero duration", &models.Program{Name: "SE", DepartmentID: department.ID, DegreeType: models.DegreeBachelor, DurationYears: 0}},
		{"excessive duration", &models.Program{Name: "SE", DepartmentID: department.ID, DegreeType: models.DegreeBachelor, DurationYears: 11}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Create(s.ctx, tc.program)
			s.ErrorIs(err, apperrors.ErrValidationFailed)
		})
	}
}

func (s *ProgramServiceSuite) TestDisplayNumber() {
	s.Equal("001", s.service.DisplayNumber(1))
	s.Equal("042", s.service.DisplayNumber(42))
	s.Equal("999", s.service.DisplayNumber(999))
	s.Equal("", s.service.DisplayNumber(0))
}

func (s *ProgramServiceSuite) TestUpdateKeepsNumber() {
	department := s.createDepartment("Computer Science")
	program := &models.Program{Name: "Software Engineering", DepartmentID: department.ID, DegreeType: models.DegreeBachelor, DurationYears: 4}
	id, err := s.service.Create(s.ctx, program)
	s.Require().NoError(err)

	err = s.service.Update(s.ctx, &models.Program{
		ID:            id,
		Name:          "Software Systems",
		DepartmentID:  department.ID,
		DegreeType:    models.DegreeBachelor,
		DurationYears: 5,
		Number:        500,
	})
	s.Require().NoError(err)

	updated, err := s.service.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Software Systems", updated.Name)
	s.Equal(program.Number, updated.Number)
}
