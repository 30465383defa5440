package services

import (
	"context"
	"sort"
	"strings"

	"github.com/murad/unidir/internal/app/models"
	"github.com/murad/unidir/internal/numbering"
	"github.com/murad/unidir/internal/pkg/apperrors"
)

// In-memory stores mirroring the repository contracts, so service behavior
// can be exercised without a database.

type memUniversityStore struct {
	nextID  int64
	items   map[int64]*models.University
	details map[int64][]*models.UniversityDetail
}

func newMemUniversityStore() *memUniversityStore {
	return &memUniversityStore{
		items:   make(map[int64]*models.University),
		details: make(map[int64][]*models.UniversityDetail),
	}
}

func (m *memUniversityStore) Create(_ context.Context, university *models.University) (int64, error) {
	for _, u := range m.items {
		if strings.EqualFold(u.Name, university.Name) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
	}
	m.nextID++
	university.ID = m.nextID
	stored := *university
	m.items[university.ID] = &stored
	return university.ID, nil
}

func (m *memUniversityStore) GetByID(_ context.Context, id int64) (*models.University, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, apperrors.ErrUniversityNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUniversityStore) GetAll(_ context.Context) ([]*models.University, error) {
	out := make([]*models.University, 0, len(m.items))
	for _, u := range m.items {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUniversityStore) Update(_ context.Context, university *models.University) error {
	if _, ok := m.items[university.ID]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	stored := *university
	m.items[university.ID] = &stored
	return nil
}

func (m *memUniversityStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	delete(m.items, id)
	delete(m.details, id)
	return nil
}

func (m *memUniversityStore) CreateDetail(_ context.Context, detail *models.UniversityDetail) (int64, error) {
	if _, ok := m.items[detail.UniversityID]; !ok {
		return 0, apperrors.ErrUniversityNotFound
	}
	m.nextID++
	detail.ID = m.nextID
	stored := *detail
	m.details[detail.UniversityID] = append(m.details[detail.UniversityID], &stored)
	return detail.ID, nil
}

func (m *memUniversityStore) ListDetails(_ context.Context, universityID int64) ([]*models.UniversityDetail, error) {
	return m.details[universityID], nil
}

func (m *memUniversityStore) DeleteDetail(_ context.Context, universityID, detailID int64) error {
	list := m.details[universityID]
	for i, d := range list {
		if d.ID == detailID {
			m.details[universityID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrDetailNotFound
}

type memCollegeStore struct {
	nextID  int64
	scheme  numbering.Scheme
	items   map[int64]*models.College
	details map[int64][]*models.CollegeDetail
}

func newMemCollegeStore() *memCollegeStore {
	return &memCollegeStore{
		scheme:  numbering.CollegeScheme,
		items:   make(map[int64]*models.College),
		details: make(map[int64][]*models.CollegeDetail),
	}
}

func (m *memCollegeStore) Scheme() numbering.Scheme { return m.scheme }

func (m *memCollegeStore) Create(_ context.Context, college *models.College) (int64, error) {
	max := 0
	for _, c := range m.items {
		if c.Code > max {
			max = c.Code
		}
	}
	code, err := m.scheme.Next(max)
	if err != nil {
		return 0, apperrors.ErrCodeExhausted
	}
	m.nextID++
	college.ID = m.nextID
	college.Code = code
	stored := *college
	m.items[college.ID] = &stored
	return college.ID, nil
}

func (m *memCollegeStore) GetByID(_ context.Context, id int64) (*models.College, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memCollegeStore) GetByCode(_ context.Context, code int) (*models.College, error) {
	for _, c := range m.items {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (m *memCollegeStore) GetAll(_ context.Context) ([]*models.College, error) {
	out := make([]*models.College, 0, len(m.items))
	for _, c := range m.items {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *memCollegeStore) Update(_ context.Context, college *models.College) error {
	existing, ok := m.items[college.ID]
	if !ok {
		return apperrors.ErrCollegeNotFound
	}
	existing.Name = college.Name
	existing.Description = college.Description
	return nil
}

func (m *memCollegeStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return apperrors.ErrCollegeNotFound
	}
	delete(m.items, id)
	delete(m.details, id)
	return nil
}

func (m *memCollegeStore) CreateDetail(_ context.Context, detail *models.CollegeDetail) (int64, error) {
	if _, ok := m.items[detail.CollegeID]; !ok {
		return 0, apperrors.ErrCollegeNotFound
	}
	m.nextID++
	detail.ID = m.nextID
	stored := *detail
	m.details[detail.CollegeID] = append(m.details[detail.CollegeID], &stored)
	return detail.ID, nil
}

func (m *memCollegeStore) ListDetails(_ context.Context, collegeID int64) ([]*models.CollegeDetail, error) {
	return m.details[collegeID], nil
}

func (m *memCollegeStore) DeleteDetail(_ context.Context, collegeID, detailID int64) error {
	list := m.details[collegeID]
	for i, d := range list {
		if d.ID == detailID {
			m.details[collegeID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrDetailNotFound
}

type memDepartmentStore struct {
	nextID int64
	scheme numbering.Scheme
	items  map[int64]*models.Department
}

func newMemDepartmentStore() *memDepartmentStore {
	return &memDepartmentStore{
		scheme: numbering.DepartmentScheme,
		items:  make(map[int64]*models.Department),
	}
}

func (m *memDepartmentStore) Scheme() numbering.Scheme { return m.scheme }

func (m *memDepartmentStore) Create(_ context.Context, department *models.Department) (int64, error) {
	max := 0
	var existing []string
	for _, d := range m.items {
		if sameScope(d.CollegeID, department.CollegeID) && d.DepNo > max {
			max = d.DepNo
		}
		existing = append(existing, d.Code)
	}
	depNo, err := m.scheme.Next(max)
	if err != nil {
		return 0, apperrors.ErrCodeExhausted
	}

	base := numbering.Abbreviate(department.Name, 9)
	m.nextID++
	department.ID = m.nextID
	department.DepNo = depNo
	department.Code = numbering.UniqueCode(base, existing)
	stored := *department
	m.items[department.ID] = &stored
	return department.ID, nil
}

func sameScope(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (m *memDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *memDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(m.items))
	for _, d := range m.items {
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memDepartmentStore) Update(_ context.Context, department *models.Department) error {
	existing, ok := m.items[department.ID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	existing.Name = department.Name
	existing.Description = department.Description
	return nil
}

func (m *memDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(m.items, id)
	return nil
}

type memProgramStore struct {
	nextID int64
	scheme numbering.Scheme
	items  map[int64]*models.Program
}

func newMemProgramStore() *memProgramStore {
	return &memProgramStore{
		scheme: numbering.ProgramScheme,
		items:  make(map[int64]*models.Program),
	}
}

func (m *memProgramStore) Scheme() numbering.Scheme { return m.scheme }

func (m *memProgramStore) Create(_ context.Context, program *models.Program) (int64, error) {
	max := 0
	for _, p := range m.items {
		if p.Number > max {
			max = p.Number
		}
	}
	number, err := m.scheme.Next(max)
	if err != nil {
		return 0, apperrors.ErrCodeExhausted
	}
	m.nextID++
	program.ID = m.nextID
	program.Number = number
	stored := *program
	m.items[program.ID] = &stored
	return program.ID, nil
}

func (m *memProgramStore) GetByID(_ context.Context, id int64) (*models.Program, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, apperrors.ErrProgramNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *memProgramStore) GetAll(_ context.Context) ([]*models.Program, error) {
	out := make([]*models.Program, 0, len(m.items))
	for _, p := range m.items {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *memProgramStore) Update(_ context.Context, program *models.Program) error {
	existing, ok := m.items[program.ID]
	if !ok {
		return apperrors.ErrProgramNotFound
	}
	existing.Name = program.Name
	existing.DegreeType = program.DegreeType
	existing.DurationYears = program.DurationYears
	existing.StudySystem = program.StudySystem
	existing.Description = program.Description
	return nil
}

func (m *memProgramStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return apperrors.ErrProgramNotFound
	}
	delete(m.items, id)
	return nil
}
