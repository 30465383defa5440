package models

// DepartmentType defines the kind of department
type DepartmentType string

const (
	DepartmentAcademic       DepartmentType = "academic"
	DepartmentAdministrative DepartmentType = "administrative"
)

// Department represents an academic or administrative department.
// DepNo is assigned from the per-college numbering scope; Code is derived
// from the name's initials and kept unique with a numeric suffix.
type Department struct {
	ID          int64          `json:"id"`
	DepNo       int            `json:"dep_no"`
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Type        DepartmentType `json:"type"`
	CollegeID   *int64         `json:"college_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	College     *College       `json:"college,omitempty"`
}
