package models

// DegreeType defines the academic degree a program awards
type DegreeType string

const (
	DegreeDiploma  DegreeType = "Diploma"
	DegreeBachelor DegreeType = "BSc"
	DegreeMaster   DegreeType = "MSc"
	DegreePhD      DegreeType = "PhD"
)

// ValidDegreeType reports whether the given value is a known degree type.
func ValidDegreeType(d DegreeType) bool {
	switch d {
	case DegreeDiploma, DegreeBachelor, DegreeMaster, DegreePhD:
		return true
	}
	return false
}

// Program represents an academic program offered by a department.
// Number is assigned by the program numbering scheme at creation.
type Program struct {
	ID            int64      `json:"id"`
	Number        int        `json:"number"`
	Name          string     `json:"name"`
	DepartmentID  int64      `json:"department_id"`
	DegreeType    DegreeType `json:"degree_type"`
	DurationYears int        `json:"duration_years"`
	StudySystem   string     `json:"study_system"`
	Description   *string    `json:"description,omitempty"`
}
