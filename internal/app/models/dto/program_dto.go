package dto

// CreateProgramRequest carries the fields for creating a program.
// The program number is system-generated.
type CreateProgramRequest struct {
	Name          string  `json:"name" binding:"required"`
	DepartmentID  int64   `json:"department_id" binding:"required"`
	DegreeType    string  `json:"degree_type" binding:"required"`
	DurationYears int     `json:"duration_years" binding:"required,min=1,max=10"`
	StudySystem   string  `json:"study_system" binding:"required"`
	Description   *string `json:"description"`
}

// UpdateProgramRequest carries the user-editable program fields
type UpdateProgramRequest struct {
	Name          string  `json:"name" binding:"required"`
	DegreeType    string  `json:"degree_type" binding:"required"`
	DurationYears int     `json:"duration_years" binding:"required,min=1,max=10"`
	StudySystem   string  `json:"study_system" binding:"required"`
	Description   *string `json:"description"`
}

// ProgramResponse represents a program in API responses
type ProgramResponse struct {
	ID            int64   `json:"id"`
	Number        int     `json:"number"`
	DisplayNumber string  `json:"display_number"`
	Name          string  `json:"name"`
	DepartmentID  int64   `json:"department_id"`
	DegreeType    string  `json:"degree_type"`
	DurationYears int     `json:"duration_years"`
	StudySystem   string  `json:"study_system"`
	Description   *string `json:"description,omitempty"`
}
