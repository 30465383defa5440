package dto

// CreateDepartmentRequest carries the fields for creating a department.
// Both the department number and the short code are system-generated.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=academic administrative"`
	CollegeID   *int64  `json:"college_id"`
	Description *string `json:"description"`
}

// UpdateDepartmentRequest carries the user-editable department fields
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// DepartmentResponse represents a department in API responses.
// DisplayNo renders the department number inside its college scope
// (e.g. "12-01"), standalone for administrative departments.
type DepartmentResponse struct {
	ID          int64   `json:"id"`
	DepNo       int     `json:"dep_no"`
	DisplayNo   string  `json:"display_no"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	CollegeID   *int64  `json:"college_id,omitempty"`
	Description *string `json:"description,omitempty"`
}
