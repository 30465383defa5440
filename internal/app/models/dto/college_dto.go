package dto

// CreateCollegeRequest carries the fields for creating a college.
// The code is system-generated and deliberately absent here.
type CreateCollegeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateCollegeRequest carries the user-editable college fields
type UpdateCollegeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CollegeResponse represents a college in API responses. DisplayCode is
// the formatted rendering of the numeric code (e.g. "01").
type CollegeResponse struct {
	ID          int64            `json:"id"`
	Code        int              `json:"code"`
	DisplayCode string           `json:"display_code"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Details     []DetailResponse `json:"details,omitempty"`
}
