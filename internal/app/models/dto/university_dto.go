package dto

// CreateUniversityRequest carries the fields for creating a university
type CreateUniversityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

// UpdateUniversityRequest carries the fields for updating a university
type UpdateUniversityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

// UniversityResponse represents a university in API responses
type UniversityResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Details     []DetailResponse `json:"details,omitempty"`
}

// CreateDetailRequest carries the fields for attaching a detail record
// to a university or college.
type CreateDetailRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
}

// DetailResponse represents a detail record in API responses
type DetailResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
