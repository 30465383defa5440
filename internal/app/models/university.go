package models

// University represents a university in the directory
type University struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// UniversityDetail is a titled detail record owned by a university.
// Details are cascade-deleted with their parent.
type UniversityDetail struct {
	ID           int64  `json:"id"`
	UniversityID int64  `json:"university_id"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
}
