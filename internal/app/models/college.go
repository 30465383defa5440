package models

// College represents a college within the directory. Code is assigned by
// the numbering scheme at creation and is never user-supplied.
type College struct {
	ID          int64   `json:"id"`
	Code        int     `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CollegeDetail is a titled detail record owned by a college.
// Details are cascade-deleted with their parent.
type CollegeDetail struct {
	ID        int64  `json:"id"`
	CollegeID int64  `json:"college_id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
}
