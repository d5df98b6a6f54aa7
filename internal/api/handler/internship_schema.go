package handler

// internshipRequest carries the admin-managed fields of a listing. Empty
// fields keep their current (or default) values; isActive is a pointer so an
// explicit false can deactivate a listing.
type internshipRequest struct {
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	Icon                string   `json:"icon"`
	Description         string   `json:"description"`
	Tags                []string `json:"tags"`
	Category            string   `json:"category" validate:"omitempty,oneof=ALL TECH DESIGN BUSINESS MARKETING"`
	Duration            string   `json:"duration"`
	Stipend             string   `json:"stipend"`
	Type                string   `json:"type" validate:"omitempty,oneof=Remote Hybrid On-site"`
	Requirements        []string `json:"requirements"`
	Responsibilities    []string `json:"responsibilities"`
	IsActive            *bool    `json:"isActive"`
	ApplicationDeadline *string  `json:"applicationDeadline"` // RFC 3339
}
