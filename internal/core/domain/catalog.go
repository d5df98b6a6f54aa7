package domain

import "time"

// CourseLevel is the difficulty tier of a catalog course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a catalog entry users can browse and enroll in.
type Course struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Icon        string      `json:"icon" bson:"icon"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Duration    string      `json:"duration" bson:"duration"`
	Level       CourseLevel `json:"level" bson:"level"`
	EnrollURL   string      `json:"enrollUrl" bson:"enroll_url"`
	CreatedAt   time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updated_at"`
}

// InternshipCategory filters listings on the internships page.
type InternshipCategory string

const (
	CategoryAll       InternshipCategory = "ALL"
	CategoryTech      InternshipCategory = "TECH"
	CategoryDesign    InternshipCategory = "DESIGN"
	CategoryBusiness  InternshipCategory = "BUSINESS"
	CategoryMarketing InternshipCategory = "MARKETING"
)

func (c InternshipCategory) Valid() bool {
	switch c {
	case CategoryAll, CategoryTech, CategoryDesign, CategoryBusiness, CategoryMarketing:
		return true
	}
	return false
}

// WorkType is the working arrangement of an internship.
type WorkType string

const (
	WorkRemote WorkType = "Remote"
	WorkHybrid WorkType = "Hybrid"
	WorkOnSite WorkType = "On-site"
)

func (t WorkType) Valid() bool {
	switch t {
	case WorkRemote, WorkHybrid, WorkOnSite:
		return true
	}
	return false
}

// Internship is a catalog listing users can apply to.
type Internship struct {
	ID                  string             `json:"id" bson:"_id,omitempty"`
	Title               string             `json:"title" bson:"title"`
	Company             string             `json:"company" bson:"company"`
	Location            string             `json:"location" bson:"location"`
	Icon                string             `json:"icon" bson:"icon"`
	Description         string             `json:"description" bson:"description"`
	Tags                []string           `json:"tags" bson:"tags"`
	Category            InternshipCategory `json:"category" bson:"category"`
	Duration            string             `json:"duration" bson:"duration"`
	Stipend             string             `json:"stipend" bson:"stipend"`
	Type                WorkType           `json:"type" bson:"type"`
	Requirements        []string           `json:"requirements" bson:"requirements"`
	Responsibilities    []string           `json:"responsibilities" bson:"responsibilities"`
	IsActive            bool               `json:"isActive" bson:"is_active"`
	PostedDate          time.Time          `json:"postedDate" bson:"posted_date"`
	ApplicationDeadline *time.Time         `json:"applicationDeadline,omitempty" bson:"application_deadline,omitempty"`
	CreatedAt           time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Article is one blog post shown on the blog page.
type Article struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Icon      string    `json:"icon" bson:"icon"`
	Category  string    `json:"category" bson:"category"`
	Title     string    `json:"title" bson:"title"`
	Excerpt   string    `json:"excerpt" bson:"excerpt"`
	Author    string    `json:"author" bson:"author"`
	Date      string    `json:"date" bson:"date"`
	URL       string    `json:"url" bson:"url"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
