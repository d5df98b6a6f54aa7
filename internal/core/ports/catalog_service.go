package ports

import (
	"context"

	"github.com/elevare/platform-api/internal/core/domain"
)

// CourseService exposes the read-only course catalog.
type CourseService interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	// ListCoursesByLevel normalises the level label before filtering
	// ("beginner" and "BEGINNER" both match Beginner).
	ListCoursesByLevel(ctx context.Context, level string) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
}

// InternshipInput carries the admin-managed fields of a listing.
type InternshipInput struct {
	Title               string
	Company             string
	Location            string
	Icon                string
	Description         string
	Tags                []string
	Category            string
	Duration            string
	Stipend             string
	Type                string
	Requirements        []string
	Responsibilities    []string
	IsActive            *bool
	ApplicationDeadline *string // RFC 3339, optional
}

// InternshipService exposes listings plus the admin management surface.
type InternshipService interface {
	ListInternships(ctx context.Context) ([]domain.Internship, error)
	GetInternship(ctx context.Context, id string) (*domain.Internship, error)
	CreateInternship(ctx context.Context, in InternshipInput) (*domain.Internship, error)
	UpdateInternship(ctx context.Context, id string, in InternshipInput) (*domain.Internship, error)
	DeleteInternship(ctx context.Context, id string) error
}

// ArticleService exposes the blog read surface.
type ArticleService interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListArticlesByCategory(ctx context.Context, category string) ([]domain.Article, error)
	SearchArticles(ctx context.Context, query string) ([]domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
}
