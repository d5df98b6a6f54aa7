package ports

import (
	"context"

	"github.com/elevare/platform-api/internal/core/domain"
)

// CourseRepository reads the course catalog.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	ListByLevel(ctx context.Context, level domain.CourseLevel) ([]domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
}

// InternshipRepository manages internship listings.
type InternshipRepository interface {
	// ListActive returns active listings, newest posting first.
	ListActive(ctx context.Context) ([]domain.Internship, error)
	FindByID(ctx context.Context, id string) (*domain.Internship, error)
	Create(ctx context.Context, in *domain.Internship) (*domain.Internship, error)
	Update(ctx context.Context, id string, in *domain.Internship) (*domain.Internship, error)
	Delete(ctx context.Context, id string) error
}

// ArticleRepository reads the blog.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Article, error)
	// Search matches query case-insensitively against title, excerpt and category.
	Search(ctx context.Context, query string) ([]domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
}
