package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/ports"
)

// CourseService serves the read-only course catalog, with a read-through
// cache on the full listing.
type CourseService struct {
	repo   ports.CourseRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache CatalogCache, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var cached []domain.Course
	if found, err := s.cache.Get(ctx, cacheKeyCourses, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("course cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyCourses, courses, catalogCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("course cache write failed")
	}
	return courses, nil
}

// ListCoursesByLevel normalises the label so path params like "beginner" or
// "BEGINNER" match the stored "Beginner".
func (s *CourseService) ListCoursesByLevel(ctx context.Context, level string) ([]domain.Course, error) {
	normalized := normalizeLevel(level)
	if !normalized.Valid() {
		return nil, fmt.Errorf("%w: invalid level %q", domain.ErrValidation, level)
	}
	return s.repo.ListByLevel(ctx, normalized)
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func normalizeLevel(level string) domain.CourseLevel {
	level = strings.TrimSpace(level)
	if level == "" {
		return ""
	}
	return domain.CourseLevel(strings.ToUpper(level[:1]) + strings.ToLower(level[1:]))
}
