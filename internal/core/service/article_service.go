package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/ports"
)

// ArticleService serves the blog read surface.
type ArticleService struct {
	repo   ports.ArticleRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, cache CatalogCache, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, cache: cache, logger: logger}
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	var cached []domain.Article
	if found, err := s.cache.Get(ctx, cacheKeyArticles, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("article cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyArticles, articles, catalogCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("article cache write failed")
	}
	return articles, nil
}

// ListArticlesByCategory upper-cases the category label before filtering,
// matching how categories are stored.
func (s *ArticleService) ListArticlesByCategory(ctx context.Context, category string) ([]domain.Article, error) {
	return s.repo.ListByCategory(ctx, strings.ToUpper(strings.TrimSpace(category)))
}

func (s *ArticleService) SearchArticles(ctx context.Context, query string) ([]domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}
	return s.repo.Search(ctx, query)
}

func (s *ArticleService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}
