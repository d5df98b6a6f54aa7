package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/ports"
)

// InternshipService serves internship listings and the admin management
// surface. Listing reads go through the cache; every admin mutation
// invalidates it.
type InternshipService struct {
	repo   ports.InternshipRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewInternshipService(repo ports.InternshipRepository, cache CatalogCache, logger zerolog.Logger) *InternshipService {
	return &InternshipService{repo: repo, cache: cache, logger: logger}
}

func (s *InternshipService) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	var cached []domain.Internship
	if found, err := s.cache.Get(ctx, cacheKeyInternships, &cached); err != nil {
		s.logger.Warn().Err(err).Msg("internship cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	listings, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyInternships, listings, catalogCacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("internship cache write failed")
	}
	return listings, nil
}

func (s *InternshipService) GetInternship(ctx context.Context, id string) (*domain.Internship, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InternshipService) CreateInternship(ctx context.Context, in ports.InternshipInput) (*domain.Internship, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if in.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}

	listing := &domain.Internship{
		Title:            in.Title,
		Company:          in.Company,
		Location:         in.Location,
		Icon:             "💼",
		Description:      in.Description,
		Tags:             in.Tags,
		Category:         domain.CategoryAll,
		Duration:         "3 months",
		Stipend:          "Unpaid",
		Type:             domain.WorkRemote,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		IsActive:         true,
		PostedDate:       time.Now().UTC(),
	}
	if err := applyInternshipInput(listing, in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create internship")
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("internship_id", created.ID).Str("company", created.Company).Msg("internship created")
	return created, nil
}

func (s *InternshipService) UpdateInternship(ctx context.Context, id string, in ports.InternshipInput) (*domain.Internship, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		listing.Title = in.Title
	}
	if in.Company != "" {
		listing.Company = in.Company
	}
	if in.Location != "" {
		listing.Location = in.Location
	}
	if in.Description != "" {
		listing.Description = in.Description
	}
	if in.Tags != nil {
		listing.Tags = in.Tags
	}
	if in.Requirements != nil {
		listing.Requirements = in.Requirements
	}
	if in.Responsibilities != nil {
		listing.Responsibilities = in.Responsibilities
	}
	if err := applyInternshipInput(listing, in); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, listing)
	if err != nil {
		s.logger.Error().Err(err).Str("internship_id", id).Msg("failed to update internship")
		return nil, err
	}

	s.invalidateListing(ctx)
	return updated, nil
}

func (s *InternshipService) DeleteInternship(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListing(ctx)
	s.logger.Info().Str("internship_id", id).Msg("internship deleted")
	return nil
}

// applyInternshipInput handles the optional, validated fields shared by
// create and update.
func applyInternshipInput(listing *domain.Internship, in ports.InternshipInput) error {
	if in.Icon != "" {
		listing.Icon = in.Icon
	}
	if in.Category != "" {
		cat := domain.InternshipCategory(in.Category)
		if !cat.Valid() {
			return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, in.Category)
		}
		listing.Category = cat
	}
	if in.Duration != "" {
		listing.Duration = in.Duration
	}
	if in.Stipend != "" {
		listing.Stipend = in.Stipend
	}
	if in.Type != "" {
		wt := domain.WorkType(in.Type)
		if !wt.Valid() {
			return fmt.Errorf("%w: invalid type %q", domain.ErrValidation, in.Type)
		}
		listing.Type = wt
	}
	if in.IsActive != nil {
		listing.IsActive = *in.IsActive
	}
	if in.ApplicationDeadline != nil && *in.ApplicationDeadline != "" {
		deadline, err := time.Parse(time.RFC3339, *in.ApplicationDeadline)
		if err != nil {
			return fmt.Errorf("%w: applicationDeadline must be RFC 3339", domain.ErrValidation)
		}
		deadline = deadline.UTC()
		listing.ApplicationDeadline = &deadline
	}
	return nil
}

func (s *InternshipService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheKeyInternships); err != nil {
		s.logger.Warn().Err(err).Msg("internship cache invalidation failed")
	}
}
