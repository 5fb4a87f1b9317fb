package catalog

import (
	"context"
	"fmt"
	"strings"

	"art-auction/internal/biddingerrors"
	"art-auction/internal/models"
	"art-auction/utils"
)

// CreateArtist validates and stores a new artist
func (s *CatalogService) CreateArtist(ctx context.Context, a models.Artist) (models.Artist, error) {
	if err := validateArtist(a); err != nil {
		return models.Artist{}, err
	}

	now := s.now()
	a.ArtistID = utils.GenerateID()
	a.IsDeleted = false
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.catalog.CreateArtist(ctx, a); err != nil {
		return models.Artist{}, fmt.Errorf("catalog: failed to create artist: %w", err)
	}
	return a, nil
}

// GetArtist returns a non-deleted artist
func (s *CatalogService) GetArtist(ctx context.Context, artistID string) (models.Artist, error) {
	if artistID == "" {
		return models.Artist{}, fmt.Errorf("catalog: %w - empty artist ID", biddingerrors.ErrInvalidInput)
	}
	a, err := s.catalog.GetArtist(ctx, artistID)
	if err != nil {
		return models.Artist{}, fmt.Errorf("catalog: failed to get artist %s: %w", artistID, err)
	}
	return a, nil
}

// UpdateArtist replaces a non-deleted artist
func (s *CatalogService) UpdateArtist(ctx context.Context, artistID string, a models.Artist) (models.Artist, error) {
	if err := validateArtist(a); err != nil {
		return models.Artist{}, err
	}

	existing, err := s.GetArtist(ctx, artistID)
	if err != nil {
		return models.Artist{}, err
	}

	a.ArtistID = artistID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = s.now()
	if err := s.catalog.UpdateArtist(ctx, a); err != nil {
		return models.Artist{}, fmt.Errorf("catalog: failed to update artist %s: %w", artistID, err)
	}
	return a, nil
}

// ListArtists returns one page of non-deleted artists matching the filter, newest first
func (s *CatalogService) ListArtists(ctx context.Context, f models.ArtistFilter) (models.Page[models.Artist], error) {
	f.Page, f.Limit = models.NormalizePage(f.Page, f.Limit)
	f.Search = strings.TrimSpace(f.Search)
	if f.FeaturedOnly {
		f.ActiveOnly = true
	}

	artists, total, err := s.catalog.ListArtists(ctx, f)
	if err != nil {
		return models.Page[models.Artist]{}, fmt.Errorf("catalog: failed to list artists: %w", err)
	}
	return models.NewPage(artists, total, f.Page, f.Limit), nil
}

// DeleteArtists soft-deletes artists. Their products are not affected.
func (s *CatalogService) DeleteArtists(ctx context.Context, ids []string) (int64, error) {
	ids = compactIDs(ids)
	if len(ids) == 0 {
		return 0, fmt.Errorf("catalog: %w - no artist IDs provided", biddingerrors.ErrInvalidInput)
	}

	n, err := s.catalog.SoftDeleteArtists(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("catalog: failed to delete artists: %w", err)
	}
	return n, nil
}

func validateArtist(a models.Artist) error {
	v := &biddingerrors.ValidationError{}
	if strings.TrimSpace(a.Name) == "" {
		v.Add("name", "Artist name is required")
	}
	if strings.TrimSpace(a.Bio) == "" {
		v.Add("bio", "Artist bio is required")
	}
	if strings.TrimSpace(a.Country) == "" {
		v.Add("country", "Artist country is required")
	}
	return v.OrNil()
}
