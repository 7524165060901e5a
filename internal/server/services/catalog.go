// Package services contains server-side business logic. This file implements
// the Catalog, which owns image and user records and their denormalized
// join: listing with search, ownership lookups, renames, and creation.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoronova/imagevault/internal/server/models"
	"github.com/avoronova/imagevault/internal/server/repositories/repomanager"
)

// Catalog denormalizes author info into API-facing image records and
// enforces no policy of its own beyond the author resolution rules; the
// API layer performs validation and the ownership comparison.
type Catalog struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCatalog constructs a Catalog over the given connection and repositories.
func NewCatalog(db *sql.DB, m repomanager.RepositoryManager) *Catalog {
	return &Catalog{db: db, repomanager: m}
}

// ListImages returns the denormalized image records. An empty searchTerm
// lists everything; otherwise only images whose name contains searchTerm as
// a case-insensitive substring are returned. The two reads (images, then
// users) are independent scans with no snapshot isolation between them;
// author resolution reflects whichever user set the second read observes.
func (s *Catalog) ListImages(ctx context.Context, searchTerm string) ([]models.APIImage, error) {
	imageRepo := s.repomanager.Images(s.db)
	userRepo := s.repomanager.Users(s.db)

	imgs, err := imageRepo.List(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("error listing images: %w", err)
	}

	users, err := userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	idx := buildUserIndex(users)

	result := make([]models.APIImage, 0, len(imgs))
	for _, img := range imgs {
		result = append(result, models.APIImage{
			ID:     img.ID,
			Src:    img.Src,
			Name:   img.Name,
			Author: resolveAuthor(img.Author, idx),
		})
	}

	return result, nil
}

// RenameImage sets the image's display name and returns the number of rows
// modified: 0 when the id is unknown, 1 otherwise. Id shape and name length
// are the caller's responsibility.
func (s *Catalog) RenameImage(ctx context.Context, imageID string, newName string) (int64, error) {
	repo := s.repomanager.Images(s.db)

	affected, err := repo.UpdateName(ctx, imageID, newName)
	if err != nil {
		return 0, fmt.Errorf("error renaming image: %w", err)
	}

	return affected, nil
}

// GetImageOwner returns the resolved owner identifier for the image, using
// the same default-assignment rule as listing. It returns
// common.ErrorNotFound (wrapped by the repository) when no such image
// exists.
func (s *Catalog) GetImageOwner(ctx context.Context, imageID string) (string, error) {
	imageRepo := s.repomanager.Images(s.db)

	img, err := imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return "", err
	}

	// The default rule needs the user set only when the image has no
	// explicit author.
	if id, ok := img.Author.ID(); ok {
		return id, nil
	}

	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return "", fmt.Errorf("error listing users: %w", err)
	}

	return resolveOwner(img.Author, buildUserIndex(users)), nil
}

// CreateImage inserts a new image record and returns it with the
// store-generated identifier filled in.
func (s *Catalog) CreateImage(ctx context.Context, src, name, authorID string) (*models.Image, error) {
	repo := s.repomanager.Images(s.db)

	img := &models.Image{
		Src:    src,
		Name:   name,
		Author: models.ExplicitAuthor(authorID),
	}

	img, err := repo.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("error creating image: %w", err)
	}

	return img, nil
}
