// Package images provides a PostgreSQL-backed repository for stored image
// records.
package images

import (
	"context"

	"github.com/avoronova/imagevault/internal/server/models"
)

type Repository interface {
	// List returns image rows in stable store order. A non-empty nameFilter
	// restricts the result to names containing it as a case-insensitive
	// substring.
	List(ctx context.Context, nameFilter string) ([]models.Image, error)

	// GetByID returns common.ErrorNotFound when no such image exists.
	GetByID(ctx context.Context, id string) (*models.Image, error)

	// Create inserts the image and fills in the store-generated identifier.
	Create(ctx context.Context, image *models.Image) (*models.Image, error)

	// UpdateName sets the image's name and reports the number of rows
	// modified (0 when the id is unknown).
	UpdateName(ctx context.Context, id string, name string) (int64, error)
}
