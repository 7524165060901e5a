// Package credentials provides a PostgreSQL-backed repository for stored
// login records.
package credentials

import (
	"context"

	"github.com/avoronova/imagevault/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when no credential exists for the
	// username.
	Get(ctx context.Context, username string) (*models.Credential, error)

	// Create inserts a credential row; a concurrent duplicate surfaces as
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, credential *models.Credential) error
}
