// Package users provides a PostgreSQL-backed repository for gallery users.
package users

import (
	"context"

	"github.com/avoronova/imagevault/internal/server/models"
)

type Repository interface {
	// List returns every user in stable store order.
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
