// Package repomanager hands out repositories bound to an arbitrary DBTX
// (plain connection or transaction) and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avoronova/imagevault/internal/dbx"
	"github.com/avoronova/imagevault/internal/server/repositories/credentials"
	"github.com/avoronova/imagevault/internal/server/repositories/images"
	"github.com/avoronova/imagevault/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Images(db dbx.DBTX) images.Repository
	Credentials(db dbx.DBTX) credentials.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
