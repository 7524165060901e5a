package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avoronova/imagevault/internal/common"
	"github.com/avoronova/imagevault/internal/dbx"
	"github.com/avoronova/imagevault/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, username string) (*models.Credential, error) {
	query :=
		`SELECT username, password_hash FROM credentials
		 WHERE username = $1
		 `

	credential := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&credential.Username, &credential.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) Create(ctx context.Context, credential *models.Credential) error {
	query :=
		`INSERT INTO credentials (username, password_hash)
         VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, credential.Username, credential.PasswordHash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
