package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avoronova/imagevault/internal/common"
	"github.com/avoronova/imagevault/internal/dbx"
	"github.com/avoronova/imagevault/internal/server/models"
	"github.com/avoronova/imagevault/internal/server/repositories/repomanager"
)

// bcryptCost matches the work factor the gallery has always used for
// stored hashes.
const bcryptCost = 10

// Credentials persists salted password hashes and verifies logins.
type Credentials struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCredentials constructs a Credentials service over the given connection
// and repositories.
func NewCredentials(db *sql.DB, m repomanager.RepositoryManager) *Credentials {
	return &Credentials{db: db, repomanager: m}
}

// Register creates the credential row and the user row for a new account in
// one transaction. It returns false, not an error, when the username is
// taken. The exists-check below is not atomic against a concurrent
// registration of the same name; the store's uniqueness constraint is the
// backstop, and that failure is folded into the same false result.
func (s *Credentials) Register(ctx context.Context, username, password string) (bool, error) {
	repo := s.repomanager.Credentials(s.db)

	_, err := repo.Get(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("error hashing password: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		credRepo := s.repomanager.Credentials(tx)
		if err := credRepo.Create(ctx, &models.Credential{
			Username:     username,
			PasswordHash: string(hash),
		}); err != nil {
			return err
		}

		userRepo := s.repomanager.Users(tx)
		_, err := userRepo.Create(ctx, &models.User{ID: username, Username: username})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error registering user: %w", err)
	}

	return true, nil
}

// VerifyPassword reports whether the password matches the stored hash for
// the username. Unknown usernames and mismatches both yield false. The
// comparison goes through bcrypt, never raw string equality.
func (s *Credentials) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	repo := s.repomanager.Credentials(s.db)

	credential, err := repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error loading credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}

	return true, nil
}
