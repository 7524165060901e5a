package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avoronova/imagevault/internal/common"
	"github.com/avoronova/imagevault/internal/dbx"
	"github.com/avoronova/imagevault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// escapeLike neutralizes LIKE/ILIKE metacharacters so a search term is
// matched as a literal substring: a term of "_" must match only names
// containing an underscore, not every non-empty name.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanImage(row interface{ Scan(dest ...any) error }) (models.Image, error) {
	var (
		image  models.Image
		author sql.NullString
	)
	if err := row.Scan(&image.ID, &image.Src, &image.Name, &author); err != nil {
		return models.Image{}, err
	}
	if author.Valid {
		image.Author = models.ExplicitAuthor(author.String)
	} else {
		image.Author = models.NoAuthor()
	}
	return image, nil
}

func (r *PostgresRepository) List(ctx context.Context, nameFilter string) ([]models.Image, error) {
	query :=
		`SELECT id, src, name, author FROM images
		 ORDER BY created_at, id
		 `
	args := []any{}

	if nameFilter != "" {
		query =
			`SELECT id, src, name, author FROM images
			 WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
			 ORDER BY created_at, id
			 `
		args = append(args, escapeLike(nameFilter))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Image{}
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Image, error) {
	query :=
		`SELECT id, src, name, author FROM images
		 WHERE id = $1
		 `

	image, err := scanImage(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &image, nil
}

func (r *PostgresRepository) Create(ctx context.Context, image *models.Image) (*models.Image, error) {
	query :=
		`INSERT INTO images (src, name, author)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	var author sql.NullString
	if id, ok := image.Author.ID(); ok {
		author = sql.NullString{String: id, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		image.Src, image.Name, author).Scan(&image.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return image, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id string, name string) (int64, error) {
	query :=
		`UPDATE images SET name = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, name)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}
