package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blogAPI/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type authorRepository struct {
	db *sqlx.DB
}

type CreateAuthorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthorRepository(db *sqlx.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	author.AuthorID = uuid.New().String()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	query := `
		INSERT INTO authors (author_id, name, email, password_hash, created_at)
		VALUES (:author_id, :name, :email, :password_hash, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, author)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, authorID string) (*models.Author, error) {
	var author models.Author

	query := `SELECT author_id, name, email, created_at FROM authors WHERE author_id = $1`

	err := r.db.GetContext(ctx, &author, query, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author %s: %w", authorID, err)
	}

	return &author, nil
}

// GetByEmail is the only read that loads the password hash.
func (r *authorRepository) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	var author models.Author

	query := `SELECT author_id, name, email, password_hash, created_at FROM authors WHERE email = $1`

	err := r.db.GetContext(ctx, &author, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}

	return &author, nil
}

func (r *authorRepository) List(ctx context.Context) ([]models.Author, error) {
	authors := []models.Author{}

	query := `SELECT author_id, name, email, created_at FROM authors ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &authors, query); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}
