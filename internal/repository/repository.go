package repository

import (
	"context"
	"errors"

	"blogAPI/internal/models"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, authorID string) (*models.Author, error)
	GetByEmail(ctx context.Context, email string) (*models.Author, error)
	List(ctx context.Context) ([]models.Author, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetWithAuthor(ctx context.Context, postID string) (*models.PostWithAuthor, error)
	List(ctx context.Context, limit, offset int) ([]models.PostWithAuthor, error)
	Update(ctx context.Context, postID, authorID string, req UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID, authorID string) error
}

type HealthRepository interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Author AuthorRepository
	Post   PostRepository
	Health HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Author: NewAuthorRepository(db),
		Post:   NewPostRepository(db),
		Health: NewHealthRepository(db),
	}
}
