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
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest carries a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

const selectPostWithAuthor = `
	SELECT
		p.post_id,
		p.title,
		p.content,
		p.created_at,
		a.author_id AS "author.author_id",
		a.name AS "author.name"
	FROM posts p
	JOIN authors a ON a.author_id = p.author_id
`

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, title, content, author_id, created_at)
        VALUES
        (:post_id, :title, :content, :author_id, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	// Postgres keeps microseconds; the returned post must match a later read
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT post_id, title, content, author_id, created_at FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetWithAuthor(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	query := selectPostWithAuthor + `WHERE p.post_id = $1`

	var post models.PostWithAuthor
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post %s: %w", postID, err)
	}

	return &post, nil
}

// List returns posts newest first, skipping offset rows.
func (r *PostRepositoryImpl) List(ctx context.Context, limit, offset int) ([]models.PostWithAuthor, error) {
	query := selectPostWithAuthor + `ORDER BY p.created_at DESC, p.post_id DESC LIMIT $1 OFFSET $2`

	posts := []models.PostWithAuthor{}
	if err := r.db.SelectContext(ctx, &posts, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Update applies the non-nil fields of req. The write only happens while the
// post still belongs to authorID; otherwise ErrNotFound is returned.
func (r *PostRepositoryImpl) Update(ctx context.Context, postID, authorID string, req UpdatePostRequest) (*models.Post, error) {
	query := `
		UPDATE posts SET
			title = COALESCE($3, title),
			content = COALESCE($4, content)
		WHERE post_id = $1 AND author_id = $2
		RETURNING post_id, title, content, author_id, created_at
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID, authorID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update post %s: %w", postID, err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID, authorID string) error {
	query := `DELETE FROM posts WHERE post_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
