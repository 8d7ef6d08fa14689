package service

import (
	"context"
	"errors"

	"blogAPI/internal/models"
	"blogAPI/internal/repository"

	"github.com/google/uuid"
)

type PostService interface {
	ListPosts(ctx context.Context, page, limit int) ([]models.PostWithAuthor, error)
	GetPost(ctx context.Context, postID string) (*models.PostWithAuthor, error)
	CreatePost(ctx context.Context, authorID string, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, postID, authorID string, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID, authorID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) ListPosts(ctx context.Context, page, limit int) ([]models.PostWithAuthor, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	return p.postRepo.List(ctx, limit, (page-1)*limit)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}

	post, err := p.postRepo.GetWithAuthor(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, authorID string, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ownedPost loads the post and checks that authorID owns it.
func (p *postService) ownedPost(ctx context.Context, postID, authorID string) (*models.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.AuthorID != authorID {
		return nil, ErrNotPostOwner
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID, authorID string, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.ownedPost(ctx, postID, authorID)
	if err != nil {
		return nil, err
	}

	if req.Title == nil && req.Content == nil {
		return post, nil
	}

	updated, err := p.postRepo.Update(ctx, postID, authorID, req)
	if err != nil {
		// removed between the ownership check and the write
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, authorID string) error {
	if _, err := p.ownedPost(ctx, postID, authorID); err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, postID, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	return nil
}
