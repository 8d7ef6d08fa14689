package service

import (
	"context"
	"errors"

	"blogAPI/internal/models"
	"blogAPI/internal/repository"

	"github.com/google/uuid"
)

type AuthorService interface {
	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, authorID string) (*models.Author, error)
}

type authorService struct {
	authorRepo repository.AuthorRepository
}

func NewAuthorService(authorRepo repository.AuthorRepository) AuthorService {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return s.authorRepo.List(ctx)
}

func (s *authorService) GetAuthor(ctx context.Context, authorID string) (*models.Author, error) {
	// ids are UUIDs, anything else cannot exist
	if _, err := uuid.Parse(authorID); err != nil {
		return nil, ErrAuthorNotFound
	}

	author, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	return author, nil
}
