package service

import (
	"context"
	"errors"
	"fmt"

	"blogAPI/internal/config"
	"blogAPI/internal/models"
	"blogAPI/internal/repository"
)

type AuthService interface {
	TokenVerifier
	Register(ctx context.Context, req repository.CreateAuthorRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	IssueToken(authorID string) (string, error)
}

type authService struct {
	authorRepo repository.AuthorRepository
	hasher     PasswordHasher
	cfg        *config.Config
}

func NewAuthService(authorRepo repository.AuthorRepository, hasher PasswordHasher, cfg *config.Config) AuthService {
	return &authService{
		authorRepo: authorRepo,
		hasher:     hasher,
		cfg:        cfg,
	}
}

// Register creates an author and returns a session token for it. The email
// pre-check and the unique index both surface as ErrEmailInUse.
func (s *authService) Register(ctx context.Context, req repository.CreateAuthorRequest) (string, error) {
	existingAuthor, err := s.authorRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingAuthor != nil {
		return "", ErrEmailInUse
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", err
	}

	author := &models.Author{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	err = s.authorRepo.Create(ctx, author)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailInUse
		}
		return "", fmt.Errorf("failed to create author: %w", err)
	}

	return s.IssueToken(author.AuthorID)
}

// Login does not distinguish an unknown email from a wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	author, err := s.authorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find author: %w", err)
	}

	matched, err := s.hasher.Compare(author.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !matched {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(author.AuthorID)
}
