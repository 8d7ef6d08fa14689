package test

import (
	"context"

	"blogAPI/internal/models"
	"blogAPI/internal/repository"

	"github.com/stretchr/testify/mock"
)

const anyCtx = mock.Anything

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateAuthorRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) IssueToken(authorID string) (string, error) {
	args := m.Called(authorID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorService) GetAuthor(ctx context.Context, authorID string) (*models.Author, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, page, limit int) ([]models.PostWithAuthor, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostWithAuthor), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostWithAuthor), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID string, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, authorID string, req repository.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, postID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, authorID string) error {
	args := m.Called(ctx, postID, authorID)
	return args.Error(0)
}

type MockHealthRepository struct {
	mock.Mock
}

func (m *MockHealthRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
