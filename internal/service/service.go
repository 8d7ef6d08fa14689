package service

import (
	"blogAPI/internal/config"
	"blogAPI/internal/repository"
)

type Service struct {
	Auth   AuthService
	Author AuthorService
	Post   PostService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth:   NewAuthService(rep.Author, NewBcryptHasher(cfg.BcryptCost), cfg),
		Author: NewAuthorService(rep.Author),
		Post:   NewPostService(rep.Post),
	}
}
