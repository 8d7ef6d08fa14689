package handlers

import (
	"reflect"
	"strings"

	"blogAPI/internal/config"
	"blogAPI/internal/repository"
	"blogAPI/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	AuthService   service.AuthService
	AuthorService service.AuthorService
	PostService   service.PostService
	HealthRepo    repository.HealthRepository
	Cfg           *config.Config
	Validate      *validator.Validate
	Log           logrus.FieldLogger
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		AuthorService: service.Author,
		PostService:   service.Post,
		HealthRepo:    repo.Health,
		Cfg:           config,
		Validate:      NewValidator(),
		Log:           log,
	}
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
