package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"volunteerhub/internal/config"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/service"
)

type Handlers struct {
	PostService  service.PostService
	UserService  service.UserService
	MailService  service.MailService
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	UserRepo     repository.UserRepository
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:  service.Post,
		UserService:  service.User,
		MailService:  service.Mail,
		PostRepo:     repo.Post,
		CategoryRepo: repo.Category,
		UserRepo:     repo.User,
		Cfg:          config,
		Validate:     validator.New(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
