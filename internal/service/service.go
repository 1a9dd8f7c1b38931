package service

import (
	"volunteerhub/internal/config"
	"volunteerhub/internal/geocode"
	"volunteerhub/internal/mailer"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/storage"
)

type Service struct {
	Post PostService
	User UserService
	Mail MailService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, geocoder geocode.Geocoder, mail mailer.Mailer) *Service {
	return &Service{
		Post: NewPostService(rep.Post, geocoder, cfg),
		User: NewUserService(rep.User, storage, cfg),
		Mail: NewMailService(mail),
	}
}
