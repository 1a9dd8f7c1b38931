package app

import (
	"log"
	"volunteerhub/internal/config"
	"volunteerhub/internal/database"
	"volunteerhub/internal/geocode"
	"volunteerhub/internal/mailer"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/service"
	"volunteerhub/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	geocoder := geocode.NewNominatimClient(cfg.NominatimURL)
	mail := mailer.NewSMTPMailer(cfg.SMTP)

	services := service.NewService(repo, cfg, minioClient, geocoder, mail)

	return db, repo, services
}
