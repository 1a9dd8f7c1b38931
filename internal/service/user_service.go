package service

import (
	"context"
	"fmt"
	"io"
	"volunteerhub/internal/config"
	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/storage"
)

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Location    *string `json:"location"`
	Bio         *string `json:"bio"`
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error)
	UploadProfilePic(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (u *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

func (u *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepo.GetAll(ctx)
}

// UpdateProfile applies only the whitelisted fields that were actually passed
func (u *userService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}

	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("нет допустимых полей для обновления")
	}

	return u.userRepo.UpdateProfile(ctx, userID, fields)
}

func (u *userService) UploadProfilePic(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error) {
	objectName, fileURL, err := u.storage.UploadProfilePic(ctx, userID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки фото в MinIO: %w", err)
	}

	err = u.userRepo.UpdateProfilePic(ctx, userID, objectName)
	if err != nil {
		u.storage.DeleteProfilePic(ctx, objectName)
		return "", fmt.Errorf("ошибка сохранения фото в БД: %w", err)
	}

	return fileURL, nil
}
