package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
	"volunteerhub/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByCategoryID(ctx context.Context, categoryID string) ([]models.Post, error)
	Delete(ctx context.Context, postID string) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error)
	UpdateProfilePic(ctx context.Context, userID, filename string) error
}

type Repository struct {
	Post     PostRepository
	Category CategoryRepository
	User     UserRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:     NewPostRepository(db),
		Category: NewCategoryRepository(db),
		User:     NewUserRepository(db),
	}
}
