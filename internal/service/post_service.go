package service

import (
	"context"
	"log"
	"time"
	"volunteerhub/internal/config"
	"volunteerhub/internal/geocode"
	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
)

type CreatePostRequest struct {
	AuthorID    string
	Title       string
	Description string
	CategoryID  string
	ImageURL    string
	Location    string
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
	geocoder geocode.Geocoder
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, geocoder geocode.Geocoder, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		geocoder: geocoder,
		cfg:      cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		DateCreated: time.Now().UTC(),
	}

	if req.CategoryID != "" {
		categoryID := req.CategoryID
		post.CategoryID = &categoryID
	}

	// resolving coordinates from the free-text address, failure is not fatal
	if req.Location != "" {
		point, err := p.geocoder.Geocode(ctx, req.Location)
		if err != nil {
			log.Printf("Не удалось геокодировать адрес %q: %v", req.Location, err)
		} else {
			post.Lat = &point.Lat
			post.Lng = &point.Lng
		}
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}
