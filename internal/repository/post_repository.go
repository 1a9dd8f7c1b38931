package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"volunteerhub/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

// selectPosts - base query, author names are joined in so every read carries them
const selectPosts = `
        SELECT p.post_id, p.title, p.description, p.category_id, p.author_id,
               COALESCE(u.first_name, 'Unknown') AS author_first_name,
               COALESCE(u.last_name, 'Author')   AS author_last_name,
               p.location, p.lat, p.lng, p.image_url, p.date_created
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
    `

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, title, description, category_id, author_id, location, lat, lng, image_url, date_created)
        VALUES
        (:post_id, :title, :description, :category_id, :author_id, :location, :lat, :lng, :image_url, :date_created)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.DateCreated.IsZero() {
		post.DateCreated = time.Now().UTC()
	}

	_, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := selectPosts + ` WHERE p.post_id = $1`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s не найден", postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := selectPosts + ` ORDER BY p.date_created, p.post_id`

	var posts []models.Post
	err := r.DB.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByCategoryID(ctx context.Context, categoryID string) ([]models.Post, error) {
	query := selectPosts + ` WHERE p.category_id = $1 ORDER BY p.date_created, p.post_id`

	var posts []models.Post
	err := r.DB.SelectContext(ctx, &posts, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов категории %s: %w", categoryID, err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден")
	}

	return nil
}
