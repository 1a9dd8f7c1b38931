package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"volunteerhub/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryRepositoryImpl struct {
	DB *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepositoryImpl {
	return &CategoryRepositoryImpl{DB: db}
}

func (r *CategoryRepositoryImpl) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT category_id, name FROM categories ORDER BY name`

	var categories []models.Category
	err := r.DB.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, categoryID string) (*models.Category, error) {
	query := `SELECT category_id, name FROM categories WHERE category_id = $1`

	var category models.Category
	err := r.DB.GetContext(ctx, &category, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("категория с ID %s не найдена", categoryID)
		}
		return nil, fmt.Errorf("ошибка при получении категории: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	query := `INSERT INTO categories (category_id, name) VALUES (:category_id, :name)`

	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}

	_, err := r.DB.NamedExecContext(ctx, query, category)
	if err != nil {
		return fmt.Errorf("ошибка при создании категории: %w", err)
	}

	return nil
}
