package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"volunteerhub/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepositoryImpl struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{DB: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users
        (user_id, email, first_name, last_name, bio, location, phone_number, profile_pic_filename)
        VALUES
        (:user_id, :email, :first_name, :last_name, :bio, :location, :phone_number, :profile_pic_filename)
    `

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}

	_, err := r.DB.NamedExecContext(ctx, query, user)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("пользователь с email %s уже существует: %w", user.Email, err)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT * FROM users WHERE user_id = $1`

	var user models.User
	err := r.DB.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %s не найден", userID)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT * FROM users WHERE email = $1`

	var user models.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s не найден", email)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT * FROM users ORDER BY last_name, first_name`

	var users []models.User
	err := r.DB.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}

	return users, nil
}

// UpdateProfile updates only the passed columns, the whitelist lives in the service layer
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, errors.New("нет полей для обновления")
	}

	set := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	i := 1
	for column, value := range fields {
		set = append(set, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	args = append(args, userID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d", strings.Join(set, ", "), i)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return nil, errors.New("пользователь не найден")
	}

	return r.GetByID(ctx, userID)
}

func (r *UserRepositoryImpl) UpdateProfilePic(ctx context.Context, userID, filename string) error {
	query := `UPDATE users SET profile_pic_filename = $1 WHERE user_id = $2`

	result, err := r.DB.ExecContext(ctx, query, filename, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении фото профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пользователь не найден")
	}

	return nil
}
