package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"volunteerhub/internal/models"
)

// BackendClient - контракты бэкенда, которые потребляет ядро
type BackendClient interface {
	FetchPosts(ctx context.Context, auth models.AuthContext) ([]models.Post, error)
	FetchCategories(ctx context.Context, auth models.AuthContext) ([]models.Category, error)
	FindAuthorByID(ctx context.Context, auth models.AuthContext, authorID string) (string, error)
	SendContact(ctx context.Context, auth models.AuthContext, recipientEmail string) error
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// doJSON issues one request and decodes the body when out is non-nil.
// The credential is forwarded only when the caller is authenticated, its
// absence is not an error.
func (c *Client) doJSON(ctx context.Context, auth models.AuthContext, method, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if auth.Authenticated && auth.Credential != "" {
		req.Header.Set("Authorization", "Bearer "+auth.Credential)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка запроса %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("бэкенд вернул статус %d для %s", resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка разбора ответа %s: %w", path, err)
	}

	return nil
}

func (c *Client) FetchPosts(ctx context.Context, auth models.AuthContext) ([]models.Post, error) {
	var posts []models.Post
	if err := c.doJSON(ctx, auth, http.MethodGet, "/get_posts", &posts); err != nil {
		return nil, &FetchError{Collection: "posts", Err: err}
	}
	return posts, nil
}

func (c *Client) FetchCategories(ctx context.Context, auth models.AuthContext) ([]models.Category, error) {
	var categories []models.Category
	if err := c.doJSON(ctx, auth, http.MethodGet, "/get_categories", &categories); err != nil {
		return nil, &FetchError{Collection: "categories", Err: err}
	}
	return categories, nil
}

func (c *Client) FindAuthorByID(ctx context.Context, auth models.AuthContext, authorID string) (string, error) {
	var author struct {
		Email string `json:"email"`
	}
	path := "/find_user_by_id/" + url.PathEscape(authorID)
	if err := c.doJSON(ctx, auth, http.MethodGet, path, &author); err != nil {
		return "", &LookupError{AuthorID: authorID, Err: err}
	}
	return author.Email, nil
}

func (c *Client) SendContact(ctx context.Context, auth models.AuthContext, recipientEmail string) error {
	path := "/send-email/" + url.PathEscape(recipientEmail)
	if err := c.doJSON(ctx, auth, http.MethodPost, path, nil); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}
