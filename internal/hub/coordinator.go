package hub

import (
	"context"
	"log"
	"sync"
	"volunteerhub/internal/models"
)

// CollectionsResult - снимки обеих коллекций после одного цикла загрузки.
// При отказе коллекция сохраняет последнее известное значение, флаг взводится.
type CollectionsResult struct {
	Posts         []models.Post
	Categories    []models.Category
	PostsErr      bool
	CategoriesErr bool
}

// Coordinator issues the two top-level collection fetches concurrently.
// The fetches are independent: one failing never blocks or invalidates the
// other, and there is no retry.
type Coordinator struct {
	client BackendClient

	mu         sync.Mutex
	posts      []models.Post
	categories []models.Category
}

func NewCoordinator(client BackendClient) *Coordinator {
	return &Coordinator{client: client}
}

func (c *Coordinator) FetchCollections(ctx context.Context, auth models.AuthContext) CollectionsResult {
	var (
		wg            sync.WaitGroup
		posts         []models.Post
		categories    []models.Category
		postsErr      error
		categoriesErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		posts, postsErr = c.client.FetchPosts(ctx, auth)
	}()

	go func() {
		defer wg.Done()
		categories, categoriesErr = c.client.FetchCategories(ctx, auth)
	}()

	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if postsErr != nil {
		log.Printf("Ошибка загрузки постов: %v", postsErr)
	} else {
		c.posts = posts
	}

	if categoriesErr != nil {
		log.Printf("Ошибка загрузки категорий: %v", categoriesErr)
	} else {
		c.categories = categories
	}

	return CollectionsResult{
		Posts:         copyPosts(c.posts),
		Categories:    copyCategories(c.categories),
		PostsErr:      postsErr != nil,
		CategoriesErr: categoriesErr != nil,
	}
}

// Posts returns the last-known posts snapshot, initially empty.
func (c *Coordinator) Posts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyPosts(c.posts)
}

// Categories returns the last-known categories snapshot, initially empty.
func (c *Coordinator) Categories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyCategories(c.categories)
}

func copyPosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}

func copyCategories(categories []models.Category) []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}
