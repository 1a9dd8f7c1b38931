package hub

import (
	"context"
	"sync"
	"volunteerhub/internal/models"
)

// stubBackend - управляемый клиент бэкенда для тестов ядра
type stubBackend struct {
	mu            sync.Mutex
	posts         []models.Post
	categories    []models.Category
	postsErr      error
	categoriesErr error
	authorEmails  map[string]string
	authorErrs    map[string]error
	lookupGate    chan struct{}
	lookupCalls   int
	contactErr    error
	contactCalls  int
}

func (s *stubBackend) FetchPosts(ctx context.Context, auth models.AuthContext) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postsErr != nil {
		return nil, s.postsErr
	}
	return copyPosts(s.posts), nil
}

func (s *stubBackend) FetchCategories(ctx context.Context, auth models.AuthContext) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.categoriesErr != nil {
		return nil, s.categoriesErr
	}
	return copyCategories(s.categories), nil
}

func (s *stubBackend) FindAuthorByID(ctx context.Context, auth models.AuthContext, authorID string) (string, error) {
	s.mu.Lock()
	gate := s.lookupGate
	s.lookupCalls++
	err := s.authorErrs[authorID]
	email := s.authorEmails[authorID]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", &LookupError{AuthorID: authorID, Err: err}
	}
	return email, nil
}

func (s *stubBackend) SendContact(ctx context.Context, auth models.AuthContext, recipientEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contactCalls++
	if s.contactErr != nil {
		return &DispatchError{Err: s.contactErr}
	}
	return nil
}

func (s *stubBackend) lookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupCalls
}

func (s *stubBackend) contacts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contactCalls
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func makePost(id, categoryID, authorID string) models.Post {
	post := models.Post{
		PostID:   id,
		Title:    "Post " + id,
		AuthorID: authorID,
	}
	if categoryID != "" {
		post.CategoryID = strPtr(categoryID)
	}
	return post
}
