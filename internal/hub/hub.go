package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"volunteerhub/internal/models"
)

// Hub is the single coordinating instance that owns the four pieces of state:
// the two collection snapshots, the filter and the selection. Nothing else
// mutates them; readers get copies for the duration of one projection.
type Hub struct {
	coordinator *Coordinator
	enricher    *Enricher
	dispatcher  *Dispatcher

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.RWMutex
	auth          models.AuthContext
	posts         []models.Post
	categories    []models.Category
	index         map[string]models.Category
	postsErr      bool
	categoriesErr bool
	filter        FilterState
	selection     Selection
	closed        bool
}

func New(client BackendClient) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		coordinator: NewCoordinator(client),
		enricher:    NewEnricher(client),
		dispatcher:  NewDispatcher(client),
		ctx:         ctx,
		cancel:      cancel,
		index:       map[string]models.Category{},
	}
}

// SetAuth re-evaluates the auth context whenever the host signals a change.
// A transition from unauthenticated to authenticated triggers a refetch, the
// credential itself is only forwarded.
func (h *Hub) SetAuth(ctx context.Context, auth models.AuthContext) {
	h.mu.Lock()
	wasAuthenticated := h.auth.Authenticated
	h.auth = auth
	h.mu.Unlock()

	if !wasAuthenticated && auth.Authenticated {
		h.Refresh(ctx)
	}
}

// Refresh replaces both collection snapshots wholesale and kicks off the
// author enrichment for the new posts snapshot. Enrichment completions patch
// the posts arena live and are discarded after teardown.
func (h *Hub) Refresh(ctx context.Context) {
	h.mu.RLock()
	auth := h.auth
	h.mu.RUnlock()

	result := h.coordinator.FetchCollections(ctx, auth)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.posts = result.Posts
	h.categories = result.Categories
	h.index = BuildIndex(result.Categories)
	h.postsErr = result.PostsErr
	h.categoriesErr = result.CategoriesErr
	pending := copyPosts(result.Posts)
	h.mu.Unlock()

	go h.enricher.Enrich(h.ctx, auth, pending, h.applyEmail)
}

// applyEmail patches a single post's email by id. A completion arriving after
// a newer refetch replaced the snapshot, or after Close, is dropped.
func (h *Hub) applyEmail(postID, email string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for i := range h.posts {
		if h.posts[i].PostID == postID {
			resolved := email
			h.posts[i].Email = &resolved
			return
		}
	}
}

// ToggleFilter selects the category, or clears the selection when it is
// already active.
func (h *Hub) ToggleFilter(categoryID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.filter = h.filter.Toggle(categoryID)
}

// Snapshot projects the current state into the visible list and the markers.
func (h *Hub) Snapshot() ([]models.VisiblePost, []models.Marker, bool, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	visible, markers := Project(h.posts, h.index, h.filter)
	return visible, markers, h.postsErr, h.categoriesErr
}

// Categories returns the last-known categories snapshot.
func (h *Hub) Categories() []models.Category {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return copyCategories(h.categories)
}

// OpenPost opens the modal on a currently visible post; opening a post that
// has been filtered out since is a no-op.
func (h *Hub) OpenPost(postID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	visible, _ := Project(h.posts, h.index, h.filter)
	for _, v := range visible {
		if v.PostID == postID {
			return h.selection.Open(v.Post, visible)
		}
	}
	return false
}

func (h *Hub) CloseModal() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selection.Close()
}

// Selected returns the inspected post while the modal is open.
func (h *Hub) Selected() (models.Post, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.selection.Current()
}

// Contact dispatches the send-email request for the inspected post. On
// ErrMissingAddress nothing was sent and the modal stays open; any other
// outcome, success or failure, closes the modal unconditionally.
func (h *Hub) Contact(ctx context.Context) error {
	h.mu.Lock()
	post, ok := h.selection.Current()
	auth := h.auth
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("нет выбранного поста")
	}

	err := h.dispatcher.Dispatch(ctx, auth, post)
	if errors.Is(err, ErrMissingAddress) {
		return err
	}

	h.mu.Lock()
	h.selection.Close()
	h.mu.Unlock()

	return err
}

// Close tears the hub down: in-flight enrichment completions are discarded
// and never mutate state afterwards.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.cancel()
}
