package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"volunteerhub/internal/hub"
	"volunteerhub/internal/models"
)

// HubHandlers - HTTP surface of the listings browser. The handlers only read
// the derived views and forward user actions, all state is owned by the hub.
type HubHandlers struct {
	Hub *hub.Hub
}

func NewHubHandlers(h *hub.Hub) *HubHandlers {
	return &HubHandlers{Hub: h}
}

// authContext rebuilds the caller's auth context from what the middleware
// extracted. The hub refetches on the unauthenticated-to-authenticated
// transition and otherwise just forwards the credential.
func authContext(r *http.Request) models.AuthContext {
	authenticated, _ := r.Context().Value("authenticated").(bool)
	credential, _ := r.Context().Value("credential").(string)
	return models.AuthContext{
		Authenticated: authenticated,
		Credential:    credential,
	}
}

type VisiblePostsResponse struct {
	Posts           []models.VisiblePost `json:"posts"`
	PostsStale      bool                 `json:"posts_stale"`
	CategoriesStale bool                 `json:"categories_stale"`
}

func (h *HubHandlers) GetVisiblePosts(w http.ResponseWriter, r *http.Request) {
	h.Hub.SetAuth(r.Context(), authContext(r))

	visible, _, postsErr, categoriesErr := h.Hub.Snapshot()

	WriteSuccess(w, VisiblePostsResponse{
		Posts:           visible,
		PostsStale:      postsErr,
		CategoriesStale: categoriesErr,
	}, http.StatusOK)
}

func (h *HubHandlers) GetMarkers(w http.ResponseWriter, r *http.Request) {
	h.Hub.SetAuth(r.Context(), authContext(r))

	_, markers, _, _ := h.Hub.Snapshot()
	WriteSuccess(w, markers, http.StatusOK)
}

func (h *HubHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.Hub.Categories(), http.StatusOK)
}

func (h *HubHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	h.Hub.SetAuth(r.Context(), authContext(r))
	h.Hub.Refresh(r.Context())

	WriteSuccess(w, MessageResponse{Message: "Коллекции обновлены"}, http.StatusOK)
}

func (h *HubHandlers) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryID"]

	h.Hub.ToggleFilter(categoryID)

	visible, _, _, _ := h.Hub.Snapshot()
	WriteSuccess(w, map[string]interface{}{
		"posts": visible,
	}, http.StatusOK)
}

func (h *HubHandlers) SelectPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postID"]

	// selecting a post that is not visible is a no-op, not an error
	opened := h.Hub.OpenPost(postID)

	WriteSuccess(w, map[string]bool{"modal_open": opened}, http.StatusOK)
}

func (h *HubHandlers) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.Hub.CloseModal()
	WriteSuccess(w, map[string]bool{"modal_open": false}, http.StatusOK)
}

func (h *HubHandlers) GetSelected(w http.ResponseWriter, r *http.Request) {
	post, ok := h.Hub.Selected()
	if !ok {
		WriteError(w, "Нет выбранного поста", http.StatusNotFound)
		return
	}
	WriteSuccess(w, post, http.StatusOK)
}

func (h *HubHandlers) Contact(w http.ResponseWriter, r *http.Request) {
	err := h.Hub.Contact(r.Context())
	if err != nil {
		if errors.Is(err, hub.ErrMissingAddress) {
			WriteError(w, "Email not found!", http.StatusBadRequest)
			return
		}
		WriteError(w, "Failed to send email.", http.StatusBadGateway)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Email sent successfully!"}, http.StatusOK)
}
