package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"volunteerhub/internal/service"
)

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	// the author names are already joined in by the repository
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postID"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, categories, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	// the author has to exist before anything is created
	user, err := h.UserRepo.GetByID(r.Context(), userID)
	if err != nil {
		WriteError(w, "Пользователь не найден", http.StatusNotFound)
		return
	}

	var req struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		CategoryID  string `json:"category_id" validate:"required"`
		ImageURL    string `json:"image_url"`
		Location    string `json:"location"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := service.CreatePostRequest{
		AuthorID:    user.UserID,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	}

	// creating a post, coordinates are resolved from the location inside
	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// forming the response
	WriteSuccess(w, map[string]interface{}{
		"message": "Volunteering post created successfully.",
		"post":    post,
	}, http.StatusCreated)
}
