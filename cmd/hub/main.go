package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"volunteerhub/internal/config"
	handlers "volunteerhub/internal/handler"
	"volunteerhub/internal/hub"
	"volunteerhub/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	client := hub.NewClient(cfg.Hub.BackendURL, cfg.Hub.RequestTimeout)
	browser := hub.New(client)
	defer browser.Close()

	// initial fetch of both collections, unauthenticated is valid
	browser.Refresh(context.Background())

	handler := handlers.NewHubHandlers(browser)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetVisiblePosts).Methods(http.MethodGet)
	router.HandleFunc("/api/markers", handler.GetMarkers).Methods(http.MethodGet)
	router.HandleFunc("/api/categories", handler.GetCategories).Methods(http.MethodGet)
	router.HandleFunc("/api/refresh", handler.Refresh).Methods(http.MethodPost)

	router.HandleFunc("/api/filter/{categoryID}", handler.ToggleFilter).Methods(http.MethodPost)

	router.HandleFunc("/api/select/{postID}", handler.SelectPost).Methods(http.MethodPost)
	router.HandleFunc("/api/selected", handler.GetSelected).Methods(http.MethodGet)
	router.HandleFunc("/api/close", handler.CloseModal).Methods(http.MethodPost)
	router.HandleFunc("/api/contact", handler.Contact).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthContextMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.HubPort)
	fmt.Printf("Хаб запущен на %s\n", addr)
	fmt.Printf("Бэкенд: %s\n", cfg.Hub.BackendURL)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
