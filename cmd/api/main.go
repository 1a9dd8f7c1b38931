package main

import (
	"fmt"
	"log"
	"net/http"
	"volunteerhub/cmd/app"
	"volunteerhub/internal/config"
	handlers "volunteerhub/internal/handler"
	"volunteerhub/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/get_posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/get_post/{postID}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/get_categories", handler.GetCategories).Methods(http.MethodGet)

	router.HandleFunc("/get_users", handler.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/find_user_by_id/{userID}", handler.FindUserByID).Methods(http.MethodGet)

	router.HandleFunc("/create_post/{userID}", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/update_profile/{userID}", handler.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/upload_file/{userID}", handler.UploadFile).Methods(http.MethodPost)

	router.HandleFunc("/send-email/{recipient}", handler.SendEmail).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthContextMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Бэкенд запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
