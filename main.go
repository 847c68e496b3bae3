package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipebook/auth"
	"recipebook/config"
	"recipebook/db"
	"recipebook/middleware"
	"recipebook/ratelim"
	"recipebook/recipes"
	"recipebook/reviews"
	"recipebook/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(database *db.Database, cfg *config.Config) *httprouter.Router {
	// 20 writes per second with a small burst is plenty for this service.
	rateLimiter := ratelim.NewRateLimiter(20, 5)

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddRecipeRoutes(router, recipes.NewHandler(database), rateLimiter)
	routes.AddReviewRoutes(router, reviews.NewHandler(database), rateLimiter)
	routes.AddUserRoutes(router, auth.NewHandler(database, cfg.BcryptCost), rateLimiter)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	database, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}

	router := setupRouter(database, cfg)

	// CORS → security headers → request id → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	handler := middleware.Logging(middleware.RequestID(middleware.SecurityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		log.Printf("error closing MongoDB connection: %v", err)
	}

	log.Println("server stopped cleanly")
}
