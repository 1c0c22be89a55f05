package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	handler "github.com/lunchvote/api/internal/adapters/handler/http"
	"github.com/lunchvote/api/internal/adapters/oauth/google"
	"github.com/lunchvote/api/internal/adapters/repository/postgres"
	"github.com/lunchvote/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	foodRepo := postgres.NewFoodRepository(db)
	restaurantRepo := postgres.NewRestaurantRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	emailJobRepo := postgres.NewEmailJobRepository(db)

	emailService := services.NewEmailService(emailJobRepo)
	voteService := services.NewVoteService(foodRepo, voteRepo, userRepo, restaurantRepo, emailService)
	rankingService := services.NewRankingService(restaurantRepo)
	authService := services.NewAuthService(userRepo, google.NewVerifier())
	userService := services.NewUserService(userRepo)

	voteHandler := handler.NewVoteHandler(voteService, rankingService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	router := handler.NewHandler(voteHandler, authHandler, userHandler, allowedOrigins())
	server := &stdhttp.Server{Addr: "0.0.0.0:8080", Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func allowedOrigins() []string {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	return strings.Split(origins, ",")
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
