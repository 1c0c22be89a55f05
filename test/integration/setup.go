package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/lunchvote/api/internal/adapters/handler/http"
	repo "github.com/lunchvote/api/internal/adapters/repository/postgres"
	"github.com/lunchvote/api/internal/core/services"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	os.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	foodRepo := repo.NewFoodRepository(db)
	restaurantRepo := repo.NewRestaurantRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	emailJobRepo := repo.NewEmailJobRepository(db)

	emailService := services.NewEmailService(emailJobRepo)
	voteService := services.NewVoteService(foodRepo, voteRepo, userRepo, restaurantRepo, emailService)
	rankingService := services.NewRankingService(restaurantRepo)
	authService := services.NewAuthService(userRepo, nil)
	userService := services.NewUserService(userRepo)

	voteHandler := handler.NewVoteHandler(voteService, rankingService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	router := handler.NewHandler(voteHandler, authHandler, userHandler, []string{"*"})
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) createUserAndToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", userID)
	_, err := app.DB.Exec("INSERT INTO users (id, email) VALUES ($1, $2)", userID, email)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return userID, signedToken
}

func (app *TestApp) createRestaurant(t *testing.T, name, address string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := app.DB.QueryRow(
		"INSERT INTO restaurants (name, address) VALUES ($1, $2) RETURNING id",
		name, address,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func (app *TestApp) createFood(t *testing.T, name string, restaurantID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := app.DB.QueryRow(
		"INSERT INTO foods (name, price, restaurant_id) VALUES ($1, 100, $2) RETURNING id",
		name, restaurantID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// castVote posts a vote through the API and returns the raw response.
func (app *TestApp) castVote(t *testing.T, token string, foodID, restaurantID uuid.UUID) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"foodId":       foodID.String(),
		"restaurantId": restaurantID.String(),
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/api/votes", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}
