//go:build integration

package postgres_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"showcase/internal/api/handlers/projects"
	"showcase/internal/api/handlers/submissions"
	"showcase/internal/catalog"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/migrations"
	"showcase/internal/models"
	"showcase/internal/service"
	"showcase/internal/storage"
	"showcase/internal/storage/postgres"
)

const (
	testDBUser     = "showcase"
	testDBPassword = "showcase"
	testDBName     = "showcase_test"
)

var pgStorage *postgres.PgStorage

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testDBUser,
			"POSTGRES_PASSWORD": testDBPassword,
			"POSTGRES_DB":       testDBName,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, "", err
	}
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		return container, "", err
	}
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testDBUser, testDBPassword, host, port.Port(), testDBName)
	return container, dbURL, nil
}

func TestMain(m *testing.M) {
	if err := utils.InitLogger("info"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	utils.Logger.Info("Starting Integration Tests", zap.String("test_suite", "integration"))

	ctx := context.Background()
	container, dbURL, err := startPostgres(ctx)
	if err != nil {
		log.Fatalf("Failed to start database: %v", err)
	}

	var pool *pgxpool.Pool
	exitCode := func() int {
		defer container.Terminate(context.Background())

		if err := migrations.Up(dbURL); err != nil {
			log.Printf("Failed to migrate test database: %v", err)
			return 1
		}
		pool, err = postgres.Connect(ctx, dbURL)
		if err != nil {
			log.Printf("Failed to connect to test database: %v", err)
			return 1
		}
		defer pool.Close()
		pgStorage = postgres.NewPgStorage(pool)
		return m.Run()
	}()

	utils.Logger.Info("Integration Tests Finished", zap.Int("exit_code", exitCode))
	utils.Logger.Sync()
	os.Exit(exitCode)
}

func TestPgStorage_Projects_Integration(t *testing.T) {
	ctx := context.Background()

	added, err := pgStorage.Create(ctx, &models.Project{
		Title:       "Integration Rover",
		Description: "Drives between test cases",
		Category:    "Robotics",
		ImageURL:    "https://example.com/rover.png",
		Images:      []string{"https://example.com/rover-1.png"},
	})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	fetched, err := pgStorage.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.Title, fetched.Title)
	assert.Equal(t, []string{"https://example.com/rover-1.png"}, fetched.Images)

	all, err := pgStorage.List(ctx)
	require.NoError(t, err)
	_, found := catalog.FindByID(all, added.ID)
	assert.True(t, found)

	_, err = pgStorage.GetByID(ctx, added.ID+100000)
	assert.ErrorIs(t, err, storage.ErrProjectNotFound)
}

func TestPgStorage_Subscribe_Integration(t *testing.T) {
	ctx := context.Background()
	email := uuid.NewString() + "@example.com"

	sub, err := pgStorage.Subscribe(ctx, &models.Subscriber{ID: uuid.NewString(), Email: email})
	require.NoError(t, err)
	assert.Equal(t, email, sub.Email)

	_, err = pgStorage.Subscribe(ctx, &models.Subscriber{ID: uuid.NewString(), Email: email})
	assert.ErrorIs(t, err, storage.ErrAlreadySubscribed)
}

func TestPgStorage_Accounts_Integration(t *testing.T) {
	ctx := context.Background()
	email := uuid.NewString() + "@example.com"
	account := &models.Account{ID: uuid.NewString(), Name: "Ada", Email: email, PasswordHash: "hash"}

	created, err := pgStorage.CreateAccount(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, account.ID, created.ID)

	_, err = pgStorage.CreateAccount(ctx, &models.Account{ID: uuid.NewString(), Name: "Ada", Email: email, PasswordHash: "hash"})
	assert.ErrorIs(t, err, storage.ErrAccountExists)

	fetched, err := pgStorage.GetAccountByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "Ada", fetched.Name)

	_, err = pgStorage.GetAccountByEmail(ctx, "nobody-"+email)
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

func TestNewsletterHandler_Integration(t *testing.T) {
	handler := submissions.NewFormHandlers(
		service.NewNewsletterService(pgStorage),
		service.NewAuthService(pgStorage, 0),
	)
	body := fmt.Sprintf(`{"email":"%s@example.com"}`, uuid.NewString())

	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.SubscribeHandler(w, httptest.NewRequest("POST", "/api/newsletter", bytes.NewBufferString(body)))
		return w
	}

	assert.Equal(t, http.StatusCreated, post().Code)
	assert.Equal(t, http.StatusOK, post().Code)
}

func TestGetProjectsHandler_Integration(t *testing.T) {
	ctx := context.Background()
	category := "Integration-" + uuid.NewString()[:8]
	for i := 0; i < 7; i++ {
		_, err := pgStorage.Create(ctx, &models.Project{Title: fmt.Sprintf("Project %d", i), Category: category})
		require.NoError(t, err)
	}

	projectService := service.NewProjectService(pgStorage, nil, service.ProjectServiceConfig{})
	handler := projects.NewProjectHandlers(projectService)

	w := httptest.NewRecorder()
	handler.GetProjectsHandler(w, httptest.NewRequest("GET", "/api/projects?category="+category+"&page=1&go=next", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var view models.PageView[models.Project]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, 7, view.TotalItems)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Project 6", view.Items[0].Title)
}
