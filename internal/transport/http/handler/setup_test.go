package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-job-board/internal/core/auth"
	"go-job-board/internal/core/database"
	"go-job-board/internal/domain"
	"go-job-board/internal/transport/http/router"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Job{}, &domain.User{}))
	return db
}

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "job-board", TTL: time.Hour}
}

// newPublicEngine is the unauthenticated variant over a fresh store.
func newPublicEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return router.NewPublicEngine(zap.NewNop(), newTestDB(t))
}

// newAPIEngine is the authenticated variant plus a ready-to-use token.
func newAPIEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	r := router.NewAPIEngine(zap.NewNop(), newTestDB(t), newTestJWTer())

	w := doJSON(r, http.MethodPost, "/api/users/signup", map[string]any{
		"name":     "John Doe",
		"username": "john_doe_99",
		"password": "R3g5T7#gh",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return r, out.Token
}

func doJSON(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJob(t *testing.T, w *httptest.ResponseRecorder) domain.Job {
	t.Helper()
	var j domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &j))
	return j
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Error
}

func validJobPayload() map[string]any {
	return map[string]any{
		"title":       "Software Junior Developer",
		"type":        "Part-Time",
		"description": "Web Development",
		"company": map[string]any{
			"name":         "Microsoft",
			"contactEmail": "microsoft@outlook.com",
			"contactPhone": "123456",
		},
		"location": "Remote",
		"salary":   60000,
		"status":   "open",
	}
}
