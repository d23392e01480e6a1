package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/hitaishi/buildmart-api/internal/config"
	"github.com/hitaishi/buildmart-api/internal/email"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandlers(t *testing.T) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := &Handlers{
		DB:       db,
		Mailer:   email.LogMailer{},
		Sessions: sessions.NewCookieStore([]byte("test-secret")),
		Cfg: &config.Config{
			Port:       "5000",
			BaseURL:    "http://localhost:5000",
			UploadsDir: t.TempDir(),
			AdminEmail: "admin@hitaishi.test",
		},
	}
	return h, mock
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
