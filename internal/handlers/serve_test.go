package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akorolev/todoapi/internal/identity"
	"github.com/akorolev/todoapi/internal/logger"
	"github.com/akorolev/todoapi/internal/repository/memory"
	"github.com/akorolev/todoapi/internal/service/todo"
	"github.com/akorolev/todoapi/internal/service/user"
)

// Wire the production router over a fresh in-memory storage
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	storage := memory.NewStorage()

	userService := user.NewService(storage.User())
	todoService := todo.NewService(storage.User(), storage.Todo())
	resolver := identity.NewHeaderResolver(storage.User())

	router := NewRouter(userService, todoService, resolver, logger.NewNoOpLogger())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

// do sends a request with the optional username identity header
// and returns status code and raw body
func do(t *testing.T, srv *httptest.Server, method, path, username, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if username != "" {
		req.Header.Set("username", username)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp.StatusCode, string(raw)
}

// Wire shapes the tests decode into
type todoJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}

type userJSON struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Todos    []todoJSON `json:"todos"`
}

type userEnvelope struct {
	User userJSON `json:"user"`
}

type todosEnvelope struct {
	Todos []todoJSON `json:"todos"`
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()

	var value T
	require.NoErrorf(t, json.Unmarshal([]byte(raw), &value), "body should decode: %s", raw)
	return value
}

// registerUser creates the user via the API and fails the test on any problem
func registerUser(t *testing.T, srv *httptest.Server, name, username string) userJSON {
	t.Helper()

	status, raw := do(t, srv, http.MethodPost, "/users", "", `{"name": "`+name+`", "username": "`+username+`"}`)
	require.Equalf(t, http.StatusCreated, status, "user should be created. Body: %s", raw)

	return decode[userEnvelope](t, raw).User
}
