package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deadline = "2026-09-01T12:00:00Z"

func Test_Todos(t *testing.T) {
	t.Run("routes rejected for unknown user", func(t *testing.T) {
		srv := newTestServer(t)

		requests := []struct {
			method string
			path   string
			body   string
		}{
			{http.MethodGet, "/todos", ""},
			{http.MethodPost, "/todos", `{"title": "t", "deadline": "` + deadline + `"}`},
			{http.MethodPut, "/todos/" + uuid.NewString(), `{"title": "t", "deadline": "` + deadline + `"}`},
			{http.MethodPatch, "/todos/" + uuid.NewString() + "/done", ""},
			{http.MethodDelete, "/todos/" + uuid.NewString(), ""},
		}

		for _, rq := range requests {
			t.Run(rq.method+" "+rq.path, func(t *testing.T) {
				status, raw := do(t, srv, rq.method, rq.path, "ghost", rq.body)

				require.Equal(t, http.StatusNotFound, status)
				require.JSONEq(t, `{"error": "user does not exist"}`, raw)
			})
		}
	})

	t.Run("create todo ok", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		status, raw := do(t, srv, http.MethodPost, "/todos", "u1", `{"title": "test todo", "deadline": "`+deadline+`"}`)

		require.Equalf(t, http.StatusCreated, status, "Body: %s", raw)
		user := decode[userEnvelope](t, raw).User
		require.Len(t, user.Todos, 1)

		created := user.Todos[0]
		assert.NoError(t, uuid.Validate(created.ID), "todo id should be a valid uuid")
		assert.Equal(t, "test todo", created.Title)
		assert.False(t, created.Done)
		assert.Equal(t, deadline, created.Deadline.Format("2006-01-02T15:04:05Z07:00"), "deadline should echo the sent value")
		assert.False(t, created.CreatedAt.IsZero(), "created_at should be set")
	})

	t.Run("list returns exactly the user's todos in order", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		for _, title := range []string{"first", "second"} {
			status, raw := do(t, srv, http.MethodPost, "/todos", "u1", `{"title": "`+title+`", "deadline": "`+deadline+`"}`)
			require.Equalf(t, http.StatusCreated, status, "Body: %s", raw)
		}

		status, raw := do(t, srv, http.MethodGet, "/todos", "u1", "")

		require.Equalf(t, http.StatusOK, status, "Body: %s", raw)
		todos := decode[todosEnvelope](t, raw).Todos
		require.Len(t, todos, 2)
		assert.Equal(t, "first", todos[0].Title)
		assert.Equal(t, "second", todos[1].Title)
	})

	t.Run("update todo ok", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		_, raw := do(t, srv, http.MethodPost, "/todos", "u1", `{"title": "test todo", "deadline": "`+deadline+`"}`)
		created := decode[userEnvelope](t, raw).User.Todos[0]

		status, raw := do(t, srv, http.MethodPut, "/todos/"+created.ID, "u1", `{"title": "update title", "deadline": "`+deadline+`"}`)

		require.Equalf(t, http.StatusOK, status, "Body: %s", raw)
		updated := decode[userEnvelope](t, raw).User.Todos[0]
		assert.Equal(t, "update title", updated.Title)
		assert.False(t, updated.Done, "update must not touch done")
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("update non existing todo fails", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		status, raw := do(t, srv, http.MethodPut, "/todos/invalid-todo-id", "u1", `{"title": "t", "deadline": "`+deadline+`"}`)

		require.Equal(t, http.StatusNotFound, status)
		require.JSONEq(t, `{"error": "todo does not exist"}`, raw)
	})

	t.Run("todo of another user is invisible", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "owner")
		registerUser(t, srv, "Jane Doe", "other")

		_, raw := do(t, srv, http.MethodPost, "/todos", "owner", `{"title": "private", "deadline": "`+deadline+`"}`)
		created := decode[userEnvelope](t, raw).User.Todos[0]

		// A valid id of someone else's todo must behave like an unknown id
		status, raw := do(t, srv, http.MethodPut, "/todos/"+created.ID, "other", `{"title": "stolen", "deadline": "`+deadline+`"}`)
		require.Equal(t, http.StatusNotFound, status)
		require.JSONEq(t, `{"error": "todo does not exist"}`, raw)

		// And the other user's list stays empty
		status, raw = do(t, srv, http.MethodGet, "/todos", "other", "")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"todos": []}`, raw)
	})

	t.Run("mark todo done is idempotent", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		_, raw := do(t, srv, http.MethodPost, "/todos", "u1", `{"title": "test todo", "deadline": "`+deadline+`"}`)
		created := decode[userEnvelope](t, raw).User.Todos[0]

		for range 2 {
			status, raw := do(t, srv, http.MethodPatch, "/todos/"+created.ID+"/done", "u1", "")

			require.Equalf(t, http.StatusOK, status, "Body: %s", raw)
			done := decode[userEnvelope](t, raw).User.Todos[0]
			assert.True(t, done.Done)
			assert.Equal(t, created.ID, done.ID, "repeated done must not change the id")
			assert.Equal(t, created.CreatedAt, done.CreatedAt, "repeated done must not change created_at")
			assert.Equal(t, created.Title, done.Title)
		}
	})

	t.Run("mark non existing todo done fails", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		status, raw := do(t, srv, http.MethodPatch, "/todos/invalid-todo-id/done", "u1", "")

		require.Equal(t, http.StatusNotFound, status)
		require.JSONEq(t, `{"error": "todo does not exist"}`, raw)
	})

	t.Run("delete todo ok", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		_, raw := do(t, srv, http.MethodPost, "/todos", "u1", `{"title": "test todo", "deadline": "`+deadline+`"}`)
		created := decode[userEnvelope](t, raw).User.Todos[0]

		status, raw := do(t, srv, http.MethodDelete, "/todos/"+created.ID, "u1", "")
		require.Equal(t, http.StatusNoContent, status)
		require.Empty(t, raw, "delete response must have no body")

		status, raw = do(t, srv, http.MethodGet, "/todos", "u1", "")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"todos": []}`, raw)
	})

	t.Run("delete non existing todo fails", func(t *testing.T) {
		srv := newTestServer(t)
		registerUser(t, srv, "John Doe", "u1")

		status, raw := do(t, srv, http.MethodDelete, "/todos/"+uuid.NewString(), "u1", "")

		require.Equal(t, http.StatusNotFound, status)
		require.JSONEq(t, `{"error": "todo does not exist"}`, raw)
	})
}

// The whole lifecycle the way a client would walk it
func Test_Todos_EndToEnd(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "John Doe", "u1")

	status, raw := do(t, srv, http.MethodPost, "/todos", "u1", `{"title": "t", "deadline": "`+deadline+`"}`)
	require.Equalf(t, http.StatusCreated, status, "Body: %s", raw)
	user := decode[userEnvelope](t, raw).User
	require.Len(t, user.Todos, 1)
	require.False(t, user.Todos[0].Done)
	id := user.Todos[0].ID

	status, raw = do(t, srv, http.MethodPut, "/todos/"+id, "u1", `{"title": "t2", "deadline": "`+deadline+`"}`)
	require.Equalf(t, http.StatusOK, status, "Body: %s", raw)
	user = decode[userEnvelope](t, raw).User
	require.Equal(t, "t2", user.Todos[0].Title)
	require.False(t, user.Todos[0].Done)

	status, raw = do(t, srv, http.MethodPatch, "/todos/"+id+"/done", "u1", "")
	require.Equalf(t, http.StatusOK, status, "Body: %s", raw)
	user = decode[userEnvelope](t, raw).User
	require.True(t, user.Todos[0].Done)

	status, raw = do(t, srv, http.MethodDelete, "/todos/"+id, "u1", "")
	require.Equalf(t, http.StatusNoContent, status, "Body: %s", raw)

	status, raw = do(t, srv, http.MethodGet, "/todos", "u1", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"todos": []}`, raw)
}
