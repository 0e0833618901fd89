package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupControllers(t *testing.T) (*PostController, *CommentController) {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	return NewPostController(services.NewPostService(postRepo)),
		NewCommentController(services.NewCommentService(commentRepo, postRepo))
}

// brokenPostRepo fails every operation with a backend error that is not
// ErrNotFound.
type brokenPostRepo struct{}

var errBackend = errors.New("disk corruption: sector 7 unreadable")

func (brokenPostRepo) Create(*models.Post) error         { return errBackend }
func (brokenPostRepo) GetByID(int) (*models.Post, error) { return nil, errBackend }
func (brokenPostRepo) List() ([]*models.Post, error)     { return nil, errBackend }
func (brokenPostRepo) Update(*models.Post) error         { return errBackend }
func (brokenPostRepo) Delete(int) error                  { return errBackend }

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestPostControllerEnvelope(t *testing.T) {
	t.Run("show missing post renders not_found envelope", func(t *testing.T) {
		pc, _ := setupControllers(t)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/posts/9", nil), map[string]string{"id": "9"})
		rec := httptest.NewRecorder()
		pc.Show(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, ErrKindNotFound, env.Error)
		assert.Equal(t, "post not found", env.Message)
	})

	t.Run("create with invalid JSON renders malformed_input envelope", func(t *testing.T) {
		pc, _ := setupControllers(t)

		req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		pc.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, ErrKindMalformedInput, env.Error)
		assert.Nil(t, env.ValidationErrors)
	})

	t.Run("create with violations carries the ordered list", func(t *testing.T) {
		pc, _ := setupControllers(t)

		body := bytes.NewBufferString(`{"title":"ab","content":"123"}`)
		req := httptest.NewRequest(http.MethodPost, "/posts", body)
		rec := httptest.NewRecorder()
		pc.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, ErrKindValidationFailed, env.Error)
		assert.Equal(t, []string{
			"title must be between 3 and 200 characters",
			"content must be between 10 and 10000 characters",
		}, env.ValidationErrors)
	})

	t.Run("content type is always JSON", func(t *testing.T) {
		pc, _ := setupControllers(t)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()
		pc.Index(rec, req)

		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("backend failure renders a generic 500 envelope", func(t *testing.T) {
		pc := NewPostController(services.NewPostService(brokenPostRepo{}))

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/posts/1", nil), map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		pc.Show(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, ErrKindInternal, env.Error)
		assert.Equal(t, "internal server error", env.Message)
		// The backend detail is logged, never rendered.
		assert.NotContains(t, rec.Body.String(), "disk corruption")
	})

	t.Run("backend failure on create renders the same envelope", func(t *testing.T) {
		pc := NewPostController(services.NewPostService(brokenPostRepo{}))

		body := bytes.NewBufferString(`{"title":"Hello World","content":"This is a sufficiently long body."}`)
		req := httptest.NewRequest(http.MethodPost, "/posts", body)
		rec := httptest.NewRecorder()
		pc.Create(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, ErrKindInternal, env.Error)
		assert.Equal(t, "internal server error", env.Message)
		assert.NotContains(t, rec.Body.String(), "disk corruption")
	})

	t.Run("empty list still renders a data array and count", func(t *testing.T) {
		pc, _ := setupControllers(t)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()
		pc.Index(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, rec.Body.String())
	})
}

func TestCommentControllerEnvelope(t *testing.T) {
	t.Run("create under missing post renders not_found", func(t *testing.T) {
		_, cc := setupControllers(t)

		body := bytes.NewBufferString(`{"content":"Perfectly fine comment","author":"Jo"}`)
		req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/posts/3/comments", body), map[string]string{"postId": "3"})
		rec := httptest.NewRecorder()
		cc.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, ErrKindNotFound, env.Error)
		assert.Equal(t, "post not found", env.Message)
	})
}
