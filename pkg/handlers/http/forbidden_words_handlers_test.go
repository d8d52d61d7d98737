package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appWordlist "github.com/surpriz/hospitalidee-moderation/pkg/app/wordlist"
)

type memoryWordStore struct {
	words      []string
	persistErr error
}

func (s *memoryWordStore) Load() ([]string, error) {
	return s.words, nil
}

func (s *memoryWordStore) Persist(words []string) error {
	if s.persistErr != nil {
		return s.persistErr
	}
	s.words = append([]string(nil), words...)
	return nil
}

func newWordListApp(t *testing.T, store *memoryWordStore) *fiber.App {
	t.Helper()
	service, err := appWordlist.NewService(store, testLogger())
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/v1/forbidden-words", NewAddForbiddenWordHandler(testLogger(), service).Handle)
	app.Get("/api/v1/forbidden-words", NewListForbiddenWordsHandler(testLogger(), service).Handle)
	app.Delete("/api/v1/forbidden-words/:word", NewRemoveForbiddenWordHandler(testLogger(), service).Handle)
	return app
}

func TestAddForbiddenWordHandler(t *testing.T) {
	store := &memoryWordStore{words: []string{"merde"}}
	app := newWordListApp(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forbidden-words", strings.NewReader(`{"word": "Nul"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])

	dictionary, ok := body["current_dictionary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "***", dictionary["nul"])
	assert.Equal(t, []string{"merde", "nul"}, store.words)
}

func TestAddForbiddenWordHandler_EmptyWord(t *testing.T) {
	app := newWordListApp(t, &memoryWordStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forbidden-words", strings.NewReader(`{"word": "  "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddForbiddenWordHandler_PersistFailureWarns(t *testing.T) {
	store := &memoryWordStore{persistErr: errors.New("disk full")}
	app := newWordListApp(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forbidden-words", strings.NewReader(`{"word": "nul"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "warning", body["status"])
	assert.Contains(t, body["message"], "could not be saved")
}

func TestListForbiddenWordsHandler(t *testing.T) {
	store := &memoryWordStore{words: []string{"merde", "con"}}
	app := newWordListApp(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forbidden-words", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	words, ok := body["forbidden_words"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "*****", words["merde"])
	assert.Equal(t, "***", words["con"])
}

func TestRemoveForbiddenWordHandler(t *testing.T) {
	store := &memoryWordStore{words: []string{"merde", "nul"}}
	app := newWordListApp(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/forbidden-words/nul", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, []string{"merde"}, store.words)
}

func TestRemoveForbiddenWordHandler_Unknown(t *testing.T) {
	store := &memoryWordStore{words: []string{"merde"}}
	app := newWordListApp(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/forbidden-words/inconnu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["error"], "inconnu")
}
