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

	appFlagcfg "github.com/surpriz/hospitalidee-moderation/pkg/app/flagcfg"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/flagcfg"
)

type memoryFlagStore struct {
	cfg        flagcfg.Config
	persistErr error
}

func (s *memoryFlagStore) Load() (flagcfg.Config, error) {
	return s.cfg, nil
}

func (s *memoryFlagStore) Persist(cfg flagcfg.Config) error {
	if s.persistErr != nil {
		return s.persistErr
	}
	s.cfg = cfg
	return nil
}

func newFlagConfigApp(t *testing.T, store *memoryFlagStore) *fiber.App {
	t.Helper()
	service, err := appFlagcfg.NewService(store, testLogger())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/v1/flag-config", NewGetFlagConfigHandler(testLogger(), service).Handle)
	app.Put("/api/v1/flag-config", NewUpdateFlagConfigHandler(testLogger(), service).Handle)
	return app
}

func TestGetFlagConfigHandler(t *testing.T) {
	app := newFlagConfigApp(t, &memoryFlagStore{cfg: flagcfg.Default()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flag-config", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	cfg, ok := body["flag_config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.5, cfg["mistral_score_threshold"])
	assert.Equal(t, true, cfg["forbidden_words_trigger_red"])
}

func TestUpdateFlagConfigHandler_PartialUpdate(t *testing.T) {
	store := &memoryFlagStore{cfg: flagcfg.Default()}
	app := newFlagConfigApp(t, store)

	payload := `{"mistral_score_threshold": 0.8, "proper_names_trigger_red": false}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/flag-config", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])

	cfg, ok := body["flag_config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.8, cfg["mistral_score_threshold"])
	assert.Equal(t, false, cfg["proper_names_trigger_red"])
	// Absent fields stay at their previous value.
	assert.Equal(t, true, cfg["forbidden_words_trigger_red"])
	assert.Equal(t, true, cfg["text_modification_trigger_red"])

	assert.Equal(t, 0.8, store.cfg.MistralScoreThreshold)
}

func TestUpdateFlagConfigHandler_OutOfRangeThreshold(t *testing.T) {
	app := newFlagConfigApp(t, &memoryFlagStore{cfg: flagcfg.Default()})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/flag-config", strings.NewReader(`{"mistral_score_threshold": 1.5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["error"], "mistral_score_threshold")
}

func TestUpdateFlagConfigHandler_MalformedBody(t *testing.T) {
	app := newFlagConfigApp(t, &memoryFlagStore{cfg: flagcfg.Default()})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/flag-config", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateFlagConfigHandler_PersistFailureWarns(t *testing.T) {
	store := &memoryFlagStore{cfg: flagcfg.Default(), persistErr: errors.New("disk full")}
	app := newFlagConfigApp(t, store)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/flag-config", strings.NewReader(`{"mistral_score_threshold": 0.9}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "warning", body["status"])

	cfg, ok := body["flag_config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.9, cfg["mistral_score_threshold"])
}
