package greeting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/store"
)

// newTestStore creates an initialized store in a temp directory.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New(config.Store{Path: filepath.Join(t.TempDir(), "settings.db")})
	require.NoError(t, st.Initialize())

	return st
}

func TestInit(t *testing.T) {
	st := newTestStore(t)
	cfg := &config.Config{}

	testCases := []struct {
		name    string
		app     *fiber.App
		cfg     *config.Config
		st      *store.Store
		wantErr bool
	}{
		{name: "nil app", app: nil, cfg: cfg, st: st, wantErr: true},
		{name: "nil config", app: fiber.New(), cfg: nil, st: st, wantErr: true},
		{name: "nil store", app: fiber.New(), cfg: cfg, st: nil, wantErr: true},
		{name: "all set", app: fiber.New(), cfg: cfg, st: st, wantErr: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := &Service{}
			err := service.Init(tc.app, tc.cfg, tc.st)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGet(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetSuffix("Dakota"))

	service := &Service{cfg: &config.Config{}, store: st}

	app := fiber.New()
	app.Get(Path, service.Get)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hello, Dakota!", body.Message)
}

func TestGetWithUninitializedStore(t *testing.T) {
	// never initialized, so the settings table does not exist
	st := store.New(config.Store{
		Path: filepath.Join(t.TempDir(), "settings.db"),
	})

	service := &Service{cfg: &config.Config{}, store: st}

	app := fiber.New()
	app.Get(Path, service.Get)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
