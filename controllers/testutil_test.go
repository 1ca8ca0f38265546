package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tire-shop/config"
	"tire-shop/controllers"
	"tire-shop/repositories"
	"tire-shop/routes"
	"tire-shop/services"
	"tire-shop/utils"
)

const testCatalog = `[
  {"id": 1, "name": "Tire A1", "brand": "A", "category": "Летние", "width": 185, "height": 65, "diameter": 15, "load_index": "92T", "model": "NU-301", "price": 3000, "images": ["a1.jpg"], "description": "Летняя шина."},
  {"id": 2, "name": "Tire B1", "brand": "B", "category": "Зимние", "subcategory": "Прицепная", "width": 195, "height": 65, "diameter": 15, "load_index": "95T", "model": "WD-2", "price": 5000, "images": []}
]`

type testApp struct {
	router   *gin.Engine
	notifier *utils.Notifier
}

func newTestApp(t *testing.T, catalog string) *testApp {
	return newTestAppWithStore(t, catalog, nil)
}

func newTestAppWithStore(t *testing.T, catalog string, store repositories.CartStore) *testApp {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		AppEnv:    "test",
		JWTSecret: "test-secret",
		CartTTL:   time.Hour,
	}

	catalogPath := filepath.Join(t.TempDir(), "products.json")
	if catalog != "" {
		require.NoError(t, os.WriteFile(catalogPath, []byte(catalog), 0o644))
	}

	catalogRepo := repositories.NewCatalogRepository(catalogPath)
	_ = catalogRepo.Load()

	if store == nil {
		fileStore, err := repositories.NewFileCartStore(t.TempDir())
		require.NoError(t, err)
		store = fileStore
	}

	notifier := utils.NewNotifier(time.Minute)
	cartService := services.NewCartService(catalogRepo, store, notifier)

	router := gin.New()
	routes.SetupRoutes(router,
		controllers.NewCatalogController(services.NewCatalogService(catalogRepo)),
		controllers.NewCartController(cartService, notifier))

	return &testApp{router: router, notifier: notifier}
}

// do replays any cookies from previous responses so a test behaves like
// one browser session.
func (a *testApp) do(t *testing.T, req *http.Request, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	if fresh := rec.Result().Cookies(); len(fresh) > 0 {
		cookies = fresh
	}
	return rec, cookies
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
