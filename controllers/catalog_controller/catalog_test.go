package catalog_controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wizreet/cocobakes/controllers/catalog_controller"
	"github.com/wizreet/cocobakes/routes"
	"github.com/wizreet/cocobakes/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog_controller.Init(services.DefaultCatalog())

	r := gin.New()
	api := r.Group("/api/v1")
	routes.SetupStorefrontRoutes(api)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetCatalogReturnsAllCategories(t *testing.T) {
	r := newTestRouter()

	w := get(t, r, "/api/v1/store/catalog")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var env struct {
		Data struct {
			Base struct {
				Options []struct {
					ID    string `json:"id"`
					Price int    `json:"price"`
				} `json:"options"`
			} `json:"base"`
			Quantity struct {
				Min     int `json:"min"`
				Max     int `json:"max"`
				Default int `json:"default"`
			} `json:"quantity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v\nbody: %s", err, w.Body.String())
	}
	if len(env.Data.Base.Options) != 5 {
		t.Fatalf("expected 5 bases, got %d", len(env.Data.Base.Options))
	}
	if env.Data.Quantity.Min != 1 || env.Data.Quantity.Max != 24 || env.Data.Quantity.Default != 4 {
		t.Fatalf("unexpected quantity rule: %+v", env.Data.Quantity)
	}
}

func TestGetCategoryByKey(t *testing.T) {
	r := newTestRouter()

	for _, key := range []string{"base", "toppings", "extras"} {
		if w := get(t, r, "/api/v1/store/catalog/"+key); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", key, w.Code)
		}
	}

	if w := get(t, r, "/api/v1/store/catalog/frosting"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", w.Code)
	}
}
