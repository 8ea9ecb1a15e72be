package recipes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutrismart/internal/core/recipe"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := recipe.NewStore()
	store.Add(recipe.Recipe{
		ID:       "r1",
		Title:    "Poulet au citron",
		Category: "Plat",
		Tags:     recipe.StringList{"volaille"},
	})
	store.Add(recipe.Recipe{
		ID:       "r2",
		Title:    "Salade de quinoa",
		Category: "Entrée",
		Tags:     recipe.StringList{"végétarien"},
	})

	h := NewHandler(store, nil)
	router := gin.New()
	group := router.Group("/api/v1/recipes")
	group.GET("", h.HandleList)
	group.GET("/:id", h.HandleGet)
	group.POST("/generate", h.HandleGenerate)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleList(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, []string{"Entrée", "Plat"}, resp.Categories)
}

func TestHandleListFilters(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("query", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?q=poulet", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "r1", resp.Recipes[0].ID)
	})

	t.Run("category", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?category=Plat", "")
		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "r1", resp.Recipes[0].ID)
	})

	t.Run("tag", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?tag=v%C3%A9g%C3%A9tarien", "")
		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "r2", resp.Recipes[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?q=inexistant", "")
		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Total)
	})
}

func TestHandleGet(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes/r1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got recipe.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Poulet au citron", got.Title)
}

func TestHandleGetNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes/absent", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Without an API key the generator is nil and the endpoint reports the
// service as unavailable instead of crashing.
func TestHandleGenerateDisabled(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/recipes/generate",
		`{"dish_name":"Risotto"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
