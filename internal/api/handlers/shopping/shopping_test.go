package shopping

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrismart/internal/core/recipe"
	coreshopping "nutrismart/internal/core/shopping"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *recipe.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := recipe.NewStore()
	store.Add(recipe.Recipe{
		ID:          "r1",
		Title:       "Poulet au citron",
		Ingredients: []string{"Poulet fermier", "Citron", "Riz"},
	})
	store.Add(recipe.Recipe{
		ID:          "r2",
		Title:       "Riz aux légumes",
		Ingredients: []string{"Riz", "Courgettes"},
	})

	manager := coreshopping.NewManager(store, coreshopping.NewMemorySnapshotStore(), []string{"r1"})
	h := NewHandler(manager, store)

	router := gin.New()
	group := router.Group("/api/v1/shopping-list")
	group.GET("", h.HandleGetList)
	group.POST("/recipes/:id/toggle", h.HandleToggleRecipe)
	group.POST("/items/quantity", h.HandleSetQuantity)
	group.POST("/items/check", h.HandleSetChecked)
	group.POST("/reset", h.HandleReset)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) coreshopping.ListView {
	t.Helper()
	var view coreshopping.ListView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestHandleGetList(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/shopping-list", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	assert.Equal(t, []string{"r1"}, view.SelectedIDs)
	assert.Equal(t, 3, view.Totals.TotalItems)
	assert.NotEmpty(t, view.Groups)
}

func TestHandleToggleRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/recipes/r2/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, []string{"r1", "r2"}, view.SelectedIDs)

	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/recipes/r2/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, []string{"r1"}, view.SelectedIDs)
}

func TestHandleToggleRecipeUnknown(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/recipes/nope/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSetQuantity(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/items/quantity",
		map[string]interface{}{"label": "Riz", "delta": 2})
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	var found bool
	for _, group := range view.Groups {
		for _, item := range group.Items {
			if item.Label == "Riz" {
				found = true
				assert.Equal(t, 3, item.Quantity)
			}
		}
	}
	assert.True(t, found)
}

func TestHandleSetQuantityValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/items/quantity",
		map[string]interface{}{"delta": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/items/quantity",
		map[string]interface{}{"label": "   ", "delta": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSetChecked(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/items/check",
		map[string]interface{}{"label": "Citron", "checked": true})
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	for _, group := range view.Groups {
		for _, item := range group.Items {
			if item.Label == "Citron" {
				assert.True(t, item.Checked)
			}
		}
	}

	// checked is required even when false, a missing flag is an error.
	w = doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/items/check",
		map[string]interface{}{"label": "Citron"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleReset(t *testing.T) {
	router, _ := setupTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/recipes/r2/toggle", nil)
	doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/items/quantity",
		map[string]interface{}{"label": "Riz", "delta": 4})

	w := doJSON(t, router, http.MethodPost, "/api/v1/shopping-list/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	assert.Equal(t, []string{"r1"}, view.SelectedIDs)
	for _, group := range view.Groups {
		for _, item := range group.Items {
			assert.False(t, item.Checked)
		}
	}
}
