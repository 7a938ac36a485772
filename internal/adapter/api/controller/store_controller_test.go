package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/route"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/repository"
	"github.com/hugohenrick/erp-multiloja/internal/service"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
	"github.com/hugohenrick/erp-multiloja/pkg/logger"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	kv := kvstore.NewMemoryStore()
	locks := keylock.New()
	storeRepo := repository.NewKVStoreDirectoryRepository(kv, locks)
	settingsRepo := repository.NewKVSettingsRepository(kv, locks)
	documentRepo := repository.NewKVDocumentRepository(kv, locks)

	syncService := service.NewSyncService(storeRepo, settingsRepo, documentRepo, logger.NopLogger{}, 2)

	router := gin.New()
	api := router.Group("/api/v1")
	route.SetupStoreRoutes(api,
		controller.NewStoreController(storeRepo),
		controller.NewSettingsController(settingsRepo),
		controller.NewSyncController(syncService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createStoreHTTP(t *testing.T, router *gin.Engine, name, parentID string) dto.StoreResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/stores", dto.StoreRequest{Name: name, ParentID: parentID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.StoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestCreateAndGetStore(t *testing.T) {
	router := setupRouter()

	hq := createStoreHTTP(t, router, "Matriz", "")
	assert.Equal(t, 0, hq.Level)

	branch := createStoreHTTP(t, router, "Filial Centro", hq.ID)
	assert.Equal(t, 1, branch.Level)
	assert.Equal(t, hq.ID, branch.ParentID)

	w := doJSON(t, router, http.MethodGet, "/api/v1/stores/"+branch.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.StoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Filial Centro", fetched.Name)
}

func TestCreateStoreValidation(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/stores", map[string]string{"code": "L1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/stores", dto.StoreRequest{Name: "Órfã", ParentID: "inexistente"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStoreNotFound(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/stores/inexistente", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHierarchyAndChildrenEndpoints(t *testing.T) {
	router := setupRouter()

	hq := createStoreHTTP(t, router, "Matriz", "")
	branch := createStoreHTTP(t, router, "Filial", hq.ID)
	kiosk := createStoreHTTP(t, router, "Quiosque", branch.ID)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/stores/%s/children", hq.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var children dto.StoreListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &children))
	require.Equal(t, 1, children.TotalCount)
	assert.Equal(t, branch.ID, children.Stores[0].ID)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/stores/%s/hierarchy", kiosk.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var hierarchy dto.StoreListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hierarchy))
	require.Equal(t, 3, hierarchy.TotalCount)
	assert.Equal(t, hq.ID, hierarchy.Stores[0].ID)
	assert.Equal(t, kiosk.ID, hierarchy.Stores[2].ID)
}

func TestDeleteStoreWithBranchesConflicts(t *testing.T) {
	router := setupRouter()

	hq := createStoreHTTP(t, router, "Matriz", "")
	branch := createStoreHTTP(t, router, "Filial", hq.ID)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/stores/"+hq.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/stores/"+branch.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/stores/"+hq.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSettingsEndpointsDefaultAndPatch(t *testing.T) {
	router := setupRouter()

	hq := createStoreHTTP(t, router, "Matriz", "")

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/stores/%s/settings", hq.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.False(t, cfg.SyncProducts)

	yes := true
	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/stores/%s/settings", hq.ID), dto.SettingsUpdateRequest{SyncProducts: &yes})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.True(t, cfg.SyncProducts)
	assert.False(t, cfg.SyncMembers)
}

func TestSyncEndpointDisabledCategory(t *testing.T) {
	router := setupRouter()

	hq := createStoreHTTP(t, router, "Matriz", "")
	createStoreHTTP(t, router, "Filial", hq.ID)

	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/stores/%s/sync/products", hq.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "desabilitada")

	w = doJSON(t, router, http.MethodPost, "/api/v1/stores/inexistente/sync/products", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
