package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/middleware"
	"wander/pkg/utils"
)

func newCatalogTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.TraceIDMiddleware())
	controller := NewCatalogController(services.NewCatalogService(repositories.NewStaticCatalogRepository()))
	router.GET("/catalog/flights", controller.ListFlightsHandler)
	router.GET("/catalog/hotels", controller.ListHotelsHandler)
	router.GET("/catalog/activities", controller.ListActivitiesHandler)
	return router
}

func getCatalog(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListFlightsHandlerReturnsOptions(t *testing.T) {
	router := newCatalogTestRouter()

	w := getCatalog(t, router, "/catalog/flights?origin=London&destination=Paris")

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 3)
}

func TestListFlightsHandlerRequiresRoute(t *testing.T) {
	router := newCatalogTestRouter()

	w := getCatalog(t, router, "/catalog/flights?origin=London")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "origin and destination are required", resp.Message)
}

func TestListHotelsHandlerRequiresDestination(t *testing.T) {
	router := newCatalogTestRouter()

	w := getCatalog(t, router, "/catalog/hotels")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActivitiesHandlerReturnsOptions(t *testing.T) {
	router := newCatalogTestRouter()

	w := getCatalog(t, router, "/catalog/activities?destination=Tokyo")

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 4)
}
