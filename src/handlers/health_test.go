package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sitevoice/complaints-server/src/database"
)

func newHealthTestRouter(db *database.Database) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHealthHandler(db)
	router := gin.New()
	router.GET("/health", handler.HandleHealth)
	router.GET("/ready", handler.HandleReady)
	return router
}

func TestHandleHealth(t *testing.T) {
	// Liveness does not touch the database
	router := newHealthTestRouter(database.NewFromPool(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assertStatusCode(t, w, http.StatusOK)
}

func TestHandleReady_DatabaseUnavailable(t *testing.T) {
	router := newHealthTestRouter(database.NewFromPool(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assertStatusCode(t, w, http.StatusServiceUnavailable)
}

func TestHandleReady_WithDatabase(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		router := newHealthTestRouter(database.NewFromPool(tdb.Pool))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assertStatusCode(t, w, http.StatusOK)
	})
}
