package routes

import (
	"leaguecatalog/api/handlers"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(&handlers.ChampionHandler{}, &handlers.AuthHandler{}, &handlers.UserHandler{})

	registered := map[string]bool{}
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/champions",
		"GET /api/champions/:name",
		"POST /api/champions",
		"PUT /api/champions/:name",
		"DELETE /api/champions/:name",
		"POST /api/auth/login",
		"GET /api/users",
		"POST /api/users",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}

func TestProtectWrites(t *testing.T) {
	router := setupTestRouter()
	router.ProtectWrites(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	})
	router.SetupRoutes(&handlers.ChampionHandler{})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		path := "/api/champions/Ahri"
		if method == http.MethodPost {
			path = "/api/champions"
		}

		w := httptest.NewRecorder()
		router.Engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, method)
	}
}
