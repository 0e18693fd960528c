package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", handler)
	return router
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "internal_error", resp.Error)
	assert.Equal(t, "Internal Server Error", resp.Message)
}

func TestErrorHandlerRendersAttachedError(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
		_ = c.Error(errors.New("nothing here"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "not_found", resp.Error)
	assert.Equal(t, "nothing here", resp.Message)
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "invalid_category", "unknown category")
		_ = c.Error(errors.New("ignored"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "invalid_category", resp.Error)
	assert.Equal(t, "unknown category", resp.Message)
}
