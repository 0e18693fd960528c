package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likelion-hsu/recipememo/backend/config"
	"github.com/likelion-hsu/recipememo/backend/internal/mocks"
	"github.com/likelion-hsu/recipememo/backend/internal/storage"
	"github.com/likelion-hsu/recipememo/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	cfg := &config.Config{
		ServerHost:    "127.0.0.1",
		ServerPort:    "0",
		MaxUploadSize: 1 << 20,
	}
	db := testhelpers.SetupSQLiteDatabase(t)
	return New(cfg, db, new(mocks.MockRecipeService), storage.NewLocalImageStore(t.TempDir()), nil)
}

func TestNew(t *testing.T) {
	server := newTestServer(t)
	assert.NotNil(t, server)
	assert.Equal(t, "127.0.0.1:0", server.http.Addr)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/health", nil)
	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStartAndShutdown(t *testing.T) {
	server := newTestServer(t)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// give ListenAndServe a moment to bind
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, server.Shutdown(context.Background()))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
