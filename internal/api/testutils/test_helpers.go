package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/louvor-app/worship-planner/internal/api"
	"github.com/louvor-app/worship-planner/internal/repository"
	"github.com/louvor-app/worship-planner/internal/service"
	"github.com/louvor-app/worship-planner/internal/store"
)

// TestContext holds all dependencies for tests
type TestContext struct {
	Router  *gin.Engine
	Store   *store.Store
	Slot    *repository.MemorySlot
	Service service.Service
}

// SetupTestContext wires a router against a store seeded from an empty
// in-memory slot, so every test starts from the fixed seed dataset.
func SetupTestContext(t *testing.T) *TestContext {
	log := logrus.New()
	log.SetOutput(io.Discard)

	slot := repository.NewMemorySlot()
	st, err := store.New(context.Background(), slot, log)
	require.NoError(t, err, "Failed to set up test store")

	svc := service.NewDefaultService(st)
	handler := api.NewHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.SetupRoutes(router)

	return &TestContext{
		Router:  router,
		Store:   st,
		Slot:    slot,
		Service: svc,
	}
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body into target, failing the test on error.
func Decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "Failed to decode response body")
}
