package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/catalog"
	catalogMocks "medialog/pkg/catalog/mocks"
	sqliteStore "medialog/pkg/storage/sqlite"
	"medialog/pkg/tracker"
)

func testServer(t *testing.T, client catalog.Client) Server {
	t.Helper()

	store, err := sqliteStore.New(":memory:")
	require.NoError(t, err)

	tr := tracker.New(client, store, config.Tracker{
		ScanConcurrency: 4,
		ImportRate:      1000,
	})

	return New(zap.NewNop().Sugar(), tr)
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_CreateEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := catalogMocks.NewMockClient(ctrl)
	s := testServer(t, client)

	t.Run("created", func(t *testing.T) {
		body := bytes.NewBufferString(`{"catalogId": 1399, "mediaType": "show", "title": "Game of Thrones"}`)
		req, err := http.NewRequest("POST", "/api/v1/entities", body)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.CreateEntity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Nil(t, response.Error)

		entity, ok := response.Response.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "plan_to_watch", entity["state"])
		assert.Equal(t, "Game of Thrones", entity["title"])
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{"catalogId": 1399, "mediaType": "show", "title": "Game of Thrones"}`)
		req, err := http.NewRequest("POST", "/api/v1/entities", body)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.CreateEntity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("missing catalog id", func(t *testing.T) {
		body := bytes.NewBufferString(`{"mediaType": "show", "title": "Game of Thrones"}`)
		req, err := http.NewRequest("POST", "/api/v1/entities", body)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.CreateEntity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown media type", func(t *testing.T) {
		body := bytes.NewBufferString(`{"catalogId": 42, "mediaType": "podcast", "title": "Serial"}`)
		req, err := http.NewRequest("POST", "/api/v1/entities", body)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.CreateEntity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_GetEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := catalogMocks.NewMockClient(ctrl)
	s := testServer(t, client)

	t.Run("not found", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/api/v1/entities/999", nil)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": "999"})

		rr := httptest.NewRecorder()
		s.GetEntity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/api/v1/entities/abc", nil)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})

		rr := httptest.NewRecorder()
		s.GetEntity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := catalogMocks.NewMockClient(ctrl)
	s := testServer(t, client)

	createBody := bytes.NewBufferString(`{"catalogId": 603, "mediaType": "movie", "title": "The Matrix"}`)
	createReq, err := http.NewRequest("POST", "/api/v1/entities", createBody)
	require.NoError(t, err)
	createRR := httptest.NewRecorder()
	s.CreateEntity().ServeHTTP(createRR, createReq)
	require.Equal(t, http.StatusCreated, createRR.Code)

	var created GenericResponse
	require.NoError(t, json.Unmarshal(createRR.Body.Bytes(), &created))
	entity := created.Response.(map[string]any)
	id := strconv.FormatInt(int64(entity["id"].(float64)), 10)

	t.Run("valid transition", func(t *testing.T) {
		body := bytes.NewBufferString(`{"status": "watching"}`)
		req, err := http.NewRequest("PUT", "/api/v1/entities/"+id+"/status", body)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": id})

		rr := httptest.NewRecorder()
		s.SetStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{"status": "rewatching"}`)
		req, err := http.NewRequest("PUT", "/api/v1/entities/"+id+"/status", body)
		assert.NoError(t, err)
		req = mux.SetURLVars(req, map[string]string{"id": id})

		rr := httptest.NewRecorder()
		s.SetStatus().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := catalogMocks.NewMockClient(ctrl)
	s := testServer(t, client)

	t.Run("empty query", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/api/v1/search", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.Search().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("results", func(t *testing.T) {
		client.EXPECT().SearchByTitle(gomock.Any(), "wire").Return([]catalog.Match{
			{CatalogID: 1438, MediaType: catalog.MediaTypeShow, Title: "The Wire"},
		}, nil)

		req, err := http.NewRequest("GET", "/api/v1/search?q=wire", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		s.Search().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response GenericResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		matches, ok := response.Response.([]any)
		require.True(t, ok)
		assert.Len(t, matches, 1)
	})
}
