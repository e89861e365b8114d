package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redpill/charting/pkg/adapters/fs"
	"github.com/redpill/charting/pkg/core"
	"github.com/redpill/charting/pkg/httpapi"
)

func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	gw := fs.NewGateway(fs.Config{
		Root:     filepath.Join(t.TempDir(), "Database"),
		AutoInit: true,
	})
	svc := core.NewService(gw, nil)

	return httpapi.NewServer(svc, "127.0.0.1:0", nil).Handler()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPingEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec := doRequest(t, h, http.MethodGet, "/api/ping", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":"pong"}`, rec.Body.String())
}

func TestChartEndpoints(t *testing.T) {
	h := setupAPI(t)

	t.Run("Save Then Load Returns Blob Verbatim", func(t *testing.T) {
		blob := []byte(`{"zoom":3,"overlays":["ema"]}`)

		rec := doRequest(t, h, http.MethodPut, "/api/charts/btc-usd", blob)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(t, h, http.MethodGet, "/api/charts/btc-usd", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, string(blob), rec.Body.String())
	})

	t.Run("Missing Chart Is 404 With Error String", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/charts/never-saved", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.NotEmpty(t, payload["error"])
	})

	t.Run("List Contains Saved IDs", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/charts", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var payload map[string][]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Contains(t, payload["sourceIds"], "btc-usd")
	})
}

func TestNotesEndpoints(t *testing.T) {
	h := setupAPI(t)

	t.Run("Fresh Root Loads Empty Array", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/notes", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Round Trip Preserves Order And Wire Names", func(t *testing.T) {
		payload := `[
			{"id":"n1","title":"A","content":"first","inkData":null,"mode":"text",
			 "isMinimized":false,"isPinned":true,"position":{"x":1,"y":2},
			 "size":{"w":100,"h":80},"zIndex":2,"color":"#fff"},
			{"id":"n2","title":"B","content":"second","inkData":"strokes","mode":"ink",
			 "isMinimized":true,"isPinned":null,"position":{"x":3,"y":4},
			 "size":{"w":50,"h":40},"zIndex":1,"color":"#000"}
		]`

		rec := doRequest(t, h, http.MethodPut, "/api/notes", []byte(payload))
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(t, h, http.MethodGet, "/api/notes", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var notes []core.StickyNote
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
		require.Len(t, notes, 2)
		assert.Equal(t, "n1", notes[0].ID)
		assert.Equal(t, "n2", notes[1].ID)
		require.NotNil(t, notes[1].InkData)
		assert.Equal(t, "strokes", *notes[1].InkData)
		assert.Nil(t, notes[1].IsPinned)

		assert.Contains(t, rec.Body.String(), `"zIndex"`)
		assert.Contains(t, rec.Body.String(), `"isMinimized"`)
	})

	t.Run("Malformed Payload Is 400", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPut, "/api/notes", []byte(`{"not":"an array"`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReadCSVEndpoint(t *testing.T) {
	h := setupAPI(t)

	t.Run("Returns Content Verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2"), 0644))

		body, _ := json.Marshal(map[string]string{"filePath": path})
		rec := doRequest(t, h, http.MethodPost, "/api/csv/read", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "a,b\n1,2", payload["content"])
	})

	t.Run("Missing File Is Error Not Crash", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"filePath": filepath.Join(t.TempDir(), "gone.csv")})
		rec := doRequest(t, h, http.MethodPost, "/api/csv/read", body)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "error"))
	})

	t.Run("Missing Path Is 400", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodPost, "/api/csv/read", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStateEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec := doRequest(t, h, http.MethodGet, "/api/state", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var state core.ServiceState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "fs-gateway", state.GatewayType)
	assert.True(t, state.Watchable)
}

func TestCORSPreflight(t *testing.T) {
	h := setupAPI(t)

	rec := doRequest(t, h, http.MethodOptions, "/api/notes", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
