package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/app/service"
	"github.com/eweracs/go-shortlink/internal/middleware"
	"github.com/eweracs/go-shortlink/internal/models"
	"github.com/eweracs/go-shortlink/internal/storage"
)

const testToken = "test-token"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	svc := service.NewShortLink(store, zap.NewNop())
	r := Init("https://example.dev", zap.NewNop(), svc, testToken, middleware.NewCORSPolicy(nil))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestShortenResolveRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/shorten", testToken,
		`{"driveUrl":"https://drive.google.com/file/d/XYZ789/view","name":"slides"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.ShortenResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Len(t, created.ShortID, 6)
	assert.Equal(t, "XYZ789", created.DriveID)
	assert.Equal(t, "https://example.dev/download?"+created.ShortID, created.ShortURL)
	assert.Equal(t, "https://example.dev/download?short="+created.ShortID, created.ShortURLLong)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/resolve/"+created.ShortID, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"driveId":"XYZ789","name":"slides"}`, string(body))
}

func TestShortenRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		token string
		body  string
	}{
		{name: "no token with valid body", body: `{"driveId":"drive-file-1"}`},
		{name: "no token with empty body", body: ""},
		{name: "wrong token", token: "wrong", body: `{"driveId":"drive-file-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, srv.URL+"/shorten", tt.token, tt.body)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.JSONEq(t, `{"error":"unauthorized"}`, string(body))
		})
	}
}

func TestResolveUnknownID(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/resolve/zzzzzz", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, string(body))
}

func TestResolveEmptySegment(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/resolve/", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"shortId is required"}`, string(body))
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/nope", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, string(body))
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/shorten", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.dev")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
