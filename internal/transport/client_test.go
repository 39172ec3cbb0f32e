package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/jettonmap/pkg/errors"
)

func TestClient_PostJSON(t *testing.T) {
	var gotBody map[string]any
	var gotKey, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := New(&HeaderAuth{Header: "X-API-Key"}, WithAPIKey("secret"))
	resp, err := c.PostJSON(context.Background(), server.URL, map[string]any{"method": "get_jetton_data"})
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, DecodeResponse(resp, "test", &out))
	assert.True(t, out.OK)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "get_jetton_data", gotBody["method"])
}

func TestClient_NoKeyNoHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(&HeaderAuth{Header: "X-API-Key"})
	resp, err := c.Get(context.Background(), server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Empty(t, gotKey)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := New(nil, WithTimeout(20*time.Millisecond))
	_, err := c.Get(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestClient_TimeoutLeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	c := New(nil, WithHTTPClient(shared), WithTimeout(5*time.Second))
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, 5*time.Second, c.http.Timeout)
	assert.NotSame(t, shared, c.http)

	other := New(nil, WithHTTPClient(shared))
	assert.Same(t, shared, other.http, "without a timeout the client is used as given")
}

func TestDecodeResponse_Errors(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"ok":false,"error":"Ratelimit exceed"}`))
		}))
		defer server.Close()

		resp, err := New(nil).Get(context.Background(), server.URL)
		require.NoError(t, err)

		var out map[string]any
		err = DecodeResponse(resp, "toncenter", &out)
		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.True(t, errors.IsRateLimited(err))
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		resp, err := New(nil).Get(context.Background(), server.URL)
		require.NoError(t, err)

		var out map[string]any
		err = DecodeResponse(resp, "toncenter", &out)
		var perr *errors.ParseError
		assert.ErrorAs(t, err, &perr)
	})
}
