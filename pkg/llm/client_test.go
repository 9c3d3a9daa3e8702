package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-bot-go/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(config.OllamaConfig{
		BaseURL:        baseURL,
		Model:          "mistral",
		Temperature:    0.7,
		TimeoutSeconds: 5,
	})
}

func TestGenerate_Success(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "hello"})
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", answer)

	// 请求体必须是固定参数的非流式调用
	assert.Equal(t, "mistral", gotBody.Model)
	assert.Equal(t, "hi", gotBody.Prompt)
	assert.False(t, gotBody.Stream)
	assert.InDelta(t, 0.7, gotBody.Temperature, 1e-9)
}

func TestGenerate_MissingResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"something": "else"})
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, fallbackText, answer)
}

func TestGenerate_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "hi")
	require.Error(t, err)

	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, KindStatus, lerr.Kind)
	assert.Equal(t, http.StatusInternalServerError, lerr.Status)
	assert.Contains(t, lerr.Error(), "500")
}

func TestGenerate_ConnectionFailure(t *testing.T) {
	// 先拿到一个本地地址再关掉，保证连接被拒绝
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	_, err := newTestClient(baseURL).Generate(context.Background(), "hi")
	require.Error(t, err)

	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, KindConnection, lerr.Kind)
}

func TestGenerate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Generate(context.Background(), "hi")
	require.Error(t, err)

	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, KindInternal, lerr.Kind)
}
