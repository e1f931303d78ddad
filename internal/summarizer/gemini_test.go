package summarizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

// geminiServer answers generateContent calls with the reply registered for the request's API key
func geminiServer(t *testing.T, replies map[string]func(w http.ResponseWriter)) (*httptest.Server, *[]string) {
	t.Helper()
	var mu sync.Mutex
	var keys []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)

		key := r.Header.Get("x-goog-api-key")
		mu.Lock()
		keys = append(keys, key)
		mu.Unlock()

		reply, ok := replies[key]
		if !ok {
			http.Error(w, `{"error":{"code":403,"message":"unknown key","status":"PERMISSION_DENIED"}}`, http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		reply(w)
	}))
	t.Cleanup(srv.Close)
	return srv, &keys
}

func geminiText(text string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"` + text + `"}]}}]}`))
	}
}

func geminiQuota(w http.ResponseWriter) {
	w.WriteHeader(http.StatusTooManyRequests)
	w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
}

func TestGemini_Generate(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		replies  map[string]func(w http.ResponseWriter)
		want     string
		wantErr  string
		wantNext int
	}{
		{
			name:    "success",
			keys:    []string{"k1"},
			replies: map[string]func(w http.ResponseWriter){"k1": geminiText("A compact laptop.")},
			want:    "A compact laptop.",
		},
		{
			name: "empty candidates",
			keys: []string{"k1"},
			replies: map[string]func(w http.ResponseWriter){"k1": func(w http.ResponseWriter) {
				w.Write([]byte(`{"candidates":[]}`))
			}},
			wantErr: "empty response",
		},
		{
			name:     "quota rotates to next key",
			keys:     []string{"k1", "k2"},
			replies:  map[string]func(w http.ResponseWriter){"k1": geminiQuota, "k2": geminiText("Rotated reply.")},
			want:     "Rotated reply.",
			wantNext: 1,
		},
		{
			name:     "all keys exhausted",
			keys:     []string{"k1", "k2"},
			replies:  map[string]func(w http.ResponseWriter){"k1": geminiQuota, "k2": geminiQuota},
			wantErr:  "all API keys exhausted",
			wantNext: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, seen := geminiServer(t, tt.replies)

			g, err := NewGemini(tt.keys, "gemini-test", logger.Discard(), WithGeminiBaseURL(srv.URL+"/"))
			require.NoError(t, err)

			got, err := g.Generate(context.Background(), "Summarize this product in 1-2 sentences:\nX - y")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			idx, _ := g.key()
			assert.Equal(t, tt.wantNext, idx)
			assert.NotEmpty(t, *seen)
		})
	}
}

func TestGemini_NonQuotaErrorKeepsKey(t *testing.T) {
	srv, seen := geminiServer(t, map[string]func(w http.ResponseWriter){"k2": geminiText("unused")})

	g, err := NewGemini([]string{"bad", "k2"}, "gemini-test", logger.Discard(), WithGeminiBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate content")
	assert.NotContains(t, *seen, "k2")
}

func TestGeminiRotate(t *testing.T) {
	g, err := NewGemini([]string{"a", "b"}, "", logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", g.model)

	idx, key := g.key()
	assert.Equal(t, 0, idx)
	assert.Equal(t, "a", key)

	g.rotate(0)
	g.rotate(0) // stale index, no double advance
	_, key = g.key()
	assert.Equal(t, "b", key)

	g.rotate(1)
	_, key = g.key()
	assert.Equal(t, "a", key)
}
