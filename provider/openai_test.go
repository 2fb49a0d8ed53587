package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerate(t *testing.T) {
	var got imagesGenerationsRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		resp := map[string]interface{}{
			"created": time.Now().Unix(),
			"data":    []map[string]string{{"b64_json": "aGVsbG8="}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := NewOpenAI(srv.URL, "sk-test", "", 5*time.Second)

	b64, err := p.Generate(context.Background(), "A futuristic city skyline at sunset", "1024x1024")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", b64)

	assert.Equal(t, "dall-e-3", got.Model)
	assert.Equal(t, "A futuristic city skyline at sunset", got.Prompt)
	assert.Equal(t, 1, got.N)
	assert.Equal(t, "1024x1024", got.Size)
	assert.Equal(t, "b64_json", got.ResponseFormat)
}

func TestOpenAIGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Billing hard limit has been reached"},
		})
	}))
	defer srv.Close()

	p := NewOpenAI(srv.URL, "sk-test", "dall-e-3", 5*time.Second)

	_, err := p.Generate(context.Background(), "anything", "1024x1024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "Billing hard limit has been reached")
}

func TestOpenAIGenerateEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
	}))
	defer srv.Close()

	p := NewOpenAI(srv.URL, "sk-test", "dall-e-3", 5*time.Second)

	_, err := p.Generate(context.Background(), "anything", "1024x1024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image data")
}

func TestOpenAIGenerateHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	p := NewOpenAI(srv.URL, "sk-test", "dall-e-3", time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, "anything", "1024x1024")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
