package upstream

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

func testQuery() models.SearchQuery {
	return models.SearchQuery{
		QueryText:  "Nice, France",
		CheckIn:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		AdultCount: 2,
		ChildCount: 1,
	}
}

func newTestClient(baseURL, key string) *StayAPIClient {
	return NewStayAPIClient(StayAPIConfig{
		APIKey:  key,
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchSendsQueryAndKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		q := r.URL.Query()
		assert.Equal(t, "Nice, France", q.Get("location"))
		assert.Equal(t, "2025-07-01", q.Get("check_in"))
		assert.Equal(t, "2025-07-05", q.Get("check_out"))
		assert.Equal(t, "2", q.Get("adults"))
		assert.Equal(t, "1", q.Get("children"))
		assert.Equal(t, "USD", q.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hotels":[{"name":"A"}]}`))
	}))
	defer server.Close()

	body, err := newTestClient(server.URL, "  secret \n").Fetch(context.Background(), testQuery())
	require.NoError(t, err)
	assert.JSONEq(t, `{"hotels":[{"name":"A"}]}`, string(body))
}

func TestFetchWithoutKeyMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	for _, key := range []string{"", "   "} {
		_, err := newTestClient(server.URL, key).Fetch(context.Background(), testQuery())
		assert.ErrorIs(t, err, ErrCredentialsNotConfigured)
	}
	assert.Zero(t, calls.Load())
}

func TestFetchStatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantHelp    bool
	}{
		{"unauthorized json", http.StatusUnauthorized, `{"message":"Invalid API key"}`, "Invalid API key", true},
		{"json without message", http.StatusTooManyRequests, `{"error":"slow down"}`, "HTTP 429", false},
		{"plain text body", http.StatusInternalServerError, `upstream exploded`, "upstream exploded", false},
		{"empty body", http.StatusServiceUnavailable, ``, "HTTP 503", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, "key").Fetch(context.Background(), testQuery())
			require.Error(t, err)

			var upErr *UpstreamError
			require.True(t, errors.As(err, &upErr))
			assert.Equal(t, tt.status, upErr.StatusCode)
			assert.Equal(t, tt.wantMessage, upErr.Message)
			assert.NotNil(t, upErr.Details)
			if tt.wantHelp {
				assert.Contains(t, upErr.Help, "Troubleshooting")
			} else {
				assert.Empty(t, upErr.Help)
			}
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url, "key").Fetch(context.Background(), testQuery())

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusBadGateway, upErr.StatusCode)
	assert.NotNil(t, upErr.Unwrap())
}

func TestFetchCanceledContext(t *testing.T) {
	client := NewStayAPIClient(StayAPIConfig{APIKey: "key", BaseURL: "http://127.0.0.1:1", RatePerSec: 0.001, Burst: 1}, nil)
	// первый токен расходуется, второй ждать слишком долго
	require.True(t, client.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, testQuery())
	assert.Error(t, err)
}
