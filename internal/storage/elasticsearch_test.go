package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_hotel_search/internal/models"
	"github.com/akozadaev/go_hotel_search/internal/normalizer"
	"github.com/akozadaev/go_hotel_search/internal/upstream"
)

// fakeCatalog имитирует минимальный набор API Elasticsearch для индекса hotels
type fakeCatalog struct {
	mu       sync.Mutex
	created  bool
	mapping  string
	docs     map[string]models.HotelDocument
	failNext int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{docs: make(map[string]models.HotelDocument)}
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	if f.failNext != 0 {
		w.WriteHeader(f.failNext)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
		f.failNext = 0
		return
	}

	switch {
	case r.Method == http.MethodHead && r.URL.Path == "/hotels":
		if !f.created {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && r.URL.Path == "/hotels":
		body, _ := io.ReadAll(r.Body)
		f.created = true
		f.mapping = string(body)
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	case r.Method == http.MethodPost && r.URL.Path == "/_bulk":
		f.bulk(w, r)
	case r.URL.Path == "/hotels/_count":
		_ = json.NewEncoder(w).Encode(map[string]int{"count": len(f.docs)})
	case r.Method == http.MethodPost && r.URL.Path == "/hotels/_search":
		f.search(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeCatalog) bulk(w http.ResponseWriter, r *http.Request) {
	scanner := bufio.NewScanner(r.Body)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)
	for scanner.Scan() {
		var meta struct {
			Index struct {
				ID string `json:"_id"`
			} `json:"index"`
		}
		_ = json.Unmarshal(scanner.Bytes(), &meta)
		if !scanner.Scan() {
			break
		}
		var doc models.HotelDocument
		_ = json.Unmarshal(scanner.Bytes(), &doc)
		f.docs[meta.Index.ID] = doc
	}
	_, _ = w.Write([]byte(`{"errors":false,"items":[]}`))
}

func (f *fakeCatalog) search(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Query struct {
			Match struct {
				Destination struct {
					Query string `json:"query"`
				} `json:"destination"`
			} `json:"match"`
		} `json:"query"`
	}
	_ = json.NewDecoder(r.Body).Decode(&query)
	needle := strings.ToLower(query.Query.Match.Destination.Query)

	hits := make([]map[string]any, 0)
	for _, doc := range f.docs {
		if strings.Contains(strings.ToLower(doc.Destination), needle) {
			hits = append(hits, map[string]any{"_source": doc})
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"hits": map[string]any{"hits": hits}})
}

func (f *fakeCatalog) with(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
}

func newTestStorage(t *testing.T) (*ElasticsearchStorage, *fakeCatalog) {
	t.Helper()
	fake := newFakeCatalog()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)

	return NewElasticsearchStorage(client, "hotels", server.URL+"/"), fake
}

func TestCreateIndexIsIdempotent(t *testing.T) {
	es, fake := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, es.CreateIndex(ctx, `{"mappings":{}}`))
	fake.with(func() {
		assert.True(t, fake.created)
		assert.Equal(t, `{"mappings":{}}`, fake.mapping)
		fake.mapping = ""
	})

	require.NoError(t, es.CreateIndex(ctx, `{"mappings":{"changed":true}}`))
	fake.with(func() {
		assert.Empty(t, fake.mapping)
	})
}

func TestBulkIndexAndFetch(t *testing.T) {
	es, fake := newTestStorage(t)
	ctx := context.Background()

	docs := []models.HotelDocument{
		{Destination: "Nice, France", Raw: models.RawListing{"hotel_id": json.Number("42"), "name": "Sea View", "photo": "http://x/1.jpg"}},
		{Destination: "Nice, France", Raw: models.RawListing{"title": "No id", "images": []any{"http://x/2.jpg"}}},
		{Destination: "Paris, France", Raw: models.RawListing{"id": "p-1", "name": "Left Bank"}},
	}
	require.NoError(t, es.BulkIndexHotels(ctx, docs))
	fake.with(func() {
		assert.Contains(t, fake.docs, "42")
		assert.Contains(t, fake.docs, "p-1")
	})

	count, err := es.CountHotels(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	body, err := es.Fetch(ctx, models.SearchQuery{QueryText: "nice"})
	require.NoError(t, err)

	hotels, err := normalizer.ExtractHotels(body)
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
	for _, h := range hotels {
		assert.NotEqual(t, "Left Bank", h["name"])
	}
}

func TestBulkIndexEmptyIsNoop(t *testing.T) {
	es, fake := newTestStorage(t)
	require.NoError(t, es.BulkIndexHotels(context.Background(), nil))
	fake.with(func() {
		assert.Empty(t, fake.docs)
	})
}

func TestFetchMissingIndexIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	es := NewElasticsearchStorage(nil, "hotels", server.URL)
	body, err := es.Fetch(context.Background(), models.SearchQuery{QueryText: "Nice"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestFetchCatalogFailure(t *testing.T) {
	es, fake := newTestStorage(t)
	fake.with(func() {
		fake.failNext = http.StatusInternalServerError
	})

	_, err := es.Fetch(context.Background(), models.SearchQuery{QueryText: "Nice"})

	var upErr *upstream.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusBadGateway, upErr.StatusCode)
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "abc", documentID(models.RawListing{"id": " abc "}))
	assert.Equal(t, "123", documentID(models.RawListing{"hotel_id": json.Number("123")}))
	assert.Equal(t, "77", documentID(models.RawListing{"place_id": float64(77)}))
	assert.Len(t, documentID(models.RawListing{"name": "x"}), 36)
}
