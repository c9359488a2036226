// Package storage содержит реализации хранилищ для Elasticsearch/OpenSearch и PostgreSQL.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"github.com/akozadaev/go_hotel_search/internal/models"
	"github.com/akozadaev/go_hotel_search/internal/upstream"
)

// DefaultSearchSize - сколько документов каталог отдает на один поиск
const DefaultSearchSize = 50

// ElasticsearchStorage хранит сырые записи отелей в индексе Elasticsearch/OpenSearch
// и служит альтернативным поставщиком для поиска.
// Массовая индексация и поиск используют прямые HTTP запросы для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client     *elasticsearch.Client // Официальный клиент Elasticsearch
	index      string                // Имя индекса отелей
	httpClient *http.Client          // HTTP клиент для прямых запросов
	baseURL    string                // Базовый URL Elasticsearch/OpenSearch
	searchSize int
}

// NewElasticsearchStorage создает хранилище для индекса index.
// baseURL используется для прямых HTTP запросов.
func NewElasticsearchStorage(client *elasticsearch.Client, index string, baseURL string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:     client,
		index:      index,
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		searchSize: DefaultSearchSize,
	}
}

// CreateIndex создает индекс с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, mappingJSON string) error {
	res, err := es.client.Indices.Exists([]string{es.index}, es.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = es.client.Indices.Create(
		es.index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// BulkIndexHotels индексирует сырые записи за один запрос Bulk API.
// ID документа берется из id/hotel_id/place_id записи, иначе генерируется.
func (es *ElasticsearchStorage) BulkIndexHotels(ctx context.Context, docs []models.HotelDocument) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for _, doc := range docs {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": es.index,
				"_id":    documentID(doc.Raw),
			},
		}

		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode hotel: %w", err)
		}
	}

	url := fmt.Sprintf("%s/_bulk?refresh=true", es.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if result.Errors {
		return fmt.Errorf("bulk indexing reported item errors")
	}

	return nil
}

// CountHotels возвращает число документов в индексе
func (es *ElasticsearchStorage) CountHotels(ctx context.Context) (int, error) {
	req := esapi.CountRequest{
		Index: []string{es.index},
	}

	res, err := req.Do(ctx, es.client)
	if err != nil {
		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return 0, fmt.Errorf("error counting hotels: %s", string(body))
	}

	var result struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Count, nil
}

// Fetch ищет записи по направлению и возвращает JSON массив сырых записей,
// то есть тело в одной из форм, которые понимает normalizer.ExtractHotels.
// Отсутствующий индекс дает пустой массив.
func (es *ElasticsearchStorage) Fetch(ctx context.Context, q models.SearchQuery) ([]byte, error) {
	query := map[string]interface{}{
		"size": es.searchSize,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"destination": map[string]interface{}{
					"query": q.QueryText,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_search", es.baseURL, es.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return nil, &upstream.UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "hotel catalog is unreachable",
			Err:        err,
		}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return []byte("[]"), nil
	}

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, &upstream.UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("hotel catalog search failed: status %d", res.StatusCode),
			Details:    string(body),
		}
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Raw json.RawMessage `json:"raw"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	hotels := make([]json.RawMessage, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		if len(hit.Source.Raw) == 0 {
			continue
		}
		hotels = append(hotels, hit.Source.Raw)
	}

	return json.Marshal(hotels)
}

// documentID берет идентификатор поставщика, чтобы повторная индексация обновляла документ
func documentID(raw models.RawListing) string {
	for _, key := range []string{"id", "hotel_id", "place_id"} {
		switch v := raw[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return uuid.NewString()
}
