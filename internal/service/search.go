// Package service связывает поставщика, нормализатор и фильтр в сценарии поиска.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/akozadaev/go_hotel_search/internal/filter"
	"github.com/akozadaev/go_hotel_search/internal/models"
	"github.com/akozadaev/go_hotel_search/internal/normalizer"
	"github.com/akozadaev/go_hotel_search/internal/upstream"
)

const dateLayout = "2006-01-02"

// SearchService выполняет поиск отелей у поставщика и возвращает нормализованные карточки
type SearchService struct {
	source     upstream.Source
	normalizer *normalizer.Normalizer
	logger     *slog.Logger
}

// NewSearchService создает SearchService
func NewSearchService(source upstream.Source, n *normalizer.Normalizer, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{
		source:     source,
		normalizer: n,
		logger:     logger,
	}
}

// Search проверяет запрос, запрашивает поставщика и нормализует ответ.
// Пустая выдача не является ошибкой: возвращается пустой список и сообщение.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error) {
	q, err := ValidateSearchRequest(req)
	if err != nil {
		return models.SearchResponse{}, err
	}

	body, err := s.source.Fetch(ctx, q)
	if err != nil {
		return models.SearchResponse{}, err
	}

	raw, err := normalizer.ExtractHotels(body)
	if err != nil {
		return models.SearchResponse{}, &upstream.UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "upstream returned an unreadable payload",
			Err:        err,
		}
	}
	s.logger.Info("hotels received", "location", q.QueryText, "count", len(raw))

	if len(raw) == 0 {
		return emptyResponse(q.QueryText), nil
	}

	listings, err := s.normalize(raw, models.SearchContext{QueryText: q.QueryText, Category: req.Category})
	if err != nil {
		return models.SearchResponse{}, err
	}

	if len(listings) == 0 {
		s.logger.Info("no listing passed the image filter", "location", q.QueryText)
		return emptyResponse(q.QueryText), nil
	}

	return models.SearchResponse{Results: listings}, nil
}

// normalize перехватывает панику нормализатора и возвращает ее как InternalError
func (s *SearchService) normalize(raw []models.RawListing, sc models.SearchContext) (listings []models.Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("normalization panicked", "panic", r)
			listings = nil
			err = &InternalError{Cause: r}
		}
	}()
	return s.normalizer.Normalize(raw, sc), nil
}

// Filter применяет фильтр и сортировку к уже нормализованным карточкам
func (s *SearchService) Filter(listings []models.Listing, spec models.FilterSpec) ([]models.Listing, error) {
	if err := spec.Validate(); err != nil {
		return nil, &InputError{Message: err.Error()}
	}
	return filter.Apply(listings, spec), nil
}

// EmptyResultMessage возвращает подсказку для пустой выдачи
func EmptyResultMessage(location string) string {
	return fmt.Sprintf(`No hotels found for "%s". Try a different location or dates.`, location)
}

func emptyResponse(location string) models.SearchResponse {
	return models.SearchResponse{
		Results: []models.Listing{},
		Message: EmptyResultMessage(location),
	}
}

// ValidateSearchRequest проверяет обязательные поля и даты и строит запрос к поставщику
func ValidateSearchRequest(req models.SearchRequest) (models.SearchQuery, error) {
	location := strings.TrimSpace(req.QueryText)

	var missing []string
	if location == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(req.DateFrom) == "" {
		missing = append(missing, "dateFrom")
	}
	if strings.TrimSpace(req.DateUntil) == "" {
		missing = append(missing, "dateUntil")
	}
	if req.AdultCount <= 0 {
		missing = append(missing, "adults")
	}
	if len(missing) > 0 {
		return models.SearchQuery{}, &InputError{Message: MissingFieldsMessage, Fields: missing}
	}

	checkIn, err := time.Parse(dateLayout, strings.TrimSpace(req.DateFrom))
	if err != nil {
		return models.SearchQuery{}, &InputError{Message: "dateFrom must be in YYYY-MM-DD format"}
	}
	checkOut, err := time.Parse(dateLayout, strings.TrimSpace(req.DateUntil))
	if err != nil {
		return models.SearchQuery{}, &InputError{Message: "dateUntil must be in YYYY-MM-DD format"}
	}
	if checkOut.Before(checkIn) {
		return models.SearchQuery{}, &InputError{Message: "dateUntil must not be before dateFrom"}
	}

	if req.ChildCount < 0 {
		return models.SearchQuery{}, &InputError{Message: "kids must not be negative"}
	}
	if len(req.ChildAges) > req.ChildCount {
		return models.SearchQuery{}, &InputError{Message: "childAges has more entries than kids"}
	}

	return models.SearchQuery{
		QueryText:  location,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		AdultCount: req.AdultCount,
		ChildCount: req.ChildCount,
	}, nil
}

// IsInputError сообщает, является ли ошибка ошибкой запроса клиента
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
