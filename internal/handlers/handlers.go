// Package handlers содержит HTTP обработчики REST API поиска отелей.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akozadaev/go_hotel_search/internal/models"
	"github.com/akozadaev/go_hotel_search/internal/service"
)

// Dictionaries предоставляет справочники для формы поиска
type Dictionaries interface {
	GetAccommodationTypes(ctx context.Context) ([]models.AccommodationType, error)
	GetDestinations(ctx context.Context) ([]models.Destination, error)
}

// Handlers содержит зависимости для обработки HTTP запросов.
// dictionaries может быть nil, если PostgreSQL недоступен: справочники тогда отвечают 503.
type Handlers struct {
	search       *service.SearchService
	dictionaries Dictionaries
	logger       *slog.Logger
}

// NewHandlers создает новый экземпляр Handlers.
func NewHandlers(search *service.SearchService, dictionaries Dictionaries, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		search:       search,
		dictionaries: dictionaries,
		logger:       logger,
	}
}

// Register регистрирует маршруты API и middleware запроса.
// OPTIONS разрешен на каждом маршруте, чтобы CORS middleware отвечало на preflight.
func (h *Handlers) Register(router *mux.Router) {
	router.Use(h.RequestID, CORS)

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/search", h.SearchHotels).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/listings/filter", h.FilterListings).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/accommodation-types", h.GetAccommodationTypes).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/destinations", h.GetDestinations).Methods(http.MethodGet, http.MethodOptions)
}

// SearchHotels обрабатывает POST запрос поиска отелей.
// Эндпоинт: POST /search
//
// @Summary      Найти отели
// @Description  Запрашивает поставщика и возвращает до 10 нормализованных карточек, отсортированных по популярности. Пустая выдача возвращается с кодом 200 и сообщением.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request  body      models.SearchRequest  true  "Параметры поиска"
// @Success      200      {object}  models.SearchResponse
// @Failure      400      {object}  models.ErrorResponse  "Не заполнены обязательные поля"
// @Failure      401      {object}  models.ErrorResponse  "Поставщик отклонил ключ API"
// @Failure      500      {object}  models.ErrorResponse  "Ключ API не настроен или внутренняя ошибка"
// @Failure      502      {object}  models.ErrorResponse  "Поставщик недоступен или вернул некорректный ответ"
// @Router       /search [post]
func (h *Handlers) SearchHotels(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, r, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.search.Search(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}

// FilterListings обрабатывает POST запрос фильтрации и сортировки полученных карточек.
// Эндпоинт: POST /listings/filter
//
// @Summary      Отфильтровать карточки
// @Description  Применяет ценовой диапазон, минимальный рейтинг, число комнат и кроватей, поиск по району и сортировку к уже нормализованным карточкам. Карточки без цены не проходят ценовой фильтр.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request  body      models.FilterRequest  true  "Карточки и условия"
// @Success      200      {object}  models.SearchResponse
// @Failure      400      {object}  models.ErrorResponse  "Неизвестный ключ сортировки"
// @Router       /listings/filter [post]
func (h *Handlers) FilterListings(w http.ResponseWriter, r *http.Request) {
	var req models.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, r, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	listings, err := h.search.Filter(req.Listings, req.Filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.SearchResponse{Results: listings})
}

// GetAccommodationTypes обрабатывает GET запрос на получение типов размещения.
// Эндпоинт: GET /accommodation-types
//
// @Summary      Получить типы размещения
// @Description  Возвращает типы размещения из справочника PostgreSQL
// @Tags         dictionaries
// @Produce      json
// @Success      200  {array}   models.AccommodationType
// @Failure      500  {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Failure      503  {object}  models.ErrorResponse  "База данных не подключена"
// @Router       /accommodation-types [get]
func (h *Handlers) GetAccommodationTypes(w http.ResponseWriter, r *http.Request) {
	if !h.dictionariesAvailable(w, r) {
		return
	}

	types, err := h.dictionaries.GetAccommodationTypes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, types)
}

// GetDestinations обрабатывает GET запрос на получение направлений.
// Эндпоинт: GET /destinations
//
// @Summary      Получить направления
// @Description  Возвращает направления из справочника PostgreSQL
// @Tags         dictionaries
// @Produce      json
// @Success      200  {array}   models.Destination
// @Failure      500  {object}  models.ErrorResponse  "Внутренняя ошибка сервера"
// @Failure      503  {object}  models.ErrorResponse  "База данных не подключена"
// @Router       /destinations [get]
func (h *Handlers) GetDestinations(w http.ResponseWriter, r *http.Request) {
	if !h.dictionariesAvailable(w, r) {
		return
	}

	destinations, err := h.dictionaries.GetDestinations(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, destinations)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса и доступность справочников.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	dictionaries := "connected"
	if h.dictionaries == nil {
		dictionaries = "unavailable"
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":       "ok",
		"dictionaries": dictionaries,
	})
}

func (h *Handlers) dictionariesAvailable(w http.ResponseWriter, r *http.Request) bool {
	if h.dictionaries != nil {
		return true
	}
	h.writeJSON(w, r, http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "Dictionaries unavailable",
		Message: "PostgreSQL is not connected",
	})
	return false
}
