package upstream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

const (
	// DefaultStayAPIURL - endpoint поиска отелей StayAPI
	DefaultStayAPIURL = "https://api.stayapi.com/v1/google_hotels/search"

	dateLayout = "2006-01-02"
	// maxErrorBody ограничивает чтение тела ошибки
	maxErrorBody = 1 << 20
)

// StayAPIConfig содержит параметры клиента StayAPI
type StayAPIConfig struct {
	APIKey     string
	BaseURL    string
	Currency   string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
}

// StayAPIClient выполняет поиск через StayAPI.
// Исходящие запросы ограничиваются по частоте общим для клиента лимитером.
type StayAPIClient struct {
	apiKey     string
	baseURL    string
	currency   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewStayAPIClient создает клиент. Пустой ключ не является ошибкой здесь:
// он проверяется в Fetch, до сетевого запроса.
func NewStayAPIClient(cfg StayAPIConfig, logger *slog.Logger) *StayAPIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultStayAPIURL
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StayAPIClient{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    cfg.BaseURL,
		currency:   cfg.Currency,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, cfg.Burst),
		logger:     logger,
	}
}

// Fetch выполняет GET запрос поиска и возвращает тело успешного ответа.
// Неуспешный статус возвращается как *UpstreamError с разобранным телом.
func (c *StayAPIClient) Fetch(ctx context.Context, q models.SearchQuery) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrCredentialsNotConfigured
	}

	endpoint, err := c.searchURL(q)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Info("calling StayAPI", "location", q.QueryText, "check_in", q.CheckIn.Format(dateLayout))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "StayAPI is unreachable",
			Err:        err,
		}
	}
	defer res.Body.Close()

	c.logger.Info("StayAPI responded", "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		upErr := newStatusError(res.StatusCode, body)
		c.logger.Warn("StayAPI error", "status", res.StatusCode, "message", upErr.Message)
		return nil, upErr
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "failed to read StayAPI response",
			Err:        err,
		}
	}
	return body, nil
}

func (c *StayAPIClient) searchURL(q models.SearchQuery) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid StayAPI base URL: %w", err)
	}

	params := u.Query()
	params.Set("location", q.QueryText)
	params.Set("check_in", q.CheckIn.Format(dateLayout))
	params.Set("check_out", q.CheckOut.Format(dateLayout))
	params.Set("adults", strconv.Itoa(q.AdultCount))
	params.Set("children", strconv.Itoa(q.ChildCount))
	params.Set("currency", c.currency)
	u.RawQuery = params.Encode()

	return u.String(), nil
}
