// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Поддерживаемые поставщики данных
const (
	ProviderStayAPI       = "stayapi"
	ProviderElasticsearch = "elasticsearch"
)

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения по умолчанию.
type Config struct {
	AppPort  string // Порт для HTTP сервера
	LogLevel string // debug, info, warn, error

	Provider         string        // Поставщик данных: stayapi или elasticsearch
	StayAPIKey       string        // Ключ StayAPI, пробелы по краям отбрасываются
	StayAPIBaseURL   string        // Endpoint поиска StayAPI
	StayAPICurrency  string        // Валюта цен в ответе
	UpstreamTimeout  time.Duration // Таймаут запроса к поставщику
	UpstreamRate     float64       // Запросов в секунду к поставщику
	UpstreamBurst    int           // Допустимый всплеск запросов
	ElasticsearchURL string        // URL для подключения к Elasticsearch/OpenSearch
	ElasticIndex     string        // Индекс с сырыми записями отелей

	PostgresHost     string // Хост PostgreSQL
	PostgresPort     string // Порт PostgreSQL
	PostgresUser     string // Пользователь PostgreSQL
	PostgresPassword string // Пароль PostgreSQL
	PostgresDB       string // Имя базы данных PostgreSQL

	SwaggerURL string // Адрес doc.json для Swagger UI
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена или не разбирается, используется значение по умолчанию.
func Load() *Config {
	port := getEnv("APP_PORT", "8080")
	return &Config{
		AppPort:          port,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Provider:         strings.ToLower(getEnv("UPSTREAM_PROVIDER", ProviderStayAPI)),
		StayAPIKey:       strings.TrimSpace(os.Getenv("STAYAPI_KEY")),
		StayAPIBaseURL:   getEnv("STAYAPI_BASE_URL", "https://api.stayapi.com/v1/google_hotels/search"),
		StayAPICurrency:  getEnv("STAYAPI_CURRENCY", "USD"),
		UpstreamTimeout:  getEnvDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		UpstreamRate:     getEnvFloat("UPSTREAM_RATE_PER_SEC", 5),
		UpstreamBurst:    getEnvInt("UPSTREAM_BURST", 2),
		ElasticsearchURL: getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticIndex:     getEnv("ELASTICSEARCH_INDEX", "hotels"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "hotel_user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "hotel_pass"),
		PostgresDB:       getEnv("POSTGRES_DB", "hotel_search"),
		SwaggerURL:       getEnv("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
	}
}

// Validate проверяет значения, без которых сервис не может стартовать.
// Пустой STAYAPI_KEY допустим: он отклоняется при каждом поиске с ошибкой 500.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderStayAPI, ProviderElasticsearch:
	default:
		return fmt.Errorf("unknown UPSTREAM_PROVIDER %q", c.Provider)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	return nil
}

// PostgresDSN возвращает строку подключения для lib/pq
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresDB,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
