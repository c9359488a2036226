// @title           Hotel Search API
// @version         1.0
// @description     REST API поиска отелей: запрос к поставщику, нормализация разнородных записей в единые карточки, фильтрация и сортировка.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/go_hotel_search

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/akozadaev/go_hotel_search/docs" // swagger docs
	"github.com/akozadaev/go_hotel_search/internal/config"
	"github.com/akozadaev/go_hotel_search/internal/handlers"
	"github.com/akozadaev/go_hotel_search/internal/logging"
	"github.com/akozadaev/go_hotel_search/internal/normalizer"
	"github.com/akozadaev/go_hotel_search/internal/service"
	"github.com/akozadaev/go_hotel_search/internal/storage"
	"github.com/akozadaev/go_hotel_search/internal/upstream"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	source, err := newSource(cfg, logger)
	if err != nil {
		logger.Error("error creating upstream source", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}
	logger.Info("upstream source initialized", "provider", cfg.Provider)

	if cfg.Provider == config.ProviderStayAPI && cfg.StayAPIKey == "" {
		logger.Warn("STAYAPI_KEY is not set, searches will fail until it is configured")
	}

	// Справочники необязательны: без PostgreSQL поиск продолжает работать
	var dictionaries handlers.Dictionaries
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	pgStorage, err := storage.NewPostgresStorage(pingCtx, cfg.PostgresDSN())
	cancelPing()
	if err != nil {
		logger.Warn("PostgreSQL unavailable, dictionaries disabled", "error", err)
	} else {
		defer pgStorage.Close()
		dictionaries = pgStorage
		logger.Info("connected to PostgreSQL")
	}

	n := normalizer.New(nil, logger)
	searchService := service.NewSearchService(source, n, logger)
	h := handlers.NewHandlers(searchService, dictionaries, logger)

	router := mux.NewRouter()
	h.Register(router)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL(cfg.SwaggerURL),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}

// newSource выбирает поставщика по UPSTREAM_PROVIDER
func newSource(cfg *config.Config, logger *slog.Logger) (upstream.Source, error) {
	if cfg.Provider != config.ProviderElasticsearch {
		return upstream.NewStayAPIClient(upstream.StayAPIConfig{
			APIKey:     cfg.StayAPIKey,
			BaseURL:    cfg.StayAPIBaseURL,
			Currency:   cfg.StayAPICurrency,
			Timeout:    cfg.UpstreamTimeout,
			RatePerSec: cfg.UpstreamRate,
			Burst:      cfg.UpstreamBurst,
		}, logger), nil
	}

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return nil, err
	}

	esStorage := storage.NewElasticsearchStorage(esClient, cfg.ElasticIndex, cfg.ElasticsearchURL)

	mapping, path, err := storage.ReadMapping()
	if err != nil {
		logger.Warn("could not read mapping file", "error", err)
		return esStorage, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	defer cancel()
	if err := esStorage.CreateIndex(ctx, string(mapping)); err != nil {
		logger.Warn("could not create index", "index", cfg.ElasticIndex, "error", err)
	} else {
		logger.Info("elasticsearch index created/verified", "index", cfg.ElasticIndex, "mapping", path)
	}

	return esStorage, nil
}
