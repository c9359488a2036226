package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/akozadaev/go_hotel_search/internal/config"
	"github.com/akozadaev/go_hotel_search/internal/logging"
	"github.com/akozadaev/go_hotel_search/internal/models"
	"github.com/akozadaev/go_hotel_search/internal/normalizer"
	"github.com/akozadaev/go_hotel_search/internal/storage"
)

func main() {
	count := flag.Int("count", 100, "number of generated sample hotels")
	file := flag.String("file", "", "index an upstream payload file instead of generated samples")
	destination := flag.String("destination", "", "destination for hotels loaded with -file")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticsearchURL},
	})
	if err != nil {
		logger.Error("error creating Elasticsearch client", "error", err)
		os.Exit(1)
	}

	esStorage := storage.NewElasticsearchStorage(esClient, cfg.ElasticIndex, cfg.ElasticsearchURL)
	ctx := context.Background()

	if mapping, _, err := storage.ReadMapping(); err != nil {
		logger.Warn("could not read mapping file", "error", err)
	} else if err := esStorage.CreateIndex(ctx, string(mapping)); err != nil {
		logger.Error("error creating index", "index", cfg.ElasticIndex, "error", err)
		os.Exit(1)
	}

	var docs []models.HotelDocument
	if *file != "" {
		if *destination == "" {
			logger.Error("-destination is required with -file")
			os.Exit(2)
		}
		docs, err = loadHotelsFromFile(*file, *destination)
		if err != nil {
			logger.Error("error loading hotels", "file", *file, "error", err)
			os.Exit(1)
		}
	} else {
		docs = generateSampleHotels(rand.New(rand.NewSource(time.Now().UnixNano())), *count)
	}

	logger.Info("indexing hotels", "count", len(docs), "index", cfg.ElasticIndex)

	if err := esStorage.BulkIndexHotels(ctx, docs); err != nil {
		logger.Error("error indexing hotels", "error", err)
		os.Exit(1)
	}

	total, err := esStorage.CountHotels(ctx)
	if err != nil {
		logger.Warn("could not count hotels", "error", err)
	}
	logger.Info("indexing completed", "documents", total)
}

// loadHotelsFromFile читает ответ поставщика в любой поддерживаемой форме
func loadHotelsFromFile(filename, destination string) ([]models.HotelDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	hotels, err := normalizer.ExtractHotels(data)
	if err != nil {
		return nil, err
	}

	docs := make([]models.HotelDocument, 0, len(hotels))
	for _, raw := range hotels {
		docs = append(docs, models.HotelDocument{Destination: destination, Raw: raw})
	}
	return docs, nil
}

var sampleDestinations = []struct {
	name     string
	lat, lng float64
	currency string
}{
	{"Nice, France", 43.7102, 7.2620, "EUR"},
	{"Paris, France", 48.8566, 2.3522, "EUR"},
	{"Barcelona, Spain", 41.3874, 2.1686, "EUR"},
	{"Lisbon, Portugal", 38.7223, -9.1393, "EUR"},
	{"London, United Kingdom", 51.5072, -0.1276, "GBP"},
	{"New York, USA", 40.7128, -74.0060, "USD"},
}

var sampleNames = []string{"Grand", "Harbour", "Old Town", "Garden", "Riviera", "Central", "Skyline", "Boutique"}
var sampleKinds = []string{"Hotel", "Apartment", "Villa", "Guesthouse", "Resort", "Hostel"}

// generateSampleHotels генерирует записи в формах разных поставщиков,
// чтобы каталог проверял все ветки нормализации
func generateSampleHotels(rng *rand.Rand, count int) []models.HotelDocument {
	docs := make([]models.HotelDocument, 0, count)

	for i := 0; i < count; i++ {
		dest := sampleDestinations[rng.Intn(len(sampleDestinations))]
		name := fmt.Sprintf("%s %s %d", sampleNames[rng.Intn(len(sampleNames))], sampleKinds[rng.Intn(len(sampleKinds))], i+1)
		lat := dest.lat + (rng.Float64()-0.5)*0.1
		lng := dest.lng + (rng.Float64()-0.5)*0.1
		price := 40 + rng.Float64()*360
		rating := 3 + float64(rng.Intn(21))/10

		var raw models.RawListing
		switch i % 4 {
		case 0:
			raw = models.RawListing{
				"hotel_id": fmt.Sprintf("gh_%d", i+1),
				"name":     name,
				"price":    map[string]any{"amount": fmt.Sprintf("%.2f", price), "currency": dest.currency},
				"rating":   rating,
				"images": []any{
					map[string]any{"url": fmt.Sprintf("https://images.example.com/%d/small.jpg", i+1), "width": 320, "height": 240},
					map[string]any{"url": fmt.Sprintf("https://images.example.com/%d/large.jpg", i+1), "width": 1280, "height": 960},
				},
				"location":     map[string]any{"address": fmt.Sprintf("%d Main Street, %s", rng.Intn(200)+1, dest.name), "lat": lat, "lng": lng},
				"website":      fmt.Sprintf("https://hotel-%d.example.com", i+1),
				"review_count": rng.Intn(900) + 10,
				"rooms":        rng.Intn(4) + 1,
			}
		case 1:
			raw = models.RawListing{
				"id":          fmt.Sprintf("ap_%d", i+1),
				"title":       name,
				"price":       fmt.Sprintf("$%.0f/night", price),
				"stars":       fmt.Sprintf("%.1f", rating),
				"photo":       fmt.Sprintf("https://images.unsplash.com/photo-%d?w=400&h=300&q=60", 1500000+i),
				"address":     fmt.Sprintf("Apartment %d, %s", i+1, dest.name),
				"latitude":    fmt.Sprintf("%.5f", lat),
				"longitude":   fmt.Sprintf("%.5f", lng),
				"instagram":   fmt.Sprintf("https://instagram.com/stay%d", i+1),
				"beds":        rng.Intn(5) + 1,
				"bedrooms":    rng.Intn(3) + 1,
				"description": fmt.Sprintf("Bright apartment in %s", dest.name),
			}
		case 2:
			raw = models.RawListing{
				"place_id":        fmt.Sprintf("pl_%d", i+1),
				"name":            name,
				"price_per_night": price,
				"currency":        dest.currency,
				"rating":          rating,
				"image_large":     fmt.Sprintf("https://images.example.com/%d/hero.jpg", i+1),
				"city":            map[string]any{"name": dest.name},
				"coordinates":     map[string]any{"latitude": lat, "longitude": lng},
				"booking_link":    fmt.Sprintf("https://book.example.com/h/%d", i+1),
				"reviews": []any{
					map[string]any{"author": "Marie", "rating": 5, "text": "Wonderful view"},
					map[string]any{"name": "Tom", "score": 4, "comment": "Good breakfast"},
					map[string]any{"author": "Ana", "rating": 3, "text": "A bit noisy"},
				},
			}
		default:
			// запись без фото: каталог хранит ее, нормализатор отбрасывает
			raw = models.RawListing{
				"name":        name,
				"rate":        price,
				"destination": dest.name,
			}
		}

		docs = append(docs, models.HotelDocument{Destination: dest.name, Raw: raw})
	}

	return docs
}
