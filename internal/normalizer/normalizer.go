// Package normalizer приводит записи отелей от внешних поставщиков к единой карточке Listing.
// Каждое поле извлекается цепочкой стратегий с явным значением по умолчанию,
// поэтому битое поле отдельной записи не приводит к ошибке.
package normalizer

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

const (
	// MaxResults - сколько карточек возвращается после ранжирования
	MaxResults = 10
	// DefaultCategory используется, если тип размещения не запрошен и не указан поставщиком
	DefaultCategory = "Hotel"
	// DefaultDescription используется, если у записи нет описания
	DefaultDescription = "Comfortable accommodation in a great location"
)

// Допустимые диапазоны числовых полей поставщика. Значение вне диапазона считается отсутствующим.
const (
	maxRating      = 10
	maxReviewCount = 10_000_000
	maxUnitCount   = 10_000
)

// Normalizer преобразует сырые записи поставщика в карточки Listing
type Normalizer struct {
	synth  Synthesizer
	logger *slog.Logger
}

// New создает Normalizer. Если synth не задан, используется RandomSynthesizer.
func New(synth Synthesizer, logger *slog.Logger) *Normalizer {
	if synth == nil {
		synth = NewRandomSynthesizer(rngSeed())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{synth: synth, logger: logger}
}

// Normalize отбрасывает записи без фото, нормализует остальные,
// сортирует по убыванию popularityScore и оставляет не более MaxResults.
func (n *Normalizer) Normalize(raw []models.RawListing, sc models.SearchContext) []models.Listing {
	listings := make([]models.Listing, 0, len(raw))

	admitted := 0
	for i, r := range raw {
		if !hasImageSource(r) {
			n.logger.Debug("listing dropped: no image source", "position", i)
			continue
		}
		admitted++

		listing := n.normalizeOne(r, admitted, sc)
		if listing.PhotoURL == "" {
			n.logger.Debug("listing dropped: image did not resolve", "position", i, "id", listing.ID)
			continue
		}
		listings = append(listings, listing)
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].PopularityScore > listings[j].PopularityScore
	})

	if len(listings) > MaxResults {
		listings = listings[:MaxResults]
	}

	n.logger.Debug("listings normalized", "raw", len(raw), "admitted", admitted, "returned", len(listings))
	return listings
}

// normalizeOne строит карточку из одной записи. index начинается с 1.
func (n *Normalizer) normalizeOne(r models.RawListing, index int, sc models.SearchContext) models.Listing {
	price := resolvePrice(r)
	rating := resolveRating(r)
	reviewCount := n.resolveReviewCount(r)
	loc := resolveLocation(r, sc.QueryText)

	listing := models.Listing{
		ID:           firstText(r, "id", "hotel_id", "place_id"),
		Name:         firstText(r, "name", "title"),
		LocationText: loc.text,
		Latitude:     loc.latitude,
		Longitude:    loc.longitude,
		Category:     resolveCategory(r, sc.Category),
		PriceDisplay: price,
		Rating:       rating,
		ReviewCount:  reviewCount,
		Description:  firstText(r, "description", "overview", "summary"),
		PhotoURL:     resolveImage(r),
		BookingURL:   resolveBookingURL(r, sc.QueryText),
		Reviews:      resolveReviews(r, rating),
		Rooms:        optionalCount(r, "rooms", "room_count", "bedrooms"),
		Beds:         optionalCount(r, "beds", "bed_count"),
	}

	if listing.ID == "" {
		listing.ID = fmt.Sprintf("listing-%d", index)
	}
	if listing.Name == "" {
		listing.Name = fmt.Sprintf("Listing %d", index)
	}
	if listing.Description == "" {
		listing.Description = DefaultDescription
	}

	listing.PopularityScore = popularity(listing.Rating, listing.ReviewCount)
	listing.PriceNumber = priceNumber(listing.PriceDisplay)

	return listing
}

func resolveRating(r models.RawListing) float64 {
	if v, ok := firstNumberIn(r, 0, maxRating, "rating", "stars"); ok {
		return v
	}
	return 0
}

func (n *Normalizer) resolveReviewCount(r models.RawListing) int {
	if v, ok := firstNumberIn(r, 1, maxReviewCount, "review_count", "reviews_count"); ok {
		return int(v)
	}
	return n.synth.ReviewCount()
}

// popularity всегда конечна, иначе ответ не сериализуется в JSON
func popularity(rating float64, reviewCount int) float64 {
	p := rating * float64(reviewCount)
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return 0
	}
	return p
}

func resolveCategory(r models.RawListing, requested string) string {
	if c := strings.TrimSpace(requested); c != "" {
		return c
	}
	if c := firstText(r, "type"); c != "" {
		return c
	}
	return DefaultCategory
}

// optionalCount, как и coordinate, принимает ноль: студия с "rooms": 0 несет поле
func optionalCount(r models.RawListing, keys ...string) *int {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		f, ok := number(v)
		if !ok || f < 0 || f > maxUnitCount {
			continue
		}
		count := int(f)
		return &count
	}
	return nil
}
