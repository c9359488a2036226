// Package filter отбирает и сортирует уже нормализованные карточки.
// Apply не изменяет входной срез и вызывается заново при каждом изменении условий.
package filter

import (
	"math"
	"sort"
	"strings"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

// Apply возвращает карточки, прошедшие все заданные условия, в порядке spec.SortBy.
// Пустой SortBy означает сортировку по популярности.
func Apply(listings []models.Listing, spec models.FilterSpec) []models.Listing {
	spec = spec.Normalized()

	result := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, spec) {
			result = append(result, l)
		}
	}

	sort.SliceStable(result, less(result, spec.SortBy))
	return result
}

// matches объединяет все условия через И
func matches(l models.Listing, spec models.FilterSpec) bool {
	return matchesPrice(l, spec.MinPrice, spec.MaxPrice) &&
		matchesRating(l, spec.MinRating) &&
		matchesCount(l.Rooms, spec.MinRooms) &&
		matchesCount(l.Beds, spec.MinBeds) &&
		matchesArea(l, spec.AreaText)
}

// matchesPrice: карточка без числовой цены не проходит ценовой фильтр
func matchesPrice(l models.Listing, minPrice, maxPrice *float64) bool {
	if minPrice == nil && maxPrice == nil {
		return true
	}
	if l.PriceNumber == nil {
		return false
	}
	price := *l.PriceNumber
	if minPrice != nil && price < *minPrice {
		return false
	}
	if maxPrice != nil && price > *maxPrice {
		return false
	}
	return true
}

func matchesRating(l models.Listing, minRating *float64) bool {
	return minRating == nil || l.Rating >= *minRating
}

// matchesCount проверяет комнаты или кровати только у карточек, где поле известно
func matchesCount(value, minimum *int) bool {
	if minimum == nil || value == nil {
		return true
	}
	return *value >= *minimum
}

func matchesArea(l models.Listing, areaText string) bool {
	needle := strings.ToLower(strings.TrimSpace(areaText))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.LocationText), needle) ||
		strings.Contains(strings.ToLower(l.Name), needle)
}

func less(listings []models.Listing, key models.SortKey) func(i, j int) bool {
	switch key {
	case models.SortByRating:
		return func(i, j int) bool {
			return listings[i].Rating > listings[j].Rating
		}
	case models.SortByPriceLow:
		return func(i, j int) bool {
			return priceOr(listings[i], math.Inf(1)) < priceOr(listings[j], math.Inf(1))
		}
	case models.SortByPriceHigh:
		return func(i, j int) bool {
			return priceOr(listings[i], 0) > priceOr(listings[j], 0)
		}
	default:
		return func(i, j int) bool {
			return listings[i].PopularityScore > listings[j].PopularityScore
		}
	}
}

func priceOr(l models.Listing, fallback float64) float64 {
	if l.PriceNumber == nil {
		return fallback
	}
	return *l.PriceNumber
}
