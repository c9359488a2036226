package models

import "fmt"

// SortKey задает порядок сортировки карточек
type SortKey string

const (
	SortByPopularity SortKey = "popularity"
	SortByRating     SortKey = "rating"
	SortByPriceLow   SortKey = "price-low"
	SortByPriceHigh  SortKey = "price-high"
)

// FilterSpec описывает ограничения и ключ сортировки для выдачи.
// Незаданные поля (nil или пустая строка) не участвуют в фильтрации.
type FilterSpec struct {
	SortBy    SortKey  `json:"sortBy,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	MinRating *float64 `json:"minRating,omitempty"`
	MinRooms  *int     `json:"minRooms,omitempty"`
	MinBeds   *int     `json:"minBeds,omitempty"`
	AreaText  string   `json:"areaText,omitempty"`
}

// Normalized возвращает копию спецификации с ключом сортировки по умолчанию
func (s FilterSpec) Normalized() FilterSpec {
	normalized := s
	if normalized.SortBy == "" {
		normalized.SortBy = SortByPopularity
	}
	return normalized
}

// Validate проверяет ключ сортировки
func (s FilterSpec) Validate() error {
	switch s.Normalized().SortBy {
	case SortByPopularity, SortByRating, SortByPriceLow, SortByPriceHigh:
		return nil
	default:
		return fmt.Errorf("unknown sortBy %q", s.SortBy)
	}
}
