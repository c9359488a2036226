// Package upstream содержит обращения к внешним поставщикам данных об отелях.
package upstream

import (
	"context"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

// Source возвращает сырое тело ответа поставщика для поискового запроса.
// Разбор тела выполняет normalizer.ExtractHotels.
type Source interface {
	Fetch(ctx context.Context, q models.SearchQuery) ([]byte, error)
}
