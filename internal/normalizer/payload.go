package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

// ErrInvalidPayload возвращается, если тело ответа поставщика не JSON или не содержит ни объекта, ни массива
var ErrInvalidPayload = errors.New("invalid upstream payload")

// payloadKeys перечисляет ключи верхнего уровня, под которыми поставщики отдают список отелей
var payloadKeys = []string{"hotels", "data", "results"}

// ExtractHotels находит массив отелей в теле ответа поставщика.
// Проверяются ключи hotels, data, results (в этом порядке) и голый массив.
// Объект без такого массива дает пустой список, а не ошибку.
func ExtractHotels(body []byte) ([]models.RawListing, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidPayload)
	}

	switch v := payload.(type) {
	case []any:
		return toRawListings(v), nil
	case map[string]any:
		for _, key := range payloadKeys {
			if items, ok := array(v[key]); ok {
				return toRawListings(items), nil
			}
		}
		return []models.RawListing{}, nil
	default:
		return nil, fmt.Errorf("%w: top-level value is %T", ErrInvalidPayload, payload)
	}
}

func toRawListings(items []any) []models.RawListing {
	hotels := make([]models.RawListing, 0, len(items))
	for _, item := range items {
		if m, ok := object(item); ok {
			hotels = append(hotels, models.RawListing(m))
		}
	}
	return hotels
}
