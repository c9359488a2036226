package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

const (
	// PriceSentinel выводится вместо цены, если ни одно поле цены не найдено
	PriceSentinel = "Contact for pricing"
	// DefaultCurrency используется, если поставщик не указал валюту
	DefaultCurrency = "USD"
)

var priceNumberRegex = regexp.MustCompile(`[\d,]+\.?\d*`)

// priceStrategy - одна стратегия извлечения цены: условие применимости и извлечение
type priceStrategy struct {
	applies func(r models.RawListing) bool
	extract func(r models.RawListing) (string, bool)
}

// priceStrategies проверяются по порядку, побеждает первая успешная
var priceStrategies = []priceStrategy{
	{
		// "price": {"amount": ..., "currency": ...}
		applies: func(r models.RawListing) bool {
			_, ok := object(r["price"])
			return ok
		},
		extract: func(r models.RawListing) (string, bool) {
			p, _ := object(r["price"])
			if !present(p["amount"]) {
				return "", false
			}
			amount, ok := number(p["amount"])
			if !ok {
				return "", false
			}
			return formatPrice(currencyOf(p), amount), true
		},
	},
	{
		// "price": "$120/night", строка сохраняется как есть
		applies: func(r models.RawListing) bool {
			_, ok := r["price"].(string)
			return ok
		},
		extract: func(r models.RawListing) (string, bool) {
			s := strings.TrimSpace(r["price"].(string))
			return s, s != ""
		},
	},
	{
		// "price": 120
		applies: func(r models.RawListing) bool {
			_, isString := r["price"].(string)
			return !isString && present(r["price"])
		},
		extract: func(r models.RawListing) (string, bool) {
			amount, ok := number(r["price"])
			if !ok {
				return "", false
			}
			return formatPrice(DefaultCurrency, amount), true
		},
	},
	flatPriceStrategy("price_per_night"),
	flatPriceStrategy("rate"),
}

// flatPriceStrategy читает сумму из плоского поля и валюту из поля currency
func flatPriceStrategy(key string) priceStrategy {
	return priceStrategy{
		applies: func(r models.RawListing) bool {
			return present(r[key])
		},
		extract: func(r models.RawListing) (string, bool) {
			amount, ok := number(r[key])
			if !ok {
				return "", false
			}
			return formatPrice(currencyOf(r), amount), true
		},
	}
}

func currencyOf(m map[string]any) string {
	if c := firstText(m, "currency"); c != "" {
		return strings.TrimSpace(c)
	}
	return DefaultCurrency
}

func formatPrice(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// resolvePrice возвращает отображаемую цену или PriceSentinel
func resolvePrice(r models.RawListing) string {
	for _, s := range priceStrategies {
		if !s.applies(r) {
			continue
		}
		if display, ok := s.extract(r); ok {
			return display
		}
	}
	return PriceSentinel
}

// priceNumber извлекает первое число (с разделителями тысяч) из отображаемой цены
func priceNumber(display string) *float64 {
	if display == PriceSentinel {
		return nil
	}
	m := priceNumberRegex.FindString(display)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
