package normalizer

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber повторяет поведение parseFloat: число в начале строки, остальное игнорируется
var leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// present сообщает, содержит ли значение что-то пригодное к использованию.
// nil, false, ноль, NaN и пустая строка считаются отсутствующими.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return strings.TrimSpace(val) != ""
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	default:
		return true
	}
}

// number извлекает число из числового значения или строки с числом в начале
func number(v any) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return numberFromString(val.String())
		}
		return f, true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return val, true
	case int:
		return float64(val), true
	case string:
		return numberFromString(val)
	default:
		return 0, false
	}
}

func numberFromString(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// text возвращает строковое представление скалярного значения
func text(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return "", false
		}
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		if math.IsNaN(val) {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	default:
		return "", false
	}
}

func object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// firstText возвращает первое непустое скалярное значение по списку ключей
func firstText(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := text(m[key]); ok {
			return s
		}
	}
	return ""
}

// firstNumber возвращает первое присутствующее числовое значение по списку ключей
func firstNumber(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if !present(m[key]) {
			continue
		}
		if f, ok := number(m[key]); ok {
			return f, true
		}
	}
	return 0, false
}

// firstNumberIn как firstNumber, но пропускает значения вне [lo, hi]
func firstNumberIn(m map[string]any, lo, hi float64, keys ...string) (float64, bool) {
	for _, key := range keys {
		if f, ok := firstNumber(m, key); ok && f >= lo && f <= hi {
			return f, true
		}
	}
	return 0, false
}

// coordinate разбирает координату, допускающую ноль. Ошибка разбора оставляет координату пустой.
func coordinate(m map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if f, ok := number(v); ok {
			return &f
		}
	}
	return nil
}
