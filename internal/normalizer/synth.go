package normalizer

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

// Диапазон искусственного числа отзывов [minSyntheticReviews, maxSyntheticReviews).
// Это заглушка для отображения, а не реальные данные.
const (
	minSyntheticReviews = 50
	maxSyntheticReviews = 250
)

// Synthesizer генерирует заглушки для полей, которых нет у поставщика
type Synthesizer interface {
	// ReviewCount возвращает число отзывов для записи без review_count
	ReviewCount() int
}

// RandomSynthesizer выбирает число отзывов равномерно из фиксированного диапазона
type RandomSynthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSynthesizer создает генератор с заданным seed
func NewRandomSynthesizer(seed int64) *RandomSynthesizer {
	return &RandomSynthesizer{rng: rand.New(rand.NewSource(seed))}
}

func rngSeed() int64 {
	return time.Now().UnixNano()
}

// ReviewCount возвращает число в диапазоне [50, 250)
func (s *RandomSynthesizer) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return minSyntheticReviews + s.rng.Intn(maxSyntheticReviews-minSyntheticReviews)
}

// FixedSynthesizer всегда возвращает одно и то же число. Count = 0 отключает генерацию.
type FixedSynthesizer struct {
	Count int
}

// ReviewCount возвращает Count
func (s FixedSynthesizer) ReviewCount() int {
	return s.Count
}

// placeholderReviews строит два шаблонных отзыва с рейтингами от рейтинга отеля.
// Второй на единицу ниже первого, оба в пределах [1, 5].
func placeholderReviews(rating float64) []models.Review {
	first, second := 5.0, 4.0
	if rating > 0 {
		rounded := math.Round(rating)
		first = clampRating(rounded)
		second = clampRating(rounded - 1)
	}
	return []models.Review{
		{Author: "Guest", Rating: first, Comment: "Great stay with excellent service!"},
		{Author: "Traveler", Rating: second, Comment: "Nice location and comfortable rooms."},
	}
}

func clampRating(v float64) float64 {
	return math.Max(1, math.Min(5, v))
}
