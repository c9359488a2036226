package normalizer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

// Параметры, до которых поднимается размер фото со стокового хостинга
const (
	stockPhotoHost    = "unsplash.com"
	stockPhotoWidth   = 1200
	stockPhotoHeight  = 800
	stockPhotoQuality = 90
)

var (
	// imageURLKeys - ключи с URL внутри описания изображения
	imageURLKeys = []string{"url", "high_resolution_url", "large_url"}
	// singularImageKeys - одиночные поля фото, от более качественных к менее
	singularImageKeys = []string{"image_large", "image_high_res", "image", "photo", "thumbnail"}

	stockWidthParam   = regexp.MustCompile(`([?&])w=\d+`)
	stockHeightParam  = regexp.MustCompile(`([?&])h=\d+`)
	stockQualityParam = regexp.MustCompile(`([?&])q=\d+`)
)

type imageStrategy struct {
	applies func(r models.RawListing) bool
	extract func(r models.RawListing) (string, bool)
}

var imageStrategies = []imageStrategy{
	{
		// "images": [...]
		applies: func(r models.RawListing) bool {
			images, ok := array(r["images"])
			return ok && len(images) > 0
		},
		extract: func(r models.RawListing) (string, bool) {
			images, _ := array(r["images"])
			u := bestImageURL(images)
			return u, u != ""
		},
	},
	{
		// одиночные поля фото
		applies: func(r models.RawListing) bool {
			for _, key := range singularImageKeys {
				if present(r[key]) {
					return true
				}
			}
			return false
		},
		extract: func(r models.RawListing) (string, bool) {
			for _, key := range singularImageKeys {
				if u := descriptorURL(r[key]); u != "" {
					return u, true
				}
			}
			return "", false
		},
	},
}

// hasImageSource - условие допуска: запись без источника фото отбрасывается до остальной обработки
func hasImageSource(r models.RawListing) bool {
	if r == nil {
		return false
	}
	for _, s := range imageStrategies {
		if s.applies(r) {
			return true
		}
	}
	return false
}

// resolveImage возвращает лучший URL фото или пустую строку
func resolveImage(r models.RawListing) string {
	for _, s := range imageStrategies {
		if !s.applies(r) {
			continue
		}
		if u, ok := s.extract(r); ok {
			return upgradeStockPhoto(u)
		}
	}
	return ""
}

// bestImageURL выбирает изображение с наибольшей площадью. Описания без размеров идут последними.
func bestImageURL(images []any) string {
	type candidate struct {
		url  string
		area float64
	}

	candidates := make([]candidate, 0, len(images))
	for _, img := range images {
		u := descriptorURL(img)
		if u == "" {
			continue
		}
		candidates = append(candidates, candidate{url: u, area: imageArea(img)})
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].area > candidates[j].area
	})
	return candidates[0].url
}

// descriptorURL достает URL из описания изображения; строка сама считается URL
func descriptorURL(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	if m, ok := object(v); ok {
		for _, key := range imageURLKeys {
			if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func imageArea(v any) float64 {
	m, ok := object(v)
	if !ok {
		return 0
	}
	w, okW := number(m["width"])
	h, okH := number(m["height"])
	if !okW || !okH {
		return 0
	}
	return w * h
}

// upgradeStockPhoto поднимает параметры размера и качества у фото со стокового хостинга
func upgradeStockPhoto(u string) string {
	if !strings.Contains(u, stockPhotoHost) {
		return u
	}
	u = stockWidthParam.ReplaceAllString(u, "${1}w="+strconv.Itoa(stockPhotoWidth))
	u = stockHeightParam.ReplaceAllString(u, "${1}h="+strconv.Itoa(stockPhotoHeight))
	u = stockQualityParam.ReplaceAllString(u, "${1}q="+strconv.Itoa(stockPhotoQuality))
	return u
}
