package normalizer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

var (
	websiteKeys = []string{"official_website", "website", "url"}
	socialKeys  = []string{
		"facebook", "facebook_url",
		"instagram", "instagram_url",
		"twitter", "twitter_url",
	}
	bookingLinkKeys = []string{"booking_link", "booking_url", "link", "deep_link", "affiliate_link"}
)

// resolveBookingURL выбирает ссылку для кнопки бронирования.
// Порядок: сайт отеля, затем соцсети, затем ссылки бронирования (только если нет ни сайта, ни соцсетей),
// иначе поисковый запрос по имени отеля и направлению.
func resolveBookingURL(r models.RawListing, queryText string) string {
	website := firstText(r, websiteKeys...)
	social := firstText(r, socialKeys...)

	if website == "" && social == "" {
		website = firstText(r, bookingLinkKeys...)
	}

	switch {
	case website != "":
		return website
	case social != "":
		return social
	default:
		name := firstText(r, "name")
		if name == "" {
			name = "hotel in " + queryText
		}
		return webSearchURL(name, queryText)
	}
}

func webSearchURL(name, queryText string) string {
	return fmt.Sprintf("https://www.google.com/search?q=%s+%s+official+website",
		escapeComponent(name), escapeComponent(queryText))
}

// componentUnescaper возвращает символы, которые encodeURIComponent оставляет как есть
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent кодирует пробелы как %20, чтобы не путать их с разделителем "+"
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
