package normalizer

import (
	"github.com/akozadaev/go_hotel_search/internal/models"
)

const maxReviews = 2

// resolveReviews берет до двух отзывов поставщика или строит два шаблонных
func resolveReviews(r models.RawListing, rating float64) []models.Review {
	upstream, ok := array(r["reviews"])
	if !ok || len(upstream) == 0 {
		return placeholderReviews(rating)
	}

	if len(upstream) > maxReviews {
		upstream = upstream[:maxReviews]
	}

	reviews := make([]models.Review, 0, len(upstream))
	for _, item := range upstream {
		m, _ := object(item)

		review := models.Review{
			Author:  firstText(m, "author", "name"),
			Comment: firstText(m, "text", "comment"),
			Rating:  5,
		}
		if review.Author == "" {
			review.Author = "Guest"
		}
		if review.Comment == "" {
			review.Comment = "Great stay!"
		}
		if v, ok := firstNumberIn(m, 0, maxRating, "rating", "score"); ok {
			review.Rating = v
		}
		reviews = append(reviews, review)
	}
	return reviews
}
