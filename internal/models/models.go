package models

import "time"

// RawListing представляет запись отеля от внешнего поставщика в исходном виде.
// Форма записи не контролируется системой.
type RawListing map[string]any

// Listing представляет нормализованную карточку отеля для отображения
type Listing struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	LocationText    string   `json:"location"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Category        string   `json:"type"`
	PriceDisplay    string   `json:"price"`
	PriceNumber     *float64 `json:"priceNumber"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	PopularityScore float64  `json:"popularityScore"` // Для ранжирования
	Description     string   `json:"description"`
	PhotoURL        string   `json:"photo"`
	BookingURL      string   `json:"url"`
	Reviews         []Review `json:"reviews"`
	Rooms           *int     `json:"rooms,omitempty"`
	Beds            *int     `json:"beds,omitempty"`
}

// Review представляет отзыв гостя
type Review struct {
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// SearchContext содержит значения поиска, нужные нормализатору
type SearchContext struct {
	QueryText string
	Category  string
}

// SearchRequest представляет запрос формы поиска
type SearchRequest struct {
	QueryText  string `json:"location"`
	DateFrom   string `json:"dateFrom"`
	DateUntil  string `json:"dateUntil"`
	AdultCount int    `json:"adults"`
	ChildCount int    `json:"kids"`
	ChildAges  []int  `json:"childAges,omitempty"`
	Category   string `json:"accommodationType,omitempty"`
}

// SearchQuery представляет проверенный запрос к внешнему источнику
type SearchQuery struct {
	QueryText  string
	CheckIn    time.Time
	CheckOut   time.Time
	AdultCount int
	ChildCount int
}

// SearchResponse представляет ответ поиска
type SearchResponse struct {
	Results []Listing `json:"results"`
	Message string    `json:"message,omitempty"`
}

// FilterRequest представляет запрос на фильтрацию уже полученных карточек
type FilterRequest struct {
	Listings []Listing  `json:"listings"`
	Filter   FilterSpec `json:"filter"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
	Help    string `json:"help,omitempty"`
}

// AccommodationType представляет тип размещения в PostgreSQL
type AccommodationType struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Destination представляет направление в PostgreSQL
type Destination struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HotelDocument представляет документ индекса hotels: сырая запись поставщика и направление поиска
type HotelDocument struct {
	Destination string     `json:"destination"`
	Raw         RawListing `json:"raw"`
}
