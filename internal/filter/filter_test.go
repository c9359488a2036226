package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

func ptr[T any](v T) *T { return &v }

func sampleListings() []models.Listing {
	return []models.Listing{
		{ID: "a", Name: "Harbour Inn", LocationText: "Port Street 1, Nice", Rating: 4.0, ReviewCount: 100, PopularityScore: 400, PriceNumber: ptr(120.0), Rooms: ptr(2), Beds: ptr(3)},
		{ID: "b", Name: "Hilltop Villa", LocationText: "Cimiez, Nice", Rating: 4.8, ReviewCount: 50, PopularityScore: 240, PriceNumber: ptr(310.0), Rooms: ptr(4)},
		{ID: "c", Name: "Budget Rooms", LocationText: "Station Road", Rating: 3.5, ReviewCount: 200, PopularityScore: 700},
		{ID: "d", Name: "Old Town Loft", LocationText: "Vieux Nice", Rating: 4.8, ReviewCount: 90, PopularityScore: 432, PriceNumber: ptr(89.0), Beds: ptr(1)},
		{ID: "e", Name: "Quiet Place", LocationText: "Suburb", Rating: 3.9, ReviewCount: 0, PopularityScore: 0},
	}
}

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestApplySort(t *testing.T) {
	tests := []struct {
		name string
		key  models.SortKey
		want []string
	}{
		{"default is popularity", "", []string{"c", "d", "a", "b", "e"}},
		{"popularity", models.SortByPopularity, []string{"c", "d", "a", "b", "e"}},
		{"rating keeps input order on ties", models.SortByRating, []string{"b", "d", "a", "e", "c"}},
		{"price low puts absent last", models.SortByPriceLow, []string{"d", "a", "b", "c", "e"}},
		{"price high puts absent last", models.SortByPriceHigh, []string{"b", "a", "d", "c", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleListings(), models.FilterSpec{SortBy: tt.key})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyPopularityNonIncreasing(t *testing.T) {
	got := Apply(sampleListings(), models.FilterSpec{SortBy: models.SortByPopularity})
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].PopularityScore, got[i].PopularityScore)
	}
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name string
		spec models.FilterSpec
		want []string
	}{
		{"no constraints", models.FilterSpec{}, []string{"c", "d", "a", "b", "e"}},
		{"min price excludes absent price", models.FilterSpec{MinPrice: ptr(100.0)}, []string{"a", "b"}},
		{"max price excludes absent price", models.FilterSpec{MaxPrice: ptr(150.0)}, []string{"d", "a"}},
		{"price range is inclusive", models.FilterSpec{MinPrice: ptr(89.0), MaxPrice: ptr(120.0)}, []string{"d", "a"}},
		{"min rating", models.FilterSpec{MinRating: ptr(4.0)}, []string{"d", "a", "b"}},
		{"min rooms ignores listings without rooms", models.FilterSpec{MinRooms: ptr(3)}, []string{"c", "d", "b", "e"}},
		{"min beds ignores listings without beds", models.FilterSpec{MinBeds: ptr(2)}, []string{"c", "a", "b", "e"}},
		{"area matches location case-insensitively", models.FilterSpec{AreaText: "  NICE "}, []string{"d", "a", "b"}},
		{"area matches name", models.FilterSpec{AreaText: "budget"}, []string{"c"}},
		{"combined", models.FilterSpec{AreaText: "nice", MinRating: ptr(4.5), SortBy: models.SortByPriceLow}, []string{"d", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleListings(), tt.spec)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyPriceFilterNeverReturnsAbsentPrice(t *testing.T) {
	for _, spec := range []models.FilterSpec{
		{MinPrice: ptr(0.0)},
		{MaxPrice: ptr(1e9)},
		{MinPrice: ptr(0.0), MaxPrice: ptr(1e9)},
	} {
		for _, l := range Apply(sampleListings(), spec) {
			assert.NotNil(t, l.PriceNumber, "listing %s", l.ID)
		}
	}
}

func TestApplyZeroUnitCountsAreKnown(t *testing.T) {
	listings := []models.Listing{
		{ID: "studio", Rooms: ptr(0), Beds: ptr(0)},
		{ID: "flat", Rooms: ptr(1), Beds: ptr(2)},
		{ID: "unknown"},
	}

	assert.ElementsMatch(t, []string{"flat", "unknown"}, ids(Apply(listings, models.FilterSpec{MinRooms: ptr(1)})))
	assert.ElementsMatch(t, []string{"flat", "unknown"}, ids(Apply(listings, models.FilterSpec{MinBeds: ptr(1)})))
	assert.ElementsMatch(t, []string{"studio", "flat", "unknown"}, ids(Apply(listings, models.FilterSpec{MinRooms: ptr(0)})))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := sampleListings()
	before := ids(input)

	got := Apply(input, models.FilterSpec{SortBy: models.SortByPriceHigh, MinRating: ptr(4.0)})
	require.NotEmpty(t, got)

	assert.Equal(t, before, ids(input))
	assert.Equal(t, sampleListings(), input)
}

func TestApplyEmpty(t *testing.T) {
	got := Apply(nil, models.FilterSpec{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterSpecValidate(t *testing.T) {
	assert.NoError(t, models.FilterSpec{}.Validate())
	assert.NoError(t, models.FilterSpec{SortBy: models.SortByPriceHigh}.Validate())
	assert.Error(t, models.FilterSpec{SortBy: "cheapest"}.Validate())
}
