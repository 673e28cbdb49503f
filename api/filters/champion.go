package filters

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// Highest page whose offset still fits in an int at any limit.
	MaxPage = math.MaxInt/MaxLimit + 1
)

// URI params for the single champion endpoints.
type ChampionURIParams struct {
	Name string `uri:"name" binding:"required"`
}

// Query params for the champion listing.
// Kept as strings so malformed values fall back to the defaults instead of failing the bind.
type ChampionListParams struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

type ChampionListFilter struct {
	Page  int
	Limit int
}

// NewChampionListFilter coerces the raw query into a usable page window.
func NewChampionListFilter(pp *ChampionListParams) *ChampionListFilter {
	page := min(parsePositive(pp.Page, DefaultPage), MaxPage)
	limit := min(parsePositive(pp.Limit, DefaultLimit), MaxLimit)

	return &ChampionListFilter{
		Page:  page,
		Limit: limit,
	}
}

// Offset of the first row of the page.
func (f *ChampionListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func parsePositive(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
