package model

import (
	"sort"
	"strings"
)

// FeaturedLimit caps featured-only listings.
const FeaturedLimit = 6

// PropertyFilter is the set of optional listing constraints. A nil pointer or
// empty string means "no constraint on that dimension".
type PropertyFilter struct {
	PropertyType string
	PriceType    PriceType
	MinPrice     *float64
	MaxPrice     *float64
	// Bedrooms is an exact match, not a minimum.
	Bedrooms *int
	// Location is a case-insensitive substring match.
	Location string
	Featured *bool

	// IncludeUnavailable lifts the isAvailable constraint. Only management
	// reads set it.
	IncludeUnavailable bool

	Limit  int
	Offset int
}

// InvertedBounds reports minPrice > maxPrice, which always yields no rows.
func (f PropertyFilter) InvertedBounds() bool {
	return f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice
}

// FeaturedOnly reports whether the filter asks for featured listings only.
func (f PropertyFilter) FeaturedOnly() bool {
	return f.Featured != nil && *f.Featured
}

// Matches evaluates the filter against a single property in memory. SQL
// backends express the same rules in their WHERE clause.
func (f PropertyFilter) Matches(p Property) bool {
	if !f.IncludeUnavailable && !p.IsAvailable {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.PriceType != "" && p.PriceType != f.PriceType {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms != *f.Bedrooms) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	return true
}

// SortNewestFirst orders by creation time descending, ties broken by id.
func SortNewestFirst(props []Property) {
	sort.SliceStable(props, func(i, j int) bool {
		if !props[i].CreatedAt.Equal(props[j].CreatedAt) {
			return props[i].CreatedAt.After(props[j].CreatedAt)
		}
		return props[i].ID > props[j].ID
	})
}

// Page applies offset and limit to an already ordered slice.
func (f PropertyFilter) Page(props []Property) []Property {
	if f.Offset > 0 {
		if f.Offset >= len(props) {
			return []Property{}
		}
		props = props[f.Offset:]
	}
	if f.Limit > 0 && len(props) > f.Limit {
		props = props[:f.Limit]
	}
	return props
}
