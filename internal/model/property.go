package model

import (
	"errors"
	"strings"
	"time"

	"github.com/deppfellow/estate-listings/internal/validation"
)

// PriceType tells whether a listing is for rent or for sale.
type PriceType string

const (
	PriceTypeRent PriceType = "rent"
	PriceTypeSale PriceType = "sale"
)

// Valid reports whether t is one of the known price types.
func (t PriceType) Valid() bool {
	return t == PriceTypeRent || t == PriceTypeSale
}

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property is a listing owned by exactly one agent.
//
// Images, Features and SpecialConditions are never nil. Optional numeric and
// text fields are pointers so "absent" stays distinguishable from zero.
type Property struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Price             float64       `json:"price"`
	PriceType         PriceType     `json:"priceType"`
	PropertyType      string        `json:"propertyType"`
	Bedrooms          *int          `json:"bedrooms"`
	Bathrooms         *int          `json:"bathrooms"`
	Area              *float64      `json:"area"`
	Location          string        `json:"location"`
	Address           *string       `json:"address"`
	Coordinates       *GeoPoint     `json:"coordinates"`
	Images            []string      `json:"images"`
	Features          []string      `json:"features"`
	IsFeatured        bool          `json:"isFeatured"`
	IsAvailable       bool          `json:"isAvailable"`
	AvailabilityNote  *string       `json:"availabilityNote"`
	AvailableFrom     *time.Time    `json:"availableFrom"`
	CommissionRate    *float64      `json:"commissionRate"`
	SpecialConditions []string      `json:"specialConditions"`
	AgentID           string        `json:"agentId"`
	Agent             *AgentSummary `json:"agent,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// EnsureLists replaces nil list fields with empty lists.
func (p *Property) EnsureLists() {
	p.Images = orEmpty(p.Images)
	p.Features = orEmpty(p.Features)
	p.SpecialConditions = orEmpty(p.SpecialConditions)
}

// SearchText is the lower-cased, whitespace-collapsed text a search term is
// matched against. Empty fields are skipped entirely.
func (p Property) SearchText() string {
	parts := make([]string, 0, 5)
	for _, field := range []string{p.Title, p.Description, p.Location, deref(p.Address), p.PropertyType} {
		if normalized := NormalizeSearchTerm(field); normalized != "" {
			parts = append(parts, normalized)
		}
	}
	return strings.Join(parts, " ")
}

// CoordinatesInput accepts lat/lng as numbers or numeric strings.
type CoordinatesInput struct {
	Lat Numeric `json:"lat"`
	Lng Numeric `json:"lng"`
}

// PropertyInput is the write payload for create and update. Update replaces
// the whole record, so both paths share validation and defaults.
type PropertyInput struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Price             Numeric           `json:"price"`
	PriceType         string            `json:"priceType"`
	PropertyType      string            `json:"propertyType"`
	Bedrooms          Numeric           `json:"bedrooms"`
	Bathrooms         Numeric           `json:"bathrooms"`
	Area              Numeric           `json:"area"`
	Location          string            `json:"location"`
	Address           string            `json:"address"`
	Coordinates       *CoordinatesInput `json:"coordinates"`
	Images            []string          `json:"images"`
	Features          []string          `json:"features"`
	IsFeatured        *bool             `json:"isFeatured"`
	IsAvailable       *bool             `json:"isAvailable"`
	AvailabilityNote  string            `json:"availabilityNote"`
	AvailableFrom     string            `json:"availableFrom"`
	CommissionRate    Numeric           `json:"commissionRate"`
	SpecialConditions []string          `json:"specialConditions"`
	AgentID           string            `json:"agentId"`
}

// Validate checks required fields and numeric coercion.
func (in *PropertyInput) Validate() error {
	var fields validation.CustomValidationErrors

	fields.Require("title", trim(in.Title) != "")
	fields.Require("price", in.Price.IsSet())
	fields.Require("priceType", trim(in.PriceType) != "")
	fields.Require("propertyType", trim(in.PropertyType) != "")
	fields.Require("location", trim(in.Location) != "")
	fields.Require("agentId", trim(in.AgentID) != "")

	if in.Price.IsSet() {
		if price, err := in.Price.Float64(); err != nil {
			fields.Add("price", validation.MsgNumber)
		} else if *price < 0 {
			fields.Add("price", "must not be negative")
		}
	}

	if pt := trim(in.PriceType); pt != "" && !PriceType(pt).Valid() {
		fields.Add("priceType", "must be one of: rent sale")
	}

	checkCount(&fields, "bedrooms", in.Bedrooms)
	checkCount(&fields, "bathrooms", in.Bathrooms)

	if area, err := in.Area.Float64(); err != nil {
		fields.Add("area", validation.MsgNumber)
	} else if area != nil && *area <= 0 {
		fields.Add("area", "must be greater than 0")
	}

	if in.Coordinates != nil {
		checkRange(&fields, "coordinates.lat", in.Coordinates.Lat, -90, 90)
		checkRange(&fields, "coordinates.lng", in.Coordinates.Lng, -180, 180)
	}

	checkRange(&fields, "commissionRate", in.CommissionRate, 0, 100)

	if in.AvailableFrom != "" {
		if _, err := ParseDate(in.AvailableFrom); err != nil {
			fields.Add("availableFrom", "must be a date (YYYY-MM-DD)")
		}
	}

	return fields.Err()
}

// Apply copies a validated input onto p. Absent optional numerics become nil,
// absent lists become empty lists, isAvailable defaults to true.
func (in *PropertyInput) Apply(p *Property) {
	price, _ := in.Price.Float64()
	p.Title = trim(in.Title)
	p.Description = trim(in.Description)
	if price != nil {
		p.Price = *price
	}
	p.PriceType = PriceType(trim(in.PriceType))
	p.PropertyType = trim(in.PropertyType)
	p.Bedrooms, _ = in.Bedrooms.Int()
	p.Bathrooms, _ = in.Bathrooms.Int()
	p.Area, _ = in.Area.Float64()
	p.Location = trim(in.Location)
	p.Address = optionalString(in.Address)
	p.Coordinates = nil
	if in.Coordinates != nil {
		lat, _ := in.Coordinates.Lat.Float64()
		lng, _ := in.Coordinates.Lng.Float64()
		if lat != nil && lng != nil {
			p.Coordinates = &GeoPoint{Lat: *lat, Lng: *lng}
		}
	}
	p.Images = cleanList(in.Images)
	p.Features = cleanList(in.Features)
	p.IsFeatured = in.IsFeatured != nil && *in.IsFeatured
	p.IsAvailable = in.IsAvailable == nil || *in.IsAvailable
	p.AvailabilityNote = optionalString(in.AvailabilityNote)
	p.AvailableFrom = nil
	if in.AvailableFrom != "" {
		if t, err := ParseDate(in.AvailableFrom); err == nil {
			p.AvailableFrom = &t
		}
	}
	p.CommissionRate, _ = in.CommissionRate.Float64()
	p.SpecialConditions = cleanList(in.SpecialConditions)
	p.AgentID = trim(in.AgentID)
}

func checkCount(fields *validation.CustomValidationErrors, name string, n Numeric) {
	v, err := n.Int()
	switch {
	case errors.Is(err, ErrNotInteger):
		fields.Add(name, validation.MsgInteger)
	case err != nil:
		fields.Add(name, validation.MsgNumber)
	case v != nil && *v < 0:
		fields.Add(name, "must not be negative")
	}
}

func checkRange(fields *validation.CustomValidationErrors, name string, n Numeric, lo, hi float64) {
	v, err := n.Float64()
	switch {
	case err != nil:
		fields.Add(name, validation.MsgNumber)
	case v != nil && (*v < lo || *v > hi):
		fields.Add(name, "is out of range")
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func optionalString(s string) *string {
	if s = trim(s); s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
