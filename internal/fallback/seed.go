package fallback

import (
	"time"

	"github.com/deppfellow/estate-listings/internal/model"
)

// SeedProperties returns the demo listings shown before anything else is
// added. Timestamps count back from now so the newest-first order is stable.
func SeedProperties(now time.Time) []model.Property {
	agent := &model.AgentSummary{
		ID:       "seed-agent-1",
		Name:     "Sokha Chan",
		Phone:    "+855 12 345 678",
		Avatar:   "/static/images/agents/sokha.jpg",
		IsActive: true,
	}

	intp := func(v int) *int { return &v }
	floatp := func(v float64) *float64 { return &v }
	strp := func(v string) *string { return &v }

	props := []model.Property{
		{
			ID:           "seed-property-1",
			Title:        "Modern Serviced Apartment",
			Description:  "Two-bedroom serviced apartment with a rooftop pool and gym.",
			Price:        1200,
			PriceType:    model.PriceTypeRent,
			PropertyType: "apartment",
			Bedrooms:     intp(2),
			Bathrooms:    intp(2),
			Area:         floatp(95),
			Location:     "BKK1, Phnom Penh",
			Address:      strp("Street 278, Boeung Keng Kang I"),
			Coordinates:  &model.GeoPoint{Lat: 11.5536, Lng: 104.9259},
			Images:       []string{"/static/images/properties/bkk1-apartment.jpg"},
			Features:     []string{"Swimming pool", "Gym", "24/7 security"},
			IsFeatured:   true,
			IsAvailable:  true,
			AgentID:      agent.ID,
			Agent:        agent,
		},
		{
			ID:           "seed-property-2",
			Title:        "Family Villa with Garden",
			Description:  "Four-bedroom villa in a quiet gated community.",
			Price:        385000,
			PriceType:    model.PriceTypeSale,
			PropertyType: "villa",
			Bedrooms:     intp(4),
			Bathrooms:    intp(5),
			Area:         floatp(320),
			Location:     "Toul Kork, Phnom Penh",
			Features:     []string{"Garden", "Parking for 2 cars"},
			IsFeatured:   true,
			IsAvailable:  true,
			AgentID:      agent.ID,
			Agent:        agent,
		},
		{
			ID:           "seed-property-3",
			Title:        "Riverside Studio",
			Description:  "Compact studio with a river view, fully furnished.",
			Price:        450,
			PriceType:    model.PriceTypeRent,
			PropertyType: "condo",
			Bedrooms:     intp(0),
			Bathrooms:    intp(1),
			Area:         floatp(38),
			Location:     "Daun Penh, Phnom Penh",
			IsAvailable:  true,
			AgentID:      agent.ID,
			Agent:        agent,
		},
	}

	for i := range props {
		props[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour).UTC()
		props[i].UpdatedAt = props[i].CreatedAt
		props[i].EnsureLists()
	}
	return props
}
