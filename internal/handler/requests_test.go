package handler

import (
	"testing"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPropertiesRequestParsesFilters(t *testing.T) {
	req := &ListPropertiesRequest{
		PropertyType: " condo ",
		PriceType:    "rent",
		MinPrice:     "500",
		MaxPrice:     " 1500.5 ",
		Bedrooms:     "2",
		Location:     "Toul Kork",
		Featured:     "true",
		Limit:        "10",
		Offset:       "20",
	}
	require.NoError(t, req.Validate())

	f := req.Filter()
	assert.Equal(t, "condo", f.PropertyType)
	assert.Equal(t, model.PriceTypeRent, f.PriceType)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 500.0, *f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 1500.5, *f.MaxPrice)
	require.NotNil(t, f.Bedrooms)
	assert.Equal(t, 2, *f.Bedrooms)
	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, 20, f.Offset)
}

func TestListPropertiesRequestEmptyIsUnfiltered(t *testing.T) {
	req := &ListPropertiesRequest{}
	require.NoError(t, req.Validate())

	f := req.Filter()
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Nil(t, f.Featured)
	assert.Zero(t, f.Limit)
}

func TestListPropertiesRequestRejects(t *testing.T) {
	cases := map[string]ListPropertiesRequest{
		"minPrice":  {MinPrice: "abc"},
		"maxPrice":  {MaxPrice: "NaN"},
		"bedrooms":  {Bedrooms: "-1"},
		"priceType": {PriceType: "lease"},
		"featured":  {Featured: "maybe"},
		"limit":     {Limit: "101"},
		"offset":    {Offset: "1.5"},
	}

	for field, req := range cases {
		t.Run(field, func(t *testing.T) {
			err := req.Validate()
			require.Error(t, err)

			var fields []string
			for _, fe := range validationFields(t, err) {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, field)
		})
	}
}

func validationFields(t *testing.T, err error) []validation.CustomValidationError {
	t.Helper()

	var fields validation.CustomValidationErrors
	require.ErrorAs(t, err, &fields)
	return fields
}

func TestResourceRequestRequiresID(t *testing.T) {
	assert.Error(t, (&ResourceRequest{ID: "  "}).Validate())
	assert.NoError(t, (&ResourceRequest{ID: "p-1"}).Validate())
}

func TestNewRequestReturnsFreshValue(t *testing.T) {
	template := &ResourceRequest{ID: "stale"}

	fresh := newRequest(template)
	assert.NotSame(t, template, fresh)
	assert.Empty(t, fresh.ID)
}
