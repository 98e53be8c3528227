package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/estate-listings/internal/errs"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProperty(t *testing.T, body string) PropertyInput {
	t.Helper()
	var in PropertyInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestPropertyInputMissingAgentID(t *testing.T) {
	in := decodeProperty(t, `{"title":"Villa","price":1200,"priceType":"rent","propertyType":"villa","location":"BKK1"}`)

	err := validation.Check(&in)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Contains(t, httpErr.Message, "agentId")
}

func TestPropertyInputNamesEveryMissingField(t *testing.T) {
	in := decodeProperty(t, `{"description":"nothing else"}`)

	err := validation.Check(&in)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Missing required fields: title, price, priceType, propertyType, location, agentId", httpErr.Message)
}

func TestPropertyInputApplyDefaults(t *testing.T) {
	in := decodeProperty(t, `{"title":" Villa ","price":"1200","priceType":"rent","propertyType":"villa","location":"BKK1","agentId":"a1"}`)
	require.NoError(t, in.Validate())

	var p Property
	in.Apply(&p)

	assert.Equal(t, "Villa", p.Title)
	assert.Equal(t, 1200.0, p.Price)
	assert.Nil(t, p.Bedrooms)
	assert.Nil(t, p.Area)
	assert.Nil(t, p.CommissionRate)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Features)
	assert.NotNil(t, p.SpecialConditions)
	assert.Empty(t, p.Images)
	assert.True(t, p.IsAvailable)
	assert.False(t, p.IsFeatured)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"features":[]`)
	assert.Contains(t, string(out), `"bedrooms":null`)
}

func TestPropertyInputRejectsBadNumbers(t *testing.T) {
	in := decodeProperty(t, `{"title":"t","price":"abc","priceType":"lease","propertyType":"villa","location":"x","agentId":"a","bedrooms":2.5,"area":0,"coordinates":{"lat":91,"lng":10}}`)

	err := in.Validate()
	var fieldErrs validation.CustomValidationErrors
	require.ErrorAs(t, err, &fieldErrs)

	got := map[string]string{}
	for _, fe := range fieldErrs {
		got[fe.Field] = fe.Message
	}
	assert.Equal(t, validation.MsgNumber, got["price"])
	assert.Equal(t, validation.MsgInteger, got["bedrooms"])
	assert.Contains(t, got, "priceType")
	assert.Contains(t, got, "area")
	assert.Contains(t, got, "coordinates.lat")
	assert.NotContains(t, got, "coordinates.lng")
}

func TestSearchTextSkipsMissingFields(t *testing.T) {
	p := Property{Title: "Villa", Location: "BKK1,  Phnom Penh", PropertyType: "house"}
	assert.Equal(t, "villa bkk1, phnom penh house", p.SearchText())

	assert.True(t, p.MatchesSearch(NormalizeSearchTerm("  bkk1 ")))
	assert.True(t, p.MatchesSearch(NormalizeSearchTerm("BKK1,   Phnom")))
	assert.False(t, p.MatchesSearch(""))
}

func TestNormalizeSearchTerm(t *testing.T) {
	assert.Equal(t, "", NormalizeSearchTerm("   "))
	assert.Equal(t, "two words", NormalizeSearchTerm("\tTwo \n  Words "))
}

func TestPropertyFilterMatches(t *testing.T) {
	beds := 2
	p := Property{Price: 500, PriceType: PriceTypeRent, PropertyType: "condo", Bedrooms: &beds, Location: "Toul Kork", IsAvailable: true}

	min, max := 100.0, 500.0
	three := 3
	yes := true

	assert.True(t, PropertyFilter{}.Matches(p))
	assert.True(t, PropertyFilter{MinPrice: &min, MaxPrice: &max, Location: "toul"}.Matches(p))
	assert.False(t, PropertyFilter{Bedrooms: &three}.Matches(p))
	assert.False(t, PropertyFilter{Featured: &yes}.Matches(p))
	assert.False(t, PropertyFilter{PriceType: PriceTypeSale}.Matches(p))

	p.IsAvailable = false
	assert.False(t, PropertyFilter{}.Matches(p))
	assert.True(t, PropertyFilter{IncludeUnavailable: true}.Matches(p))
}

func TestPropertyFilterInvertedBounds(t *testing.T) {
	min, max := 100.0, 50.0
	assert.True(t, PropertyFilter{MinPrice: &min, MaxPrice: &max}.InvertedBounds())
	assert.False(t, PropertyFilter{MinPrice: &min}.InvertedBounds())
}

func TestSortNewestFirstAndPage(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	props := []Property{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Hour)},
		{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
	}
	SortNewestFirst(props)
	assert.Equal(t, "c", props[0].ID)
	assert.Equal(t, "a", props[2].ID)

	page := PropertyFilter{Offset: 1, Limit: 1}.Page(props)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].ID)

	assert.Empty(t, PropertyFilter{Offset: 5}.Page(props))
}
