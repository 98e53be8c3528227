package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQueryCacheKeyIgnoresParamOrder(t *testing.T) {
	a := GenerateQueryCacheKey("p", map[string]string{"location": "bkk1", "priceType": "rent"})
	b := GenerateQueryCacheKey("p", map[string]string{"priceType": "rent", "location": "bkk1"})
	c := GenerateQueryCacheKey("p", map[string]string{"priceType": "sale", "location": "bkk1"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "p:"))
}

func TestNilCacheIsAlwaysMissing(t *testing.T) {
	var c *ListingCache
	ctx := context.Background()

	var dest []string
	key, hit := c.Lookup(ctx, "list", nil, &dest)
	assert.False(t, hit)
	assert.Empty(t, key)

	c.Store(ctx, "k", []string{"x"})
	c.Invalidate(ctx)
}

func TestNewWithoutClient(t *testing.T) {
	assert.Nil(t, New(nil, 0, nil))
}
