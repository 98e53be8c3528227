package fallback

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func itemID(i item) string { return i.ID }

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestUpsertByIDPrependsUnknownID(t *testing.T) {
	c := NewCollection(itemID, item{ID: "a"}, item{ID: "b"})

	c.UpsertByID(item{ID: "c"})

	assert.Equal(t, []string{"c", "a", "b"}, ids(c.All()))
}

func TestUpsertByIDReplacesInPlace(t *testing.T) {
	c := NewCollection(itemID, item{ID: "a"}, item{ID: "b"}, item{ID: "c"})

	c.UpsertByID(item{ID: "b", Name: "updated"})

	all := c.All()
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))
	assert.Equal(t, "updated", all[1].Name)
}

func TestRemoveByID(t *testing.T) {
	c := NewCollection(itemID, item{ID: "a"}, item{ID: "b"})

	assert.True(t, c.RemoveByID("a"))
	assert.False(t, c.RemoveByID("a"))
	assert.Equal(t, []string{"b"}, ids(c.All()))
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestListAvailablePropertiesSkipsWithdrawn(t *testing.T) {
	seed := SeedProperties(fixedNow())
	seed[1].IsAvailable = false

	s := New(Options{Seed: seed, Now: fixedNow})

	got := s.ListAvailableProperties()
	require.Len(t, got, len(seed)-1)
	for _, p := range got {
		assert.True(t, p.IsAvailable)
	}
}

func TestCreateContactInquiry(t *testing.T) {
	s := New(Options{Now: fixedNow})

	inquiry := s.CreateContactInquiry(model.ContactInput{Name: "Dara", Email: "dara@example.com", Phone: "012", Message: "Hi"})

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, fixedNow(), inquiry.CreatedAt)

	all, err := s.Contacts().Find(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, inquiry.ID, all[0].ID)
}

func TestStatePersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := New(Options{Path: path, Seed: SeedProperties(fixedNow()), Now: fixedNow})
	s.CreateContactInquiry(model.ContactInput{Name: "Dara", Email: "dara@example.com", Phone: "012", Message: "Hi"})
	require.True(t, s.RemoveProperty("seed-property-3"))

	restored := New(Options{Path: path, Seed: SeedProperties(fixedNow())})

	assert.Len(t, restored.ListAvailableProperties(), 2)
	contacts, err := restored.Contacts().Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestMalformedStateDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(Options{Path: path, Seed: SeedProperties(fixedNow())})

	assert.Empty(t, s.ListAvailableProperties())
}

func TestMalformedCollectionOnlyEmptiesThatCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	body := `{"properties":[{"id":"p1","title":"Kept","isAvailable":true}],"contacts":"oops"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s := New(Options{Path: path})

	props := s.ListAvailableProperties()
	require.Len(t, props, 1)
	assert.NotNil(t, props[0].Images)

	contacts, err := s.Contacts().Find(context.Background())
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestPropertyViewFindAppliesFilter(t *testing.T) {
	s := New(Options{Seed: SeedProperties(fixedNow())})
	view := s.Properties()

	sale := model.PropertyFilter{PriceType: model.PriceTypeSale}
	got, err := view.Find(context.Background(), sale)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "seed-property-2", got[0].ID)

	all, err := view.Find(context.Background(), model.PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "seed-property-1", all[0].ID)
}

func TestPropertyViewUpdateUnknownID(t *testing.T) {
	view := New(Options{}).Properties()

	err := view.Update(context.Background(), &model.Property{ID: "missing"})
	assert.ErrorIs(t, err, model.ErrRecordNotFound)
	assert.ErrorIs(t, view.Delete(context.Background(), "missing"), model.ErrRecordNotFound)
	assert.Equal(t, model.DeleteHard, view.DeletePolicy())
}
