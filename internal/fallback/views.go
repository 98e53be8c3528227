package fallback

import (
	"context"

	"github.com/deppfellow/estate-listings/internal/model"
)

// PropertyView exposes the store through the property repository contract.
type PropertyView struct {
	store *Store
}

func (v *PropertyView) Find(_ context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	v.store.mu.RLock()
	all := v.store.properties.All()
	v.store.mu.RUnlock()

	out := make([]model.Property, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	model.SortNewestFirst(out)
	return filter.Page(out), nil
}

func (v *PropertyView) FindByID(_ context.Context, id string) (*model.Property, error) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	p, ok := v.store.properties.Get(id)
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return &p, nil
}

func (v *PropertyView) Create(_ context.Context, p *model.Property) error {
	v.store.UpsertProperty(*p)
	return nil
}

func (v *PropertyView) Update(_ context.Context, p *model.Property) error {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	if _, ok := v.store.properties.Get(p.ID); !ok {
		return model.ErrRecordNotFound
	}
	p.EnsureLists()
	v.store.properties.UpsertByID(*p)
	v.store.persist()
	return nil
}

func (v *PropertyView) Delete(_ context.Context, id string) error {
	if !v.store.RemoveProperty(id) {
		return model.ErrRecordNotFound
	}
	return nil
}

func (v *PropertyView) DeletePolicy() model.DeletePolicy {
	return model.DeleteHard
}

// ContactView exposes the store through the contact repository contract.
type ContactView struct {
	store *Store
}

func (v *ContactView) Create(_ context.Context, inquiry *model.ContactInquiry) error {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	v.store.contacts.UpsertByID(*inquiry)
	v.store.persist()
	return nil
}

func (v *ContactView) Find(_ context.Context) ([]model.ContactInquiry, error) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	return v.store.contacts.All(), nil
}
