package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/rs/zerolog"
)

var errBackend = errors.New("connection refused")

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
}

// fakeAgents is an in-memory AgentRepository with soft delete.
type fakeAgents struct {
	mu     sync.Mutex
	agents map[string]model.Agent
}

func newFakeAgents(agents ...model.Agent) *fakeAgents {
	f := &fakeAgents{agents: map[string]model.Agent{}}
	for _, a := range agents {
		f.agents[a.ID] = a
	}
	return f
}

func (f *fakeAgents) Find(_ context.Context) ([]model.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Agent
	for _, a := range f.agents {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeAgents) FindByID(_ context.Context, id string) (*model.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.agents[id]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeAgents) Create(_ context.Context, a *model.Agent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents[a.ID] = *a
	return nil
}

func (f *fakeAgents) Update(_ context.Context, a *model.Agent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.agents[a.ID]; !ok {
		return model.ErrRecordNotFound
	}
	f.agents[a.ID] = *a
	return nil
}

func (f *fakeAgents) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.agents[id]
	if !ok {
		return model.ErrRecordNotFound
	}
	a.IsActive = false
	f.agents[id] = a
	return nil
}

func (f *fakeAgents) DeletePolicy() model.DeletePolicy { return model.DeleteSoft }

// memProperties joins the current agent on every read, like the SQL adapter.
type memProperties struct {
	mu     sync.Mutex
	props  map[string]model.Property
	agents *fakeAgents

	findCalls int
	findErr   error
}

func newMemProperties(agents *fakeAgents, props ...model.Property) *memProperties {
	m := &memProperties{props: map[string]model.Property{}, agents: agents}
	for _, p := range props {
		m.props[p.ID] = p
	}
	return m
}

func (m *memProperties) withAgent(p model.Property) model.Property {
	if a, err := m.agents.FindByID(context.Background(), p.AgentID); err == nil {
		p.Agent = a.Summary()
	}
	return p
}

func (m *memProperties) Find(_ context.Context, filter model.PropertyFilter) ([]model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}

	var out []model.Property
	for _, p := range m.props {
		if filter.Matches(p) {
			out = append(out, m.withAgent(p))
		}
	}
	model.SortNewestFirst(out)
	return filter.Page(out), nil
}

func (m *memProperties) FindByID(_ context.Context, id string) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.props[id]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	p = m.withAgent(p)
	return &p, nil
}

func (m *memProperties) Create(_ context.Context, p *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.props[p.ID] = *p
	return nil
}

func (m *memProperties) Update(_ context.Context, p *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.props[p.ID]; !ok {
		return model.ErrRecordNotFound
	}
	m.props[p.ID] = *p
	return nil
}

func (m *memProperties) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.props[id]; !ok {
		return model.ErrRecordNotFound
	}
	delete(m.props, id)
	return nil
}

func (m *memProperties) DeletePolicy() model.DeletePolicy { return model.DeleteHard }

// fakeUnits is an in-memory UnitRepository.
type fakeUnits struct {
	units map[string]model.Unit
}

func newFakeUnits() *fakeUnits {
	return &fakeUnits{units: map[string]model.Unit{}}
}

func (f *fakeUnits) Find(_ context.Context) ([]model.Unit, error) {
	var out []model.Unit
	for _, u := range f.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitNo < out[j].UnitNo })
	return out, nil
}

func (f *fakeUnits) FindByID(_ context.Context, id string) (*model.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUnits) Create(_ context.Context, u *model.Unit) error {
	f.units[u.ID] = *u
	return nil
}

func (f *fakeUnits) Update(_ context.Context, u *model.Unit) error {
	if _, ok := f.units[u.ID]; !ok {
		return model.ErrRecordNotFound
	}
	f.units[u.ID] = *u
	return nil
}

func (f *fakeUnits) Delete(_ context.Context, id string) error {
	if _, ok := f.units[id]; !ok {
		return model.ErrRecordNotFound
	}
	delete(f.units, id)
	return nil
}

func (f *fakeUnits) DeletePolicy() model.DeletePolicy { return model.DeleteHard }

// failingContacts always errors, to exercise the fallback path.
type failingContacts struct{}

func (failingContacts) Create(context.Context, *model.ContactInquiry) error { return errBackend }
func (failingContacts) Find(context.Context) ([]model.ContactInquiry, error) {
	return nil, errBackend
}

type recordingNotifier struct {
	notified []model.ContactInquiry
	err      error
}

func (r *recordingNotifier) NotifyContactInquiry(_ context.Context, inquiry model.ContactInquiry) error {
	r.notified = append(r.notified, inquiry)
	return r.err
}

// fakeDisplay is a DisplayRepository with canned content.
type fakeDisplay struct {
	info   *model.CompanyInfo
	slides []model.HeroSlide
}

func (f fakeDisplay) CompanyInfo(context.Context) (*model.CompanyInfo, error) {
	if f.info == nil {
		return nil, model.ErrRecordNotFound
	}
	info := *f.info
	return &info, nil
}

func (f fakeDisplay) HeroSlides(context.Context) ([]model.HeroSlide, error) {
	return f.slides, nil
}
