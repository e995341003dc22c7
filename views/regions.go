package views

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/a-h/templ"
)

// ErrDuplicateRegion is returned when a region id is registered twice.
var ErrDuplicateRegion = errors.New("views: region already registered")

// Region renders one translatable part of the shop page. The rendered root
// element must carry the region id and honor Layout.OOB.
type Region struct {
	Render func(Shop) templ.Component
	ID     string
}

// Regions is the ordered set of regions re-rendered on a language switch.
// Safe for concurrent use.
type Regions struct {
	mu      sync.RWMutex
	regions []Region
}

// NewRegions returns an empty registry.
func NewRegions() *Regions {
	return &Regions{}
}

// Register adds a region. Regions render in registration order.
func (r *Regions) Register(id string, render func(Shop) templ.Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.regions, func(reg Region) bool { return reg.ID == id }) {
		return fmt.Errorf("%w: %s", ErrDuplicateRegion, id)
	}
	r.regions = append(r.regions, Region{ID: id, Render: render})
	return nil
}

// IDs lists the registered region ids.
func (r *Regions) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.regions))
	for i, reg := range r.regions {
		ids[i] = reg.ID
	}
	return ids
}

// OOB renders every region of v as an out-of-band swap.
func (r *Regions) OOB(v Shop) []templ.Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v.OOB = true
	out := make([]templ.Component, len(r.regions))
	for i, reg := range r.regions {
		out[i] = reg.Render(v)
	}
	return out
}

// ShopRegions returns the registry of the shop page: header, banner, hero,
// filters, grid, pagination, cart and contact.
func ShopRegions() *Regions {
	r := NewRegions()
	for _, reg := range []Region{
		{ID: "header", Render: Header},
		{ID: "banner", Render: Banner},
		{ID: "hero", Render: Hero},
		{ID: "filters", Render: Filters},
		{ID: "grid", Render: Grid},
		{ID: "pagination", Render: Pagination},
		{ID: "cart", Render: CartPanel},
		{ID: "contact", Render: func(v Shop) templ.Component { return ContactSection(v.Contact()) }},
	} {
		if err := r.Register(reg.ID, reg.Render); err != nil {
			panic(err)
		}
	}
	return r
}
