package homehive

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Registry is the ordered list of live properties under the "properties"
// key. It is the only sanctioned writer of base reference fields.
type Registry struct {
	storage Storage
}

// NewRegistry returns a registry over the given storage.
func NewRegistry(storage Storage) *Registry {
	return &Registry{storage: storage}
}

// Properties returns every live property, in insertion order.
func (r *Registry) Properties() []Property {
	var ps []Property
	if _, err := loadJSON(r.storage, keyProperties, &ps); err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	return ps
}

// Property returns the live property with the given id.
func (r *Registry) Property(id string) (Property, bool) {
	for _, p := range r.Properties() {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}

// Add appends a new property. A missing id is generated.
func (r *Registry) Add(p Property) (Property, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Name == "" {
		return Property{}, fmt.Errorf("a property needs a name")
	}
	if _, exists := r.Property(p.ID); exists {
		return Property{}, fmt.Errorf("property %q already exists", p.ID)
	}
	ps := append(r.Properties(), p)
	if err := saveJSON(r.storage, keyProperties, ps); err != nil {
		return Property{}, err
	}
	return p, nil
}

// Update replaces the live property with the same id.
func (r *Registry) Update(p Property) error {
	ps := r.Properties()
	for i := range ps {
		if ps[i].ID == p.ID {
			ps[i] = p
			return saveJSON(r.storage, keyProperties, ps)
		}
	}
	return fmt.Errorf("unknown property %q", p.ID)
}

// Delete removes a property from the live list and clears its temporal
// records and year partitions. Historical snapshots, inventory and tasks are
// deliberately left behind: history survives property deletion.
func (r *Registry) Delete(id string, temporal *TemporalStore, years *YearStore) error {
	ps := r.Properties()
	kept := ps[:0]
	for _, p := range ps {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(ps) {
		return fmt.Errorf("unknown property %q", id)
	}
	if err := saveJSON(r.storage, keyProperties, kept); err != nil {
		return err
	}
	if err := temporal.Clear(id); err != nil {
		return err
	}
	return years.Clear(id)
}
