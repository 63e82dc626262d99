package animation

// Registry holds every loaded catalog for the lifetime of a game. Catalogs
// are only appended and removed; the activated flag is the one field flipped
// after registration.
type Registry struct {
	catalogs []*Catalog
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a catalog.
func (r *Registry) Add(c *Catalog) {
	if r == nil || c == nil {
		return
	}
	r.catalogs = append(r.catalogs, c)
}

// RemoveOwner drops every catalog loaded for owner and returns how many were
// removed. Shared catalogs (owner 0) are never removed this way.
func (r *Registry) RemoveOwner(owner uint64) int {
	if r == nil || owner == 0 {
		return 0
	}
	removed := 0
	for i := 0; i < len(r.catalogs); {
		if r.catalogs[i].Owner != owner {
			i++
			continue
		}
		last := len(r.catalogs) - 1
		r.catalogs[i] = r.catalogs[last]
		r.catalogs[last] = nil
		r.catalogs = r.catalogs[:last]
		removed++
	}
	return removed
}

// Replace swaps the catalog loaded from the same scene and owner for c,
// carrying over its activated flag. It reports false when no such catalog
// exists.
func (r *Registry) Replace(c *Catalog) bool {
	if r == nil || c == nil {
		return false
	}
	for i, old := range r.catalogs {
		if old.Scene != c.Scene || old.Owner != c.Owner {
			continue
		}
		c.Activated = old.Activated
		r.catalogs = append(r.catalogs[:i], r.catalogs[i+1:]...)
		r.catalogs = append(r.catalogs, c)
		return true
	}
	return false
}

// Active returns the first activated catalog of archetype a usable by
// owner: one loaded for that owner or a shared one.
func (r *Registry) Active(owner uint64, a Archetype) (*Catalog, bool) {
	if r == nil {
		return nil, false
	}
	for _, c := range r.catalogs {
		if c.Activated && c.Archetype == a && (c.Owner == owner || c.Owner == 0) {
			return c, true
		}
	}
	return nil, false
}

// Scene returns the first catalog loaded from the scene path.
func (r *Registry) Scene(scene string) (*Catalog, bool) {
	if r == nil {
		return nil, false
	}
	for _, c := range r.catalogs {
		if c.Scene == scene {
			return c, true
		}
	}
	return nil, false
}

// Activate marks the owner's catalog of archetype a as the live one and
// deactivates the owner's other catalogs. It returns how many catalogs of
// archetype a were activated.
func (r *Registry) Activate(owner uint64, a Archetype) int {
	if r == nil {
		return 0
	}
	activated := 0
	for _, c := range r.catalogs {
		if c.Owner != owner {
			continue
		}
		c.Activated = c.Archetype == a
		if c.Activated {
			activated++
		}
	}
	return activated
}

// Len returns the number of loaded catalogs.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.catalogs)
}

// All returns a copy of the catalog list.
func (r *Registry) All() []*Catalog {
	if r == nil {
		return nil
	}
	return append([]*Catalog(nil), r.catalogs...)
}
