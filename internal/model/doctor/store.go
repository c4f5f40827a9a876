package doctor

import "strings"

// Filter narrows a directory listing. Zero value matches everything.
type Filter struct {
	Query         string
	Specialty     string
	AvailableOnly bool
}

// Matches reports whether d passes every criterion of f.
func (f Filter) Matches(d Doctor) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Hospital), q) &&
			!strings.Contains(strings.ToLower(d.Location), q) {
			return false
		}
	}
	if f.Specialty != "" && f.Specialty != AllSpecialties && d.Specialty != f.Specialty {
		return false
	}
	return !f.AvailableOnly || d.Available
}

// Store exposes doctor lookups for handlers and referrals.
type Store interface {
	List() []Doctor
	Search(f Filter) []Doctor
	FindByID(id string) (Doctor, bool)
	FindBySpecialty(specialty string) []Doctor
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Doctor
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied doctors.
func NewMemoryStore(items []Doctor) *MemoryStore {
	return &MemoryStore{items: append([]Doctor(nil), items...)}
}

// List returns every doctor in directory order.
func (s *MemoryStore) List() []Doctor {
	return append([]Doctor(nil), s.items...)
}

// Search returns the doctors matching f in directory order.
func (s *MemoryStore) Search(f Filter) []Doctor {
	out := make([]Doctor, 0, len(s.items))
	for _, item := range s.items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindByID looks up a doctor by identifier.
func (s *MemoryStore) FindByID(id string) (Doctor, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Doctor{}, false
}

// FindBySpecialty returns the available doctors of a specialty.
func (s *MemoryStore) FindBySpecialty(specialty string) []Doctor {
	if specialty == "" {
		return nil
	}
	return s.Search(Filter{Specialty: specialty, AvailableOnly: true})
}
