package framework

import "reflect"

// Cloner lets a stored value control how it is copied into a history snapshot
// Values without it are deep-copied through reflection
type Cloner interface {
	CloneValue() any
}

// Store maps a type to one value of that type
type Store struct {
	values map[reflect.Type]any
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{values: make(map[reflect.Type]any)}
}

func (s *Store) ensure() {
	if s.values == nil {
		s.values = make(map[reflect.Type]any)
	}
}

// Get returns the value stored under T
func Get[T any](s *Store) (T, bool) {
	var zero T
	if s == nil || s.values == nil {
		return zero, false
	}
	v, ok := s.values[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// GetOr returns the value stored under T, or def when absent
func GetOr[T any](s *Store, def T) T {
	if v, ok := Get[T](s); ok {
		return v
	}
	return def
}

// Set stores v under T, replacing any previous value
func Set[T any](s *Store, v T) {
	s.ensure()
	s.values[reflect.TypeFor[T]()] = v
}

// Delete removes the value stored under T and reports whether one existed
func Delete[T any](s *Store) bool {
	if s == nil || s.values == nil {
		return false
	}
	key := reflect.TypeFor[T]()
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Has reports whether a value is stored under T
func Has[T any](s *Store) bool {
	_, ok := Get[T](s)
	return ok
}

// Len returns the number of stored values
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Clear removes every value
func (s *Store) Clear() {
	clear(s.values)
}

// Clone deep-copies the store; no value in the copy shares mutable memory with the original
func (s *Store) Clone() *Store {
	out := NewStore()
	if s == nil {
		return out
	}
	for k, v := range s.values {
		out.values[k] = deepCopy(v)
	}
	return out
}

// Data is the two-tier context store
// Global survives grid replacement and history restores, State travels with snapshots
type Data struct {
	Global *Store
	State  *Store
}

// NewData returns empty tiers
func NewData() *Data {
	return &Data{Global: NewStore(), State: NewStore()}
}
