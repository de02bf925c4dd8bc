package gamedata

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownClass is returned when a class id is not in the registry.
var ErrUnknownClass = errors.New("unknown class")

// ClassRegistry holds the playable classes keyed by id.
type ClassRegistry struct {
	byID map[string]*ClassDef
	all  []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	r := &ClassRegistry{
		byID: make(map[string]*ClassDef, len(classes)),
		all:  classes,
	}
	for i := range classes {
		r.byID[classes[i].ID] = &classes[i]
	}
	return r
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// MustLoadClassRegistry loads a registry, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	r, err := LoadClassRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the class with the given id. An empty id selects
// DefaultClassID.
func (r *ClassRegistry) Get(id string) (*ClassDef, error) {
	if id == "" {
		id = DefaultClassID
	}
	def, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w %q (choose from %v)", ErrUnknownClass, id, r.IDs())
	}
	return def, nil
}

// IDs returns the sorted class ids.
func (r *ClassRegistry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.all)
}
