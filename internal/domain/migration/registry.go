package migration

import (
	"regexp"
	"slices"
	"strings"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
)

// NamePattern is the accepted unit name format: mYYYYMMDD_HHMMSS_description.
// The timestamp prefix makes lexical order chronological.
var NamePattern = regexp.MustCompile(`^m\d{8}_\d{6}_[a-z0-9_]+$`)

// Registry is the ordered, immutable set of known units
type Registry struct {
	units []Unit
	index map[string]int
}

// NewRegistry validates units and sorts them by name
func NewRegistry(units ...Unit) (*Registry, error) {
	index := make(map[string]int, len(units))
	for _, u := range units {
		if !NamePattern.MatchString(u.Name) {
			return nil, domainerr.NewSchemaError(u.Name, "migration name must match %s", NamePattern.String())
		}
		if u.Up == nil || u.Down == nil {
			return nil, domainerr.NewSchemaError(u.Name, "migration must define both up and down plans")
		}
		if _, dup := index[u.Name]; dup {
			return nil, domainerr.NewDuplicateMigrationNameError(u.Name)
		}
		index[u.Name] = -1
	}

	sorted := slices.Clone(units)
	slices.SortFunc(sorted, func(a, b Unit) int {
		return strings.Compare(a.Name, b.Name)
	})
	for i, u := range sorted {
		index[u.Name] = i
	}

	return &Registry{units: sorted, index: index}, nil
}

// Units returns a copy of the units in ascending name order
func (r *Registry) Units() []Unit {
	return slices.Clone(r.units)
}

// Names returns unit names in ascending order
func (r *Registry) Names() []string {
	names := make([]string, len(r.units))
	for i, u := range r.units {
		names[i] = u.Name
	}
	return names
}

// Len returns the number of units
func (r *Registry) Len() int {
	return len(r.units)
}

// Index returns the position of a unit
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Lookup finds a unit by name
func (r *Registry) Lookup(name string) (Unit, bool) {
	i, ok := r.index[name]
	if !ok {
		return Unit{}, false
	}
	return r.units[i], true
}

// Latest returns the name of the newest unit, or "" for an empty registry
func (r *Registry) Latest() string {
	if len(r.units) == 0 {
		return ""
	}
	return r.units[len(r.units)-1].Name
}

// Before reports whether name sorts before every registered unit
func (r *Registry) Before(name string) bool {
	return len(r.units) == 0 || name < r.units[0].Name
}
