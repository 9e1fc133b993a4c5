package models

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Dependencies is an ordered dependency-name to version-spec mapping.
// Document key order is preserved so tags can be listed in first-seen order.
type Dependencies struct {
	m *orderedmap.OrderedMap
}

// NewDependencies creates a mapping from name/version pairs.
func NewDependencies(pairs ...string) *Dependencies {
	d := &Dependencies{m: newOrderedMap()}
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

// Set adds or replaces a dependency. Existing keys keep their position.
func (d *Dependencies) Set(name, version string) {
	d.ensure()
	d.m.Set(name, version)
}

// Keys returns dependency names in document order
func (d *Dependencies) Keys() []string {
	if d == nil || d.m == nil {
		return nil
	}
	return d.m.Keys()
}

// Get returns the version spec for a dependency
func (d *Dependencies) Get(name string) (string, bool) {
	if d == nil || d.m == nil {
		return "", false
	}
	v, ok := d.m.Get(name)
	if !ok {
		return "", false
	}
	return versionString(v), true
}

// Has reports whether name is a key of the mapping
func (d *Dependencies) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Len returns the number of dependencies
func (d *Dependencies) Len() int {
	return len(d.Keys())
}

// UnmarshalJSON decodes a JSON object keeping key order.
func (d *Dependencies) UnmarshalJSON(data []byte) error {
	m := orderedmap.New()
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("failed to decode dependencies: %w", err)
	}

	d.m = newOrderedMap()
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		d.m.Set(key, versionString(v))
	}
	return nil
}

// MarshalJSON encodes the mapping in its original key order.
// It only reads the mapping, so shared catalogs can be encoded concurrently.
func (d *Dependencies) MarshalJSON() ([]byte, error) {
	if d == nil || d.m == nil {
		return []byte("{}"), nil
	}
	return d.m.MarshalJSON()
}

func (d *Dependencies) ensure() {
	if d.m == nil {
		d.m = newOrderedMap()
	}
}

func newOrderedMap() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

// versionString renders a decoded JSON value as a version spec.
func versionString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
