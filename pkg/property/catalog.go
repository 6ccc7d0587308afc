package property

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/mod/semver"
)

// ErrInvalidCatalog is returned when a catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

const (
	fxProperty    = "javafx.beans.property."
	fxCollections = "javafx.collections."

	// ObjectType is the value type of an object holder without arguments.
	ObjectType = "java.lang.Object"

	// CatalogVersion is the version of the built-in catalog.
	CatalogVersion = "v1.0.0"
)

// Catalog is the closed set of recognized holder types. Keys are fully
// qualified base names. Classification consults the tables in a fixed order:
// Scalars, Collections, Generic, Wrappers.
type Catalog struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty" mapstructure:"version,omitempty"`

	// Scalars maps a holder to its verbatim value type.
	Scalars map[string]string `json:"scalars,omitempty" yaml:"scalars,omitempty" toml:"scalars,omitempty" mapstructure:"scalars,omitempty"`
	// Collections maps a holder to the observable container it exposes.
	Collections map[string]string `json:"collections,omitempty" yaml:"collections,omitempty" toml:"collections,omitempty" mapstructure:"collections,omitempty"`
	// Generic holders take their value type from their type arguments.
	Generic []string `json:"generic,omitempty" yaml:"generic,omitempty" toml:"generic,omitempty" mapstructure:"generic,omitempty"`
	// Wrappers maps a read-only wrapper to its paired read-only view.
	Wrappers map[string]string `json:"wrappers,omitempty" yaml:"wrappers,omitempty" toml:"wrappers,omitempty" mapstructure:"wrappers,omitempty"`
	// Writable holders get a setter.
	Writable []string `json:"writable,omitempty" yaml:"writable,omitempty" toml:"writable,omitempty" mapstructure:"writable,omitempty"`
}

// DefaultCatalog returns the built-in JavaFX catalog. Each call returns a
// fresh copy.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Version:     CatalogVersion,
		Scalars:     make(map[string]string),
		Collections: make(map[string]string),
		Wrappers:    make(map[string]string),
	}

	scalars := []struct{ name, value string }{
		{"Integer", "int"},
		{"Long", "long"},
		{"Float", "float"},
		{"Double", "double"},
		{"Boolean", "boolean"},
		{"String", "java.lang.String"},
	}
	collections := []struct{ name, container string }{
		{"List", fxCollections + "ObservableList"},
		{"Set", fxCollections + "ObservableSet"},
		{"Map", fxCollections + "ObservableMap"},
	}

	for _, s := range scalars {
		c.Scalars[fxProperty+s.name+"Property"] = s.value
		c.Scalars[fxProperty+"Simple"+s.name+"Property"] = s.value
		c.Scalars[fxProperty+"ReadOnly"+s.name+"Property"] = s.value
		c.Wrappers[fxProperty+"ReadOnly"+s.name+"Wrapper"] = fxProperty + "ReadOnly" + s.name + "Property"
		c.Writable = append(c.Writable, fxProperty+s.name+"Property", fxProperty+"Simple"+s.name+"Property")
	}
	for _, s := range collections {
		c.Collections[fxProperty+s.name+"Property"] = s.container
		c.Collections[fxProperty+"Simple"+s.name+"Property"] = s.container
		c.Collections[fxProperty+"ReadOnly"+s.name+"Property"] = s.container
		c.Wrappers[fxProperty+"ReadOnly"+s.name+"Wrapper"] = fxProperty + "ReadOnly" + s.name + "Property"
		c.Writable = append(c.Writable, fxProperty+s.name+"Property", fxProperty+"Simple"+s.name+"Property")
	}

	c.Generic = []string{
		fxProperty + "ObjectProperty",
		fxProperty + "SimpleObjectProperty",
		fxProperty + "ReadOnlyObjectProperty",
	}
	c.Wrappers[fxProperty+"ReadOnlyObjectWrapper"] = fxProperty + "ReadOnlyObjectProperty"
	c.Writable = append(c.Writable, fxProperty+"ObjectProperty", fxProperty+"SimpleObjectProperty")

	return c
}

// Clone deep-copies the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{
		Version:     c.Version,
		Scalars:     make(map[string]string, len(c.Scalars)),
		Collections: make(map[string]string, len(c.Collections)),
		Generic:     append([]string(nil), c.Generic...),
		Wrappers:    make(map[string]string, len(c.Wrappers)),
		Writable:    append([]string(nil), c.Writable...),
	}
	for k, v := range c.Scalars {
		out.Scalars[k] = v
	}
	for k, v := range c.Collections {
		out.Collections[k] = v
	}
	for k, v := range c.Wrappers {
		out.Wrappers[k] = v
	}
	return out
}

// Merge adds the rows of overlay to c. Overlay rows replace rows with the
// same key; the higher of the two versions is kept.
func (c *Catalog) Merge(overlay *Catalog) {
	if overlay == nil {
		return
	}
	if c.Scalars == nil {
		c.Scalars = make(map[string]string)
	}
	if c.Collections == nil {
		c.Collections = make(map[string]string)
	}
	if c.Wrappers == nil {
		c.Wrappers = make(map[string]string)
	}
	for k, v := range overlay.Scalars {
		c.Scalars[k] = v
	}
	for k, v := range overlay.Collections {
		c.Collections[k] = v
	}
	for k, v := range overlay.Wrappers {
		c.Wrappers[k] = v
	}
	c.Generic = appendUnique(c.Generic, overlay.Generic...)
	c.Writable = appendUnique(c.Writable, overlay.Writable...)

	if semver.IsValid(overlay.Version) && (!semver.IsValid(c.Version) || semver.Compare(overlay.Version, c.Version) > 0) {
		c.Version = overlay.Version
	}
}

// Validate checks that the version is a semantic version, that every wrapper
// view resolves through the scalar, collection or generic tables and that
// every writable entry appears in one of them.
func (c *Catalog) Validate() error {
	if !semver.IsValid(c.Version) {
		return fmt.Errorf("%w: version %q is not a semantic version", ErrInvalidCatalog, c.Version)
	}

	var errs []error
	for _, w := range sortedKeys(c.Wrappers) {
		view := c.Wrappers[w]
		if !c.direct(view) {
			errs = append(errs, fmt.Errorf("%w: wrapper %s pairs with unknown view %s", ErrInvalidCatalog, w, view))
		}
	}
	for _, name := range c.Writable {
		if !c.direct(name) {
			errs = append(errs, fmt.Errorf("%w: writable %s is not a scalar, collection or generic holder", ErrInvalidCatalog, name))
		}
	}
	return errors.Join(errs...)
}

// Names returns every base name in the catalog, sorted.
func (c *Catalog) Names() []string {
	seen := make(map[string]bool)
	for k := range c.Scalars {
		seen[k] = true
	}
	for k := range c.Collections {
		seen[k] = true
	}
	for _, k := range c.Generic {
		seen[k] = true
	}
	for k := range c.Wrappers {
		seen[k] = true
	}
	return sortedKeys(seen)
}

func (c *Catalog) direct(name string) bool {
	if _, ok := c.Scalars[name]; ok {
		return true
	}
	if _, ok := c.Collections[name]; ok {
		return true
	}
	return contains(c.Generic, name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func appendUnique(list []string, add ...string) []string {
	for _, s := range add {
		if !contains(list, s) {
			list = append(list, s)
		}
	}
	return list
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
