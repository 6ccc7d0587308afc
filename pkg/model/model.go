package model

import (
	"github.com/cmmoran/propgen/internal/signature"
)

// Kind is the role a field's declared type plays as a property holder.
type Kind int

const (
	KindUnsupported     Kind = iota // not in the catalog; no accessors
	KindScalar                      // IntegerProperty, StringProperty, ...
	KindCollection                  // ListProperty<E>, MapProperty<K,V>, ...
	KindObjectRef                   // ObjectProperty<T>
	KindReadOnlyWrapper             // ReadOnlyIntegerWrapper, ... exposes a read-only view
)

var kindNames = [...]string{
	KindUnsupported:     "unsupported",
	KindScalar:          "scalar",
	KindCollection:      "collection",
	KindObjectRef:       "object",
	KindReadOnlyWrapper: "read-only-wrapper",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Classification is the result of classifying one type signature.
type Classification struct {
	// Identity -------------------------------------------------------------
	Kind   Kind
	Holder signature.Signature // the declared field type

	// Accessor surface -----------------------------------------------------
	ValueType string // getter return / setter parameter type
	Writable  bool   // a setter is emitted

	// Collection -----------------------------------------------------------
	Container string // javafx.collections.ObservableList, ...
	TypeArgs  string // raw top-level argument text, "" if none

	// Read-only wrapper ----------------------------------------------------
	ReadOnlyView signature.Signature // paired view type with the same arguments
	Wrapped      *Classification     // classification of ReadOnlyView
}

// Supported reports whether accessors are generated for the classification.
func (c Classification) Supported() bool {
	return c.Kind != KindUnsupported
}

// Boolean reports whether the getter takes the "is" prefix.
func (c Classification) Boolean() bool {
	return c.ValueType == "boolean"
}

// PropertyType is the return type of the property accessor: the read-only
// view for wrappers, the declared holder type otherwise.
func (c Classification) PropertyType() string {
	if c.Kind == KindReadOnlyWrapper {
		return c.ReadOnlyView.String()
	}
	return c.Holder.String()
}

// Field is a field of the class being generated for. Owned by the caller.
type Field struct {
	Name string              `json:"name" yaml:"name" mapstructure:"name"`
	Type signature.Signature `json:"type" yaml:"type" mapstructure:"type"`
}
