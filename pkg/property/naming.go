package property

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cmmoran/propgen/pkg/model"
)

// DefaultSuffix marks holder fields, as in "ageProperty".
const DefaultSuffix = "Property"

// Names is the accessor surface of one field.
type Names struct {
	Getter   string // getAge / isActive
	Setter   string // setAge
	Property string // ageProperty
}

// Naming derives accessor names from field names.
type Naming struct {
	Suffix string
}

// NewNaming returns a Naming for suffix, or DefaultSuffix when suffix is empty.
func NewNaming(suffix string) Naming {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return Naming{Suffix: suffix}
}

// Names returns the accessor names for field classified as c.
func (n Naming) Names(field string, c model.Classification) Names {
	stem := n.stem(field)
	prefix := "get"
	if c.Boolean() {
		prefix = "is"
	}
	return Names{
		Getter:   prefix + capitalize(stem),
		Setter:   "set" + capitalize(stem),
		Property: uncapitalize(stem) + n.suffix(),
	}
}

// StaleNames returns every accessor name a previous generation could have
// produced for field, whatever its value type was at the time.
func (n Naming) StaleNames(field string) []string {
	stem := capitalize(n.stem(field))
	return []string{
		"get" + stem,
		"is" + stem,
		"set" + stem,
		uncapitalize(n.stem(field)) + n.suffix(),
	}
}

func (n Naming) suffix() string {
	if n.Suffix == "" {
		return DefaultSuffix
	}
	return n.Suffix
}

// stem strips the holder suffix unless nothing would remain.
func (n Naming) stem(field string) string {
	if s := strings.TrimSuffix(field, n.suffix()); s != "" {
		return s
	}
	return field
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
