package signature

import (
	"strings"
)

// Signature is a declared type as written in source, e.g.
// "javafx.beans.property.MapProperty<java.lang.String, java.util.List<java.lang.Integer>>".
type Signature string

// Parse trims surrounding whitespace and returns the signature.
func Parse(s string) Signature {
	return Signature(strings.TrimSpace(s))
}

func (s Signature) String() string {
	return string(s)
}

// Base returns the signature with any generic argument suffix stripped:
// "java.util.Map<K, V>" becomes "java.util.Map".
func (s Signature) Base() string {
	raw := string(s)
	if i := strings.IndexByte(raw, '<'); i >= 0 {
		return strings.TrimSpace(raw[:i])
	}
	return raw
}

// TypeArguments returns the raw text of the top-level argument list. ok is
// false when there is no argument list or the brackets are unbalanced.
func (s Signature) TypeArguments() (args string, ok bool) {
	raw := string(s)
	open := strings.IndexByte(raw, '<')
	if open < 0 {
		return "", false
	}

	depth := 0
	for i := open; i < len(raw); i++ {
		switch raw[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return raw[open+1 : i], true
			}
		}
	}

	// never closed
	return "", false
}

// Arguments splits the top-level argument list on commas at depth zero.
// Arguments of nested generics are kept whole.
func (s Signature) Arguments() []Signature {
	args, ok := s.TypeArguments()
	if !ok {
		return nil
	}
	parts := SplitTopLevel(args)
	out := make([]Signature, 0, len(parts))
	for _, p := range parts {
		out = append(out, Parse(p))
	}
	return out
}

// Generic reports whether the signature carries a well-formed argument list.
func (s Signature) Generic() bool {
	_, ok := s.TypeArguments()
	return ok
}

// With returns base parameterized with args, or base alone when args is empty.
func With(base, args string) Signature {
	if strings.TrimSpace(args) == "" {
		return Parse(base)
	}
	return Signature(base + "<" + args + ">")
}

// SplitTopLevel splits a comma separated argument list, ignoring commas that
// sit inside a nested <...>. An unbalanced list is returned as one element.
func SplitTopLevel(args string) []string {
	if strings.TrimSpace(args) == "" {
		return nil
	}

	var (
		out   []string
		depth int
		start int
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return []string{strings.TrimSpace(args)}
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(args[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return []string{strings.TrimSpace(args)}
	}
	return append(out, strings.TrimSpace(args[start:]))
}

// Simple removes package qualifiers from every class name in the signature
// while keeping the generic structure.
//
//	java.lang.String               -> String
//	java.util.List<java.lang.String> -> List<String>
func (s Signature) Simple() string {
	raw := string(s)
	var (
		b     strings.Builder
		start int
	)
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '<', '>', ',':
			b.WriteString(simpleName(raw[start:i]))
			b.WriteByte(raw[i])
			start = i + 1
		}
	}
	b.WriteString(simpleName(raw[start:]))
	return b.String()
}

// simpleName drops the package from a single class name, keeping leading
// whitespace and wildcard bounds such as "? extends".
func simpleName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return name
	}
	lead := name[:strings.Index(name, trimmed)]
	if sp := strings.LastIndexByte(trimmed, ' '); sp >= 0 {
		lead += trimmed[:sp+1]
		trimmed = trimmed[sp+1:]
	}
	if i := strings.LastIndexByte(trimmed, '.'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return lead + trimmed
}
