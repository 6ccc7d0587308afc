package render

import (
	"fmt"
	"strings"

	"github.com/cmmoran/propgen/internal/signature"
	"github.com/cmmoran/propgen/pkg/model"
)

// Options control how methods are rendered.
type Options struct {
	// Simple strips package qualifiers from every type.
	Simple bool
	// Indent is the indentation of body statements, four spaces when empty.
	Indent string
}

// Method renders m as a Java method declaration. Getters and setters are
// final; the property accessor is left overridable.
func Method(m *model.Method, opts Options) string {
	if m == nil {
		return ""
	}
	indent := opts.Indent
	if indent == "" {
		indent = "    "
	}
	typ := func(s string) string {
		if opts.Simple {
			return signature.Parse(s).Simple()
		}
		return s
	}

	modifiers := "public final"
	if m.Body == model.ReturnIdentity || m.Body == model.ReturnReadOnlyView {
		modifiers = "public"
	}

	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, typ(p.Type)+" "+p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s(%s) {\n", modifiers, typ(m.ReturnType), m.Name, strings.Join(params, ", "))
	b.WriteString(indent)
	b.WriteString(Body(m))
	b.WriteString("\n}\n")
	return b.String()
}

// Body renders the single statement of a generated method body.
func Body(m *model.Method) string {
	switch m.Body {
	case model.ReturnGet:
		return "return " + m.Field + ".get();"
	case model.ReturnReadOnlyView:
		return "return " + m.Field + ".getReadOnlyProperty();"
	case model.InvokeSet:
		arg := "value"
		if len(m.Params) > 0 {
			arg = m.Params[0].Name
		}
		return m.Field + ".set(" + arg + ");"
	default:
		return "return " + m.Field + ";"
	}
}

// Methods renders ms separated by blank lines.
func Methods(ms []*model.Method, opts Options) string {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		parts = append(parts, Method(m, opts))
	}
	return strings.Join(parts, "\n")
}
