package model

// Member is an existing class member as seen by the reconciler. Only the name
// and whether it is a method are inspected; members are never modified.
type Member interface {
	MemberName() string
	IsMethod() bool
}

// Synthetic is implemented by members that know whether they were produced
// by a previous generation.
type Synthetic interface {
	IsGenerated() bool
}

// BodyKind selects the statement a generated method body consists of.
type BodyKind int

const (
	ReturnGet          BodyKind = iota // return f.get();
	ReturnIdentity                     // return f;
	ReturnReadOnlyView                 // return f.getReadOnlyProperty();
	InvokeSet                          // f.set(value);
)

var bodyKindNames = [...]string{
	ReturnGet:          "return-get",
	ReturnIdentity:     "return-identity",
	ReturnReadOnlyView: "return-read-only-view",
	InvokeSet:          "invoke-set",
}

func (b BodyKind) String() string {
	if b < 0 || int(b) >= len(bodyKindNames) {
		return "unknown"
	}
	return bodyKindNames[b]
}

// Parameter is a single method parameter.
type Parameter struct {
	Name string
	Type string
}

// Method is a synthesized accessor. It is created fresh on every
// reconciliation and never mutated afterwards.
type Method struct {
	Name       string
	ReturnType string
	Params     []Parameter // zero or one entry
	Body       BodyKind
	Field      string // holder field referenced by the body
}

func (m *Method) MemberName() string { return m.Name }
func (m *Method) IsMethod() bool     { return true }
func (m *Method) IsGenerated() bool  { return true }

// Names returns the member names of ms in order.
func Names(ms []Member) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		if m == nil {
			continue
		}
		out = append(out, m.MemberName())
	}
	return out
}
