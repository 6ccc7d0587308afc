package classdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/propgen/pkg/model"
)

// ErrNoDocument is returned by Load when the document file does not exist.
var ErrNoDocument = errors.New("class document not found")

// MemberKind is the declaration kind of a class member.
type MemberKind string

const (
	KindField       MemberKind = "field"
	KindMethod      MemberKind = "method"
	KindConstructor MemberKind = "constructor"
	KindInitializer MemberKind = "initializer"
	KindClass       MemberKind = "class"
)

// Member is one entry of the class body, in declaration order.
type Member struct {
	Name      string     `yaml:"name" json:"name"`
	Kind      MemberKind `yaml:"kind" json:"kind"`
	Generated bool       `yaml:"generated,omitempty" json:"generated,omitempty"`
	Source    string     `yaml:"source,omitempty" json:"source,omitempty"`
}

func (m *Member) MemberName() string { return m.Name }

// IsMethod reports true for methods only; constructors are never accessors.
func (m *Member) IsMethod() bool    { return m.Kind == KindMethod }
func (m *Member) IsGenerated() bool { return m.Generated }

// Document describes one class: its members in order, the property fields
// resolved from its declaration and the insertion index for new accessors.
type Document struct {
	Class   string        `yaml:"class" json:"class"`
	Index   int           `yaml:"index" json:"index"`
	Fields  []model.Field `yaml:"fields,omitempty" json:"fields,omitempty"`
	Members []*Member     `yaml:"members" json:"members"`
}

// Load reads a document from the provided path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoDocument, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read class document: %w", err)
	}

	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal class document: %w", err)
	}

	return &d, nil
}

// Save writes the document to the provided path, creating parent directories as needed.
func (d *Document) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}

	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write class document: %w", err)
	}

	return nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal class document: %w", err)
	}
	return data, nil
}

// ModelMembers returns the members as reconciler input.
func (d *Document) ModelMembers() []model.Member {
	out := make([]model.Member, 0, len(d.Members))
	for _, m := range d.Members {
		if m == nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SetMembers replaces the members with ms. Synthesized methods become
// generated method entries whose source is produced by source; existing
// document members are kept as they are.
func (d *Document) SetMembers(ms []model.Member, source func(*model.Method) string) error {
	out := make([]*Member, 0, len(ms))
	for _, m := range ms {
		switch v := m.(type) {
		case *Member:
			out = append(out, v)
		case *model.Method:
			dm := &Member{Name: v.Name, Kind: KindMethod, Generated: true}
			if source != nil {
				dm.Source = source(v)
			}
			out = append(out, dm)
		default:
			return fmt.Errorf("unsupported member %T (%s)", m, m.MemberName())
		}
	}
	d.Members = out
	return nil
}
