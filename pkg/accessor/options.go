package accessor

import (
	"log/slog"
	"strings"

	"github.com/cmmoran/propgen/pkg/property"
)

// Options control accessor synthesis and stale-method removal.
//
// Suffix        – trailing word marking holder fields (default "Property").
// GeneratedOnly – remove only members that report IsGenerated() == true.
// Catalog       – recognized holder types; nil selects the built-in catalog.
// Logger        – debug trace of removals and insertions; nil selects slog.Default().
type Options struct {
	Suffix        string            `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty" mapstructure:"suffix,omitempty"`
	GeneratedOnly bool              `json:"generated_only,omitempty" yaml:"generated_only,omitempty" toml:"generated_only,omitempty" mapstructure:"generated_only,omitempty"`
	Catalog       *property.Catalog `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
	Logger        *slog.Logger      `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		Suffix:        property.DefaultSuffix,
		GeneratedOnly: false,
	}
}

func (o *Options) Normalize() {
	o.Suffix = strings.TrimSpace(o.Suffix)
	if o.Suffix == "" {
		o.Suffix = property.DefaultSuffix
	}
	if o.Catalog == nil {
		o.Catalog = property.DefaultCatalog()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithSuffix(s string) Option             { return func(o *Options) { o.Suffix = s } }
func WithGeneratedOnly() Option              { return func(o *Options) { o.GeneratedOnly = true } }
func WithCatalog(c *property.Catalog) Option { return func(o *Options) { o.Catalog = c } }
func WithLogger(l *slog.Logger) Option       { return func(o *Options) { o.Logger = l } }
