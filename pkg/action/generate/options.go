package generate

import (
	"path/filepath"
	"strings"

	"github.com/cmmoran/propgen/pkg/property"
)

// Options control a generate run over one class document.
//
// InFile        – class document to read
// OutFile       – where the reconciled document is written (default: InFile)
// Index         – insertion index; negative uses the document's index
// Suffix        – trailing word marking holder fields
// CatalogFiles  – catalog overlays merged over the built-in catalog, in order
// GeneratedOnly – only remove members marked generated
// SimpleNames   – render generated sources without package qualifiers
// Diff          – compute a member diff between input and output
type Options struct {
	InFile        string   `json:"in_file,omitempty" yaml:"in_file,omitempty" toml:"in_file,omitempty" mapstructure:"in_file,omitempty"`
	OutFile       string   `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Index         int      `json:"index" yaml:"index" toml:"index" mapstructure:"index"`
	Suffix        string   `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty" mapstructure:"suffix,omitempty"`
	CatalogFiles  []string `json:"catalog_files,omitempty" yaml:"catalog_files,omitempty" toml:"catalog_files,omitempty" mapstructure:"catalog_files,omitempty"`
	GeneratedOnly bool     `json:"generated_only,omitempty" yaml:"generated_only,omitempty" toml:"generated_only,omitempty" mapstructure:"generated_only,omitempty"`
	SimpleNames   bool     `json:"simple_names,omitempty" yaml:"simple_names,omitempty" toml:"simple_names,omitempty" mapstructure:"simple_names,omitempty"`
	Diff          bool     `json:"diff,omitempty" yaml:"diff,omitempty" toml:"diff,omitempty" mapstructure:"diff,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		Index:  -1,
		Suffix: property.DefaultSuffix,
	}
}

func (o *Options) Normalize() {
	if strings.Contains(o.InFile, ".") {
		o.InFile, _ = filepath.Abs(o.InFile)
	}
	if len(o.OutFile) == 0 {
		o.OutFile = o.InFile
	}
	if strings.Contains(o.OutFile, ".") {
		o.OutFile, _ = filepath.Abs(o.OutFile)
	}
	if strings.TrimSpace(o.Suffix) == "" {
		o.Suffix = property.DefaultSuffix
	}
	files := o.CatalogFiles[:0]
	for _, f := range o.CatalogFiles {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	o.CatalogFiles = files
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInFile(f string) Option  { return func(o *Options) { o.InFile = f } }
func WithOutFile(f string) Option { return func(o *Options) { o.OutFile = f } }
func WithIndex(i int) Option      { return func(o *Options) { o.Index = i } }
func WithSuffix(s string) Option  { return func(o *Options) { o.Suffix = s } }
func WithCatalogFiles(files ...string) Option {
	return func(o *Options) { o.CatalogFiles = append(o.CatalogFiles, files...) }
}
func WithGeneratedOnly() Option { return func(o *Options) { o.GeneratedOnly = true } }
func WithSimpleNames() Option   { return func(o *Options) { o.SimpleNames = true } }
func WithDiff() Option          { return func(o *Options) { o.Diff = true } }
