package generate

import (
	"fmt"
	"log/slog"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/propgen/internal/render"
	"github.com/cmmoran/propgen/pkg/accessor"
	"github.com/cmmoran/propgen/pkg/classdoc"
	"github.com/cmmoran/propgen/pkg/model"
	"github.com/cmmoran/propgen/pkg/property"
)

// Result is the outcome of reconciling one document.
type Result struct {
	Document *classdoc.Document
	Index    int      // adjusted insertion index
	Skipped  []string // fields outside the catalog
	Diff     string   // member names, input vs output; set when Options.Diff
}

// Generate loads the document named by the options, reconciles its accessors
// and writes the result to OutFile.
func Generate(opts *Options, logger *slog.Logger) (*Result, error) {
	opts.Normalize()
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := classdoc.Load(opts.InFile)
	if err != nil {
		return nil, err
	}

	res, err := Apply(doc, opts, logger)
	if err != nil {
		return nil, err
	}

	if err = doc.Save(opts.OutFile); err != nil {
		return nil, err
	}
	logger.With("class", doc.Class, "file", opts.OutFile, "index", res.Index).Info("wrote class document")

	return res, nil
}

// Apply reconciles doc in place.
func Apply(doc *classdoc.Document, opts *Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	catalog, err := Catalog(opts.CatalogFiles...)
	if err != nil {
		return nil, err
	}

	ropts := []accessor.Option{
		accessor.WithSuffix(opts.Suffix),
		accessor.WithCatalog(catalog),
		accessor.WithLogger(logger),
	}
	if opts.GeneratedOnly {
		ropts = append(ropts, accessor.WithGeneratedOnly())
	}
	r := accessor.New(ropts...)

	index := opts.Index
	if index < 0 {
		index = doc.Index
	}
	if index > len(doc.Members) {
		logger.With("index", index, "members", len(doc.Members)).Warn("insertion index past the last member, appending")
	}

	res := &Result{Document: doc}
	for _, f := range doc.Fields {
		if !r.Classify(f).Supported() {
			res.Skipped = append(res.Skipped, f.Name)
			logger.With("field", f.Name, "type", f.Type.String()).Info("field type is not a recognized property holder")
		}
	}

	before := doc.ModelMembers()
	after, adjusted := r.Reconcile(before, doc.Fields, index)

	renderOpts := render.Options{Simple: opts.SimpleNames}
	if err = doc.SetMembers(after, func(m *model.Method) string { return render.Method(m, renderOpts) }); err != nil {
		return nil, fmt.Errorf("class %s: %w", doc.Class, err)
	}
	doc.Index = adjusted
	res.Index = adjusted

	if opts.Diff {
		res.Diff = cmp.Diff(model.Names(before), model.Names(after))
	}

	return res, nil
}

// Catalog resolves the built-in catalog with the overlay files merged in.
func Catalog(files ...string) (*property.Catalog, error) {
	overlays := make([]*property.Catalog, 0, len(files))
	for _, f := range files {
		c, err := property.LoadCatalogFile(f)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", f, err)
		}
		overlays = append(overlays, c)
	}
	return property.ResolveCatalog(overlays...)
}
