package accessor

import (
	"log/slog"
	"slices"

	"github.com/cmmoran/propgen/pkg/model"
	"github.com/cmmoran/propgen/pkg/property"
)

// Reconciler removes previously generated accessors from a member list and
// splices freshly synthesized ones in at the insertion index. It holds no
// per-call state and is safe for concurrent use.
type Reconciler struct {
	Opts Options

	classifier *property.Classifier
	naming     property.Naming
	log        *slog.Logger
}

// New builds a Reconciler from opts.
func New(opts ...Option) *Reconciler {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) *Reconciler {
	opts.Normalize()

	return &Reconciler{
		Opts:       *opts,
		classifier: property.NewClassifier(opts.Catalog),
		naming:     property.NewNaming(opts.Suffix),
		log:        opts.Logger,
	}
}

// plan is a supported field paired with its classification.
type plan struct {
	field model.Field
	class model.Classification
}

// Classify exposes the classifier the reconciler was built with.
func (r *Reconciler) Classify(f model.Field) model.Classification {
	return r.classifier.Classify(f.Type)
}

// Names returns the accessor names for f.
func (r *Reconciler) Names(f model.Field) property.Names {
	return r.naming.Names(f.Name, r.Classify(f))
}

// Reconcile returns a new member list in which the accessors of fields are
// regenerated, together with the insertion index adjusted for members removed
// before it. Fields outside the catalog are ignored. members is not modified.
//
//  1. remove every method named like an accessor of a supported field
//  2. synthesize getter, setter (writable kinds only) and property accessor
//  3. insert them consecutively from the adjusted index
func (r *Reconciler) Reconcile(members []model.Member, fields []model.Field, index int) ([]model.Member, int) {
	if len(fields) == 0 {
		return slices.Clone(members), index
	}
	index = max(0, min(index, len(members)))

	plans := r.plan(fields)
	stale := r.staleNames(plans)

	// 1) Removal.
	out := make([]model.Member, 0, len(members)+3*len(plans))
	adjusted := index
	for i, m := range members {
		if !r.isStale(m, stale) {
			out = append(out, m)
			continue
		}
		if i < index {
			adjusted--
		}
		r.log.Debug("removed stale accessor", "name", m.MemberName(), "position", i)
	}

	// 2) Synthesis and 3) insertion.
	pos := adjusted
	for _, p := range plans {
		for _, m := range r.synthesize(p) {
			pos = min(pos, len(out))
			out = slices.Insert(out, pos, model.Member(m))
			r.log.Debug("inserted accessor", "name", m.Name, "field", p.field.Name, "position", pos)
			pos++
		}
	}

	return out, adjusted
}

// Accessors returns the methods synthesized for f, or nil when f's type is
// not a recognized holder.
func (r *Reconciler) Accessors(f model.Field) []*model.Method {
	c := r.Classify(f)
	if !c.Supported() {
		return nil
	}
	return r.synthesize(plan{field: f, class: c})
}

func (r *Reconciler) plan(fields []model.Field) []plan {
	plans := make([]plan, 0, len(fields))
	for _, f := range fields {
		c := r.classifier.Classify(f.Type)
		if !c.Supported() {
			r.log.Debug("skipping field outside catalog", "field", f.Name, "type", f.Type.String())
			continue
		}
		plans = append(plans, plan{field: f, class: c})
	}
	return plans
}

func (r *Reconciler) staleNames(plans []plan) map[string]bool {
	names := make(map[string]bool, 4*len(plans))
	for _, p := range plans {
		for _, n := range r.naming.StaleNames(p.field.Name) {
			names[n] = true
		}
	}
	return names
}

func (r *Reconciler) isStale(m model.Member, stale map[string]bool) bool {
	if m == nil || !m.IsMethod() || !stale[m.MemberName()] {
		return false
	}
	if !r.Opts.GeneratedOnly {
		return true
	}
	s, ok := m.(model.Synthetic)
	return ok && s.IsGenerated()
}
