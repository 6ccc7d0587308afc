package property

import (
	"github.com/cmmoran/propgen/internal/signature"
	"github.com/cmmoran/propgen/pkg/model"
)

// Classifier maps declared field types to property kinds. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	scalars     map[string]string
	collections map[string]string
	generic     map[string]bool
	wrappers    map[string]string
	writable    map[string]bool
}

// NewClassifier indexes c. A nil catalog selects DefaultCatalog.
func NewClassifier(c *Catalog) *Classifier {
	if c == nil {
		c = DefaultCatalog()
	}
	cl := &Classifier{
		scalars:     make(map[string]string, len(c.Scalars)),
		collections: make(map[string]string, len(c.Collections)),
		generic:     make(map[string]bool, len(c.Generic)),
		wrappers:    make(map[string]string, len(c.Wrappers)),
		writable:    make(map[string]bool, len(c.Writable)),
	}
	for k, v := range c.Scalars {
		cl.scalars[k] = v
	}
	for k, v := range c.Collections {
		cl.collections[k] = v
	}
	for _, k := range c.Generic {
		cl.generic[k] = true
	}
	for k, v := range c.Wrappers {
		cl.wrappers[k] = v
	}
	for _, k := range c.Writable {
		cl.writable[k] = true
	}
	return cl
}

// Classify returns the classification of sig. It never fails: a base name
// outside the catalog yields KindUnsupported.
func (cl *Classifier) Classify(sig signature.Signature) model.Classification {
	if c, ok := cl.direct(sig); ok {
		return c
	}

	base := sig.Base()
	view, ok := cl.wrappers[base]
	if !ok {
		return model.Classification{Kind: model.KindUnsupported, Holder: sig}
	}

	args, _ := sig.TypeArguments()
	viewSig := signature.With(view, args)
	wrapped, ok := cl.direct(viewSig)
	if !ok {
		return model.Classification{Kind: model.KindUnsupported, Holder: sig}
	}

	return model.Classification{
		Kind:         model.KindReadOnlyWrapper,
		Holder:       sig,
		ValueType:    wrapped.ValueType,
		Writable:     false,
		Container:    wrapped.Container,
		TypeArgs:     wrapped.TypeArgs,
		ReadOnlyView: viewSig,
		Wrapped:      &wrapped,
	}
}

// direct consults the scalar, collection and generic tables, in that order.
func (cl *Classifier) direct(sig signature.Signature) (model.Classification, bool) {
	base := sig.Base()
	args, _ := sig.TypeArguments()

	if value, ok := cl.scalars[base]; ok {
		return model.Classification{
			Kind:      model.KindScalar,
			Holder:    sig,
			ValueType: value,
			Writable:  cl.writable[base],
		}, true
	}

	if container, ok := cl.collections[base]; ok {
		return model.Classification{
			Kind:      model.KindCollection,
			Holder:    sig,
			ValueType: signature.With(container, args).String(),
			Writable:  cl.writable[base],
			Container: container,
			TypeArgs:  args,
		}, true
	}

	if cl.generic[base] {
		value := args
		if value == "" {
			value = ObjectType
		}
		return model.Classification{
			Kind:      model.KindObjectRef,
			Holder:    sig,
			ValueType: value,
			Writable:  cl.writable[base],
			TypeArgs:  args,
		}, true
	}

	return model.Classification{}, false
}
