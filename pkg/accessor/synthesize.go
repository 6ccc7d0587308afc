package accessor

import (
	"github.com/cmmoran/propgen/pkg/model"
)

// synthesize emits getter, setter and property accessor, in that order. The
// setter is omitted for kinds that are not writable.
func (r *Reconciler) synthesize(p plan) []*model.Method {
	names := r.naming.Names(p.field.Name, p.class)
	out := make([]*model.Method, 0, 3)

	out = append(out, &model.Method{
		Name:       names.Getter,
		ReturnType: p.class.ValueType,
		Body:       model.ReturnGet,
		Field:      p.field.Name,
	})

	if p.class.Writable {
		out = append(out, &model.Method{
			Name:       names.Setter,
			ReturnType: "void",
			Params:     []model.Parameter{{Name: "value", Type: p.class.ValueType}},
			Body:       model.InvokeSet,
			Field:      p.field.Name,
		})
	}

	body := model.ReturnIdentity
	if p.class.Kind == model.KindReadOnlyWrapper {
		body = model.ReturnReadOnlyView
	}
	out = append(out, &model.Method{
		Name:       names.Property,
		ReturnType: p.class.PropertyType(),
		Body:       body,
		Field:      p.field.Name,
	})

	return out
}
