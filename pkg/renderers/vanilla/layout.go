package vanilla

import (
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
)

const templatePrefix = "templates/"

type column struct {
	part propername.Part
	size render.Size
}

// variant describes which parts a field type shows and how they are laid
// out. Parts missing from columns are emitted as hidden inputs.
type variant struct {
	fieldType  model.FieldType
	partialKey string
	template   string
	columns    []column
}

var (
	fullVariant = variant{
		fieldType:  model.FieldTypeNameFull,
		partialKey: "propername.full",
		template:   templatePrefix + "name_full.tmpl",
		columns: []column{
			{part: propername.PartSalutation, size: render.SizeNarrow},
			{part: propername.PartFirstName, size: render.SizeMedium},
			{part: propername.PartMiddleName, size: render.SizeNarrow},
			{part: propername.PartLastName, size: render.SizeMedium},
			{part: propername.PartSuffix, size: render.SizeNarrow},
		},
	}
	shortVariant = variant{
		fieldType:  model.FieldTypeNameShort,
		partialKey: "propername.short",
		template:   templatePrefix + "name_short.tmpl",
		columns: []column{
			{part: propername.PartFirstName, size: render.SizeMedium},
			{part: propername.PartLastName, size: render.SizeMedium},
		},
	}
	simpleVariant = variant{
		fieldType:  model.FieldTypeNameSimple,
		partialKey: "propername.simple",
		template:   templatePrefix + "name_short.tmpl",
		columns:    shortVariant.columns,
	}
)

func variantFor(fieldType model.FieldType) (variant, bool) {
	switch fieldType {
	case model.FieldTypeNameFull:
		return fullVariant, true
	case model.FieldTypeNameShort:
		return shortVariant, true
	case model.FieldTypeNameSimple:
		return simpleVariant, true
	default:
		return variant{}, false
	}
}

// VisibleParts returns the parts fieldType renders as visible inputs.
func VisibleParts(fieldType model.FieldType) []propername.Part {
	v, ok := variantFor(fieldType)
	if !ok {
		return nil
	}
	parts := make([]propername.Part, 0, len(v.columns))
	for _, col := range v.columns {
		parts = append(parts, col.part)
	}
	return parts
}

// bind computes the five bindings for one record. Visible parts follow the
// column order; the remaining parts follow in canonical order as hidden
// inputs with empty values.
func (v variant) bind(field model.Field, record propername.Record, index int, opts render.RenderOptions) []render.Binding {
	bindings := make([]render.Binding, 0, len(propername.Parts()))
	visible := make(map[propername.Part]struct{}, len(v.columns))

	for _, col := range v.columns {
		visible[col.part] = struct{}{}
		bindings = append(bindings, render.Binding{
			Part:  col.part,
			Index: index,
			Name:  field.InputName(col.part, index),
			ID:    field.InputID(col.part, index),
			Value: record.Get(col.part),
			Label: render.Label(field, col.part, opts),
			Class: inputClass(col.size),
			Size:  col.size,
		})
	}
	for _, part := range propername.Parts() {
		if _, ok := visible[part]; ok {
			continue
		}
		bindings = append(bindings, render.Binding{
			Part:   part,
			Index:  index,
			Name:   field.InputName(part, index),
			ID:     field.InputID(part, index),
			Hidden: true,
		})
	}
	return bindings
}
