package render

// InputAttrs parameterises a single input element.
type InputAttrs struct {
	Type  string
	Name  string
	ID    string
	Value string
	Class string
	// Attrs holds additional attributes; they are emitted in sorted order.
	Attrs map[string]string
}

// Emitter produces markup for individual inputs. Hosts that already own an
// input helper plug it in through RenderOptions.Emitter.
type Emitter interface {
	Input(attrs InputAttrs) string
	Hidden(attrs InputAttrs) string
}
