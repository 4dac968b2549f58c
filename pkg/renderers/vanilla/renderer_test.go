package vanilla_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/render/template/gotemplate"
	"github.com/goliatone/go-propername/pkg/renderers/vanilla"
	"github.com/goliatone/go-propername/pkg/testsupport"
)

func TestFullRendererEmitsFiveVisibleInputs(t *testing.T) {
	renderer, err := vanilla.NewFull()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	record := testsupport.SampleRecord()
	record.LastName = "O'Brien"
	out, err := renderer.Render(testsupport.Context(), testsupport.SampleField(model.FieldTypeNameFull), propername.Structured(record), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(out.Visible()) != 5 || len(out.HiddenBindings()) != 0 {
		t.Fatalf("expected 5 visible bindings, got %d visible %d hidden", len(out.Visible()), len(out.HiddenBindings()))
	}

	wantSizes := map[propername.Part]render.Size{
		propername.PartSalutation: render.SizeNarrow,
		propername.PartFirstName:  render.SizeMedium,
		propername.PartMiddleName: render.SizeNarrow,
		propername.PartLastName:   render.SizeMedium,
		propername.PartSuffix:     render.SizeNarrow,
	}
	gotSizes := make(map[propername.Part]render.Size)
	for _, binding := range out.Bindings {
		gotSizes[binding.Part] = binding.Size
	}
	if diff := cmp.Diff(wantSizes, gotSizes); diff != "" {
		t.Fatalf("size hints mismatch (-want +got):\n%s", diff)
	}

	inputs := testsupport.Inputs(out.HTML)
	wantInputs := []testsupport.Input{
		{Type: "text", Name: "speaker[salutation]", Value: "Dr."},
		{Type: "text", Name: "speaker[first_name]", Value: "Jane"},
		{Type: "text", Name: "speaker[middle_name]", Value: "Q."},
		{Type: "text", Name: "speaker[last_name]", Value: "O&#39;Brien"},
		{Type: "text", Name: "speaker[name_suffix]", Value: "PhD"},
	}
	if diff := cmp.Diff(wantInputs, inputs); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}

	html := string(out.HTML)
	for _, fragment := range []string{
		`<label for="speaker_salutation">Salutation</label>`,
		`<label for="speaker_first_name">First Name</label>`,
		`<label for="speaker_middle_name">Middle</label>`,
		`<label for="speaker_last_name">Last Name</label>`,
		`<label for="speaker_name_suffix">Suffix</label>`,
		`class="propername-col-10"`,
		`class="propername-col-30"`,
		`class="propername-text-small"`,
		`class="propername-text-medium"`,
		`id="speaker_first_name"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestShortAndSimpleAlwaysBindFiveParts(t *testing.T) {
	cases := []struct {
		name      string
		fieldType model.FieldType
		value     propername.Value
	}{
		{name: "short full record", fieldType: model.FieldTypeNameShort, value: propername.Structured(testsupport.SampleRecord())},
		{name: "short empty", fieldType: model.FieldTypeNameShort, value: propername.Normalize(nil)},
		{name: "simple partial", fieldType: model.FieldTypeNameSimple, value: propername.Normalize(map[string]string{"first_name": "Jane"})},
		{name: "simple legacy string", fieldType: model.FieldTypeNameSimple, value: propername.Normalize("Jane Doe")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			renderer, err := vanilla.New(tc.fieldType)
			if err != nil {
				t.Fatalf("new renderer: %v", err)
			}
			out, err := renderer.Render(testsupport.Context(), testsupport.SampleField(tc.fieldType), tc.value, render.RenderOptions{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			if len(out.Bindings) != 5 {
				t.Fatalf("expected 5 bindings, got %d", len(out.Bindings))
			}
			visible := out.Visible()
			if len(visible) != 2 || visible[0].Part != propername.PartFirstName || visible[1].Part != propername.PartLastName {
				t.Fatalf("unexpected visible bindings: %#v", visible)
			}
			for _, binding := range out.HiddenBindings() {
				if binding.Value != "" {
					t.Fatalf("hidden %s should carry an empty value, got %q", binding.Part, binding.Value)
				}
			}

			inputs := testsupport.Inputs(out.HTML)
			if len(inputs) != 5 {
				t.Fatalf("expected 5 inputs in markup, got %d", len(inputs))
			}
			hidden := 0
			for _, input := range inputs {
				if input.Type == "hidden" {
					hidden++
					if input.Value != "" {
						t.Fatalf("hidden input %s has value %q", input.Name, input.Value)
					}
				}
			}
			if hidden != 3 {
				t.Fatalf("expected 3 hidden inputs, got %d", hidden)
			}
		})
	}
}

func TestShortRendererHiddenPartNames(t *testing.T) {
	renderer, err := vanilla.NewShort()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), testsupport.SampleField(model.FieldTypeNameShort), propername.Normalize(nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var names []string
	for _, binding := range out.HiddenBindings() {
		names = append(names, binding.Name)
	}
	want := []string{"speaker[salutation]", "speaker[middle_name]", "speaker[name_suffix]"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("hidden names mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderListIndexesRows(t *testing.T) {
	renderer, err := vanilla.NewShort()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	field := testsupport.SampleField(model.FieldTypeNameShort)
	field.Repeatable = true

	values := propername.NormalizeList([]any{
		map[string]any{"first_name": "Ada", "last_name": "Lovelace"},
		map[string]any{"first_name": "Grace", "last_name": "Hopper"},
	})
	out, err := renderer.RenderList(testsupport.Context(), field, values, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}

	if len(out.Bindings) != 10 {
		t.Fatalf("expected 10 bindings, got %d", len(out.Bindings))
	}
	if got := out.Bindings[5].Name; got != "speaker[1][first_name]" {
		t.Fatalf("unexpected second row name %q", got)
	}
	if got := out.Bindings[6].Value; got != "Hopper" {
		t.Fatalf("unexpected second row value %q", got)
	}
	html := string(out.HTML)
	for _, fragment := range []string{`id="speaker_repeat"`, `data-row="0"`, `data-row="1"`, `id="speaker_1_last_name"`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}

	empty, err := renderer.RenderList(testsupport.Context(), field, nil, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render empty list: %v", err)
	}
	if len(empty.Bindings) != 5 {
		t.Fatalf("expected one blank row, got %d bindings", len(empty.Bindings))
	}
}

func TestRendererLabelsAndHints(t *testing.T) {
	renderer, err := vanilla.NewShort()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	field := testsupport.SampleField(model.FieldTypeNameShort)
	field.Text = map[string]string{render.LabelKeyFirstName: "Given <name>"}
	field.UIHints = map[string]string{"cssClass": " wide   bordered "}

	out, err := renderer.Render(testsupport.Context(), field, propername.Normalize(nil), render.RenderOptions{
		Hidden: []render.HiddenField{render.Nonce("_nonce", "abc")},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out.HTML)
	for _, fragment := range []string{
		`Given &lt;name&gt;`,
		`class="propername-group wide bordered"`,
		`<input type="hidden" name="_nonce" value="abc"/>`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

type recordingEmitter struct {
	inputs  []string
	hiddens []string
}

func (e *recordingEmitter) Input(attrs render.InputAttrs) string {
	e.inputs = append(e.inputs, attrs.Name)
	return "[input " + attrs.Name + "]"
}

func (e *recordingEmitter) Hidden(attrs render.InputAttrs) string {
	e.hiddens = append(e.hiddens, attrs.Name)
	return "[hidden " + attrs.Name + "]"
}

func TestRendererUsesOptionEmitter(t *testing.T) {
	renderer, err := vanilla.NewSimple()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	emitter := &recordingEmitter{}
	out, err := renderer.Render(testsupport.Context(), testsupport.SampleField(model.FieldTypeNameSimple), propername.Normalize(nil), render.RenderOptions{Emitter: emitter})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(emitter.inputs) != 2 || len(emitter.hiddens) != 3 {
		t.Fatalf("unexpected emitter calls: %v %v", emitter.inputs, emitter.hiddens)
	}
	if !strings.Contains(string(out.HTML), "[input speaker[first_name]]") {
		t.Fatalf("custom markup missing:\n%s", out.HTML)
	}
}

func TestRendererThemePartialOverride(t *testing.T) {
	files := fstest.MapFS{
		"templates/name_full.tmpl": {Data: []byte("default")},
		"themes/acme/name.tmpl":    {Data: []byte(`<section>{% for column in columns %}{{ column.label }};{% endfor %}</section>`)},
	}
	renderer, err := vanilla.NewFull(vanilla.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), testsupport.SampleField(model.FieldTypeNameFull), propername.Normalize(nil), render.RenderOptions{
		Theme: &theme.RendererConfig{
			Partials: map[string]string{"propername.full": "themes/acme/name.tmpl"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<section>Salutation;First Name;Middle;Last Name;Suffix;</section>"
	if got := string(out.HTML); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestProperNameTemplateFilter(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := vanilla.NewFull(vanilla.WithTemplateRenderer(engine)); err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := engine.RenderString(`{{ speaker|proper_name }}|{{ legacy|proper_name }}`, map[string]any{
		"speaker": propername.Record{Salutation: "Dr.", FirstName: "Jane", LastName: "Doe"},
		"legacy":  "Grace Hopper",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Dr. Jane Doe|Grace Hopper" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewRejectsUnknownFieldType(t *testing.T) {
	if _, err := vanilla.New(model.FieldType("text_medium")); err == nil {
		t.Fatalf("expected unsupported field type error")
	}
}

func TestRegisterAddsAllVariants(t *testing.T) {
	registry := render.NewRegistry()
	if err := vanilla.Register(registry); err != nil {
		t.Fatalf("register: %v", err)
	}
	want := []model.FieldType{model.FieldTypeNameFull, model.FieldTypeNameShort, model.FieldTypeNameSimple}
	if diff := cmp.Diff(want, registry.Types()); diff != "" {
		t.Fatalf("registered types mismatch (-want +got):\n%s", diff)
	}
}

func TestStylesheetBundled(t *testing.T) {
	if !strings.Contains(vanilla.Stylesheet(), ".propername-group") {
		t.Fatalf("expected bundled stylesheet")
	}
}
