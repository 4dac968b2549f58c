package fieldtype_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/goliatone/go-propername/pkg/fieldtype"
	"github.com/goliatone/go-propername/pkg/meta"
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/testsupport"
)

func newService(t *testing.T, store *meta.MemoryStore, options ...fieldtype.Option) *fieldtype.Service {
	t.Helper()
	options = append([]fieldtype.Option{fieldtype.WithStore(store), fieldtype.WithLogger(zap.NewNop())}, options...)
	service, err := fieldtype.NewService(options...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service
}

func TestServiceSaveCompositeSanitized(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)
	field := testsupport.SampleField(model.FieldTypeNameFull)

	raw := map[string]any{"first_name": "<b>Jane</b>", "last_name": "  Doe  "}
	if err := service.Save(ctx, "1", field, raw); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, ok, _ := store.Get(ctx, "1", "speaker")
	if !ok {
		t.Fatalf("expected composite value stored")
	}
	want := propername.Record{FirstName: "Jane", LastName: "Doe"}
	if diff := cmp.Diff(want, propername.Normalize(stored).Record()); diff != "" {
		t.Fatalf("stored record mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceSaveDoesNotRestoreEncodedMarkup(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)
	field := testsupport.SampleField(model.FieldTypeNameFull)

	raw := map[string]any{
		"first_name": "&lt;script&gt;alert(1)&lt;/script&gt;Jane",
		"last_name":  "&amp;lt;b&amp;gt;Doe",
	}
	if err := service.Save(ctx, "1", field, raw); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := service.DisplayName(ctx, "1", "speaker")
	if err != nil {
		t.Fatalf("display name: %v", err)
	}
	if got != "Jane Doe" {
		t.Fatalf("DisplayName() = %q, want %q", got, "Jane Doe")
	}
}

func TestServiceSaveSplitSuppressesComposite(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)

	if err := service.Save(ctx, "1", splitField(), map[string]string{"first_name": "Jane"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if diff := cmp.Diff([]string{"speaker_first_name"}, store.Keys("1")); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceSaveRepeatableSanitizesEachRecord(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)

	field := testsupport.SampleField(model.FieldTypeNameShort)
	field.Repeatable = true
	field.SplitValues = true

	raw := []any{
		map[string]any{"first_name": "<i>Ada</i>", "last_name": "Lovelace"},
		map[string]any{"first_name": "&lt;b&gt;Grace&lt;/b&gt;", "last_name": "<script>x</script>Hopper"},
	}
	if err := service.Save(ctx, "1", field, raw); err != nil {
		t.Fatalf("save: %v", err)
	}
	if diff := cmp.Diff([]string{"speaker"}, store.Keys("1")); diff != "" {
		t.Fatalf("repeatable field must not split (-want +got):\n%s", diff)
	}

	values, err := service.Values(ctx, "1", field)
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	want := []propername.Record{
		{FirstName: "Ada", LastName: "Lovelace"},
		{FirstName: "Grace", LastName: "Hopper"},
	}
	got := make([]propername.Record, 0, len(values))
	for _, value := range values {
		got = append(got, value.Record())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceSaveRequiresObject(t *testing.T) {
	service := newService(t, meta.NewMemoryStore())
	err := service.Save(testsupport.Context(), "", testsupport.SampleField(model.FieldTypeNameFull), "Jane")
	if !errors.Is(err, fieldtype.ErrNoObject) {
		t.Fatalf("expected ErrNoObject, got %v", err)
	}
}

func TestServiceEscaped(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)
	field := testsupport.SampleField(model.FieldTypeNameFull)

	if err := store.Set(ctx, "1", "speaker", map[string]string{"last_name": `O"Brien & <Co>`}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	escaped, err := service.Escaped(ctx, "1", field)
	if err != nil {
		t.Fatalf("escaped: %v", err)
	}
	parts, ok := escaped.(map[string]string)
	if !ok {
		t.Fatalf("expected part map, got %T", escaped)
	}
	if got := parts["last_name"]; got != "O&#34;Brien &amp; &lt;Co&gt;" {
		t.Fatalf("unexpected escaped value %q", got)
	}

	field.Repeatable = true
	if err := store.Set(ctx, "1", "speaker", []any{map[string]any{"first_name": "<A>"}}); err != nil {
		t.Fatalf("seed list: %v", err)
	}
	escaped, err = service.Escaped(ctx, "1", field)
	if err != nil {
		t.Fatalf("escaped list: %v", err)
	}
	list, ok := escaped.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected one escaped record, got %#v", escaped)
	}
	if got := list[0].(map[string]string)["first_name"]; got != "&lt;A&gt;" {
		t.Fatalf("unexpected escaped row value %q", got)
	}
}

func TestServiceRenderStoredValue(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)
	field := testsupport.SampleField(model.FieldTypeNameShort)

	if err := service.Save(ctx, "1", field, testsupport.SampleRecord().Map()); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := service.Render(ctx, field, "1", render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out.Bindings) != len(propername.Parts()) {
		t.Fatalf("expected %d bindings, got %d", len(propername.Parts()), len(out.Bindings))
	}
	if !strings.Contains(string(out.HTML), `value="Jane"`) {
		t.Fatalf("expected stored first name in markup:\n%s", out.HTML)
	}
	for _, binding := range out.HiddenBindings() {
		if binding.Value != "" {
			t.Fatalf("hidden part %s must be empty, got %q", binding.Part, binding.Value)
		}
	}
}

func TestServiceRenderSplitFieldReadsParts(t *testing.T) {
	ctx := meta.WithObject(testsupport.Context(), "9")
	store := meta.NewMemoryStore()
	service := newService(t, store)

	if err := service.Save(ctx, "", splitField(), map[string]string{"first_name": "Jane", "last_name": "Doe"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := service.Render(ctx, splitField(), "", render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out.HTML), `value="Doe"`) {
		t.Fatalf("expected split last name in markup:\n%s", out.HTML)
	}
}

func TestServiceRenderWithoutObject(t *testing.T) {
	service := newService(t, meta.NewMemoryStore())
	out, err := service.Render(testsupport.Context(), testsupport.SampleField(model.FieldTypeNameFull), "", render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, binding := range out.Bindings {
		if binding.Value != "" {
			t.Fatalf("expected empty form, got %s=%q", binding.Part, binding.Value)
		}
	}
}

func TestServiceRenderRepeatable(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)
	field := testsupport.SampleField(model.FieldTypeNameFull)
	field.Repeatable = true

	rows := []any{map[string]any{"first_name": "Ada"}, map[string]any{"first_name": "Grace"}}
	if err := store.Set(ctx, "1", "speaker", rows); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := service.Render(ctx, field, "1", render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := len(out.Bindings); got != 10 {
		t.Fatalf("expected 10 bindings, got %d", got)
	}
	if !strings.Contains(string(out.HTML), `name="speaker[1][first_name]"`) {
		t.Fatalf("expected indexed row names:\n%s", out.HTML)
	}
}

func TestServiceRenderUnknownType(t *testing.T) {
	service := newService(t, meta.NewMemoryStore())
	field := model.Field{ID: "speaker", Type: "name_unknown"}
	if _, err := service.Render(testsupport.Context(), field, "1", render.RenderOptions{}); err == nil {
		t.Fatalf("expected unknown type error")
	}
}

func TestDisplayName(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	service := newService(t, store)

	if err := store.Set(ctx, "1", "speaker", testsupport.SampleRecord().Map()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Set(ctx, "1", "legacy", "Jane Doe"); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}
	if err := store.Set(ctx, "1", "author_first_name", "Ada"); err != nil {
		t.Fatalf("seed split: %v", err)
	}
	if err := store.Set(ctx, "1", "author_last_name", "Lovelace"); err != nil {
		t.Fatalf("seed split: %v", err)
	}
	if err := store.Set(ctx, "1", "panel", []any{
		map[string]any{"first_name": "Ada"},
		map[string]any{},
		map[string]any{"first_name": "Grace", "last_name": "Hopper"},
	}); err != nil {
		t.Fatalf("seed panel: %v", err)
	}

	cases := []struct {
		name     string
		objectID string
		key      string
		want     string
	}{
		{name: "composite", objectID: "1", key: "speaker", want: "Dr. Jane Q. Doe PhD"},
		{name: "legacy string", objectID: "1", key: "legacy", want: "Jane Doe"},
		{name: "split parts", objectID: "1", key: "author", want: "Ada Lovelace"},
		{name: "collection", objectID: "1", key: "panel", want: "Ada, Grace Hopper"},
		{name: "missing", objectID: "1", key: "nobody", want: ""},
		{name: "current object", objectID: "", key: "speaker", want: "Dr. Jane Q. Doe PhD"},
	}

	current := meta.WithObject(ctx, "1")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.DisplayName(current, tc.objectID, tc.key)
			if err != nil {
				t.Fatalf("display name: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDisplayNameFiltersAndWriter(t *testing.T) {
	ctx := testsupport.Context()
	store := meta.NewMemoryStore()
	formatter := propername.NewFormatter(
		func(output string, _ propername.Value) string { return strings.ToUpper(output) },
		func(output string, _ propername.Value) string { return "[" + output + "]" },
	)
	service := newService(t, store, fieldtype.WithFormatter(formatter))

	if err := store.Set(ctx, "1", "speaker", map[string]string{"first_name": "Jane", "last_name": "Doe"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var buf bytes.Buffer
	if err := service.WriteDisplayName(ctx, &buf, "1", "speaker"); err != nil {
		t.Fatalf("write display name: %v", err)
	}
	if got := buf.String(); got != "[JANE DOE]" {
		t.Fatalf("expected filters applied in order, got %q", got)
	}
}

func TestDisplayNameWithoutObject(t *testing.T) {
	service := newService(t, meta.NewMemoryStore())
	if _, err := service.DisplayName(testsupport.Context(), "", "speaker"); !errors.Is(err, fieldtype.ErrNoObject) {
		t.Fatalf("expected ErrNoObject, got %v", err)
	}
}
