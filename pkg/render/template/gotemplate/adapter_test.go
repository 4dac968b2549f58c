package gotemplate_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-propername/pkg/render/template/gotemplate"
	"github.com/goliatone/go-propername/pkg/testsupport"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": {Data: []byte("{{ name|shout }}")},
		"escaped.tpl":    {Data: []byte("<b>{{ name }}</b>{{ raw|safe }}")},
		"trimmed.tpl":    {Data: []byte("[{{ name|trim }}]")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without fs")
	}
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada" || written != result {
		t.Fatalf("unexpected output: result=%q written=%q", result, written)
	}
}

func TestEngineAutoescapesValues(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("escaped", map[string]any{
		"name": `<script>O'Brien</script>`,
		"raw":  `<i>ok</i>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected escaped value, got %q", got)
	}
	if !strings.Contains(got, "<i>ok</i>") {
		t.Fatalf("expected safe value untouched, got %q", got)
	}
}

func TestEngineGlobals(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobals(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	shout := func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	}
	if err := engine.RegisterFilter("shout", shout); err != nil && !errors.Is(err, gotemplate.ErrFilterExists) {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", shout); !errors.Is(err, gotemplate.ErrFilterExists) {
		t.Fatalf("expected ErrFilterExists, got %v", err)
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineRenderStringAndTrim(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ greeting }}, {{ name }}", map[string]any{"greeting": "Hi", "name": "Grace"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hi, Grace" {
		t.Fatalf("unexpected output %q", got)
	}

	got, err = engine.RenderTemplate("trimmed", map[string]any{"name": "  Ada  "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "[Ada]" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineStructDataUsesJSONTags(t *testing.T) {
	engine := newEngine(t)
	type person struct {
		Name string `json:"name"`
	}

	got, err := engine.RenderTemplate("hello", person{Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Grace" {
		t.Fatalf("unexpected output %q", got)
	}
}
