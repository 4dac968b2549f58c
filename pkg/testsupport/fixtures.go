package testsupport

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"testing"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
)

// SampleRecord returns a fully populated name used across package tests.
func SampleRecord() propername.Record {
	return propername.Record{
		Salutation: "Dr.",
		FirstName:  "Jane",
		MiddleName: "Q.",
		LastName:   "Doe",
		Suffix:     "PhD",
	}
}

// SampleField returns a non-repeatable field of the given type keyed
// "speaker".
func SampleField(fieldType model.FieldType) model.Field {
	return model.Field{
		ID:    "speaker",
		Type:  fieldType,
		Label: "Speaker",
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

var (
	inputTagPattern  = regexp.MustCompile(`<input[^>]*>`)
	nameAttrPattern  = regexp.MustCompile(`\sname="([^"]*)"`)
	typeAttrPattern  = regexp.MustCompile(`\stype="([^"]*)"`)
	valueAttrPattern = regexp.MustCompile(`\svalue="([^"]*)"`)
)

// Input is a parsed <input> element.
type Input struct {
	Type  string
	Name  string
	Value string
}

// Inputs extracts the <input> elements from rendered markup in document
// order. Attribute values are returned still escaped.
func Inputs(markup []byte) []Input {
	tags := inputTagPattern.FindAll(markup, -1)
	out := make([]Input, 0, len(tags))
	for _, tag := range tags {
		out = append(out, Input{
			Type:  firstGroup(typeAttrPattern, tag),
			Name:  firstGroup(nameAttrPattern, tag),
			Value: firstGroup(valueAttrPattern, tag),
		})
	}
	return out
}

func firstGroup(pattern *regexp.Regexp, src []byte) string {
	match := pattern.FindSubmatch(src)
	if len(match) < 2 {
		return ""
	}
	return string(match[1])
}
