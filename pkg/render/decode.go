package render

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
)

// DecodeSubmission rebuilds the raw value posted for field from form values
// named by model.Field.InputName. Non-repeatable fields yield a part-keyed
// map holding the parts that were posted. Repeatable fields yield a []any of
// part maps in row order; rows whose parts are all empty are dropped.
func DecodeSubmission(field model.Field, form url.Values) any {
	if !field.Repeatable {
		out := make(map[string]any, len(propername.Parts()))
		for _, part := range propername.Parts() {
			if values, ok := form[field.InputName(part, -1)]; ok && len(values) > 0 {
				out[string(part)] = values[0]
			}
		}
		return out
	}

	prefix := strings.TrimSpace(field.ID) + "["
	rows := make(map[int]map[string]any)
	for name, values := range form {
		if len(values) == 0 || !strings.HasPrefix(name, prefix) {
			continue
		}
		indexText, partText, ok := strings.Cut(name[len(prefix):], "][")
		if !ok || !strings.HasSuffix(partText, "]") {
			continue
		}
		part := propername.Part(strings.TrimSuffix(partText, "]"))
		if !part.Valid() {
			continue
		}
		index, err := strconv.Atoi(indexText)
		if err != nil || index < 0 {
			continue
		}
		if rows[index] == nil {
			rows[index] = make(map[string]any, len(propername.Parts()))
		}
		rows[index][string(part)] = values[0]
	}

	indices := make([]int, 0, len(rows))
	for index, row := range rows {
		if blankRow(row) {
			continue
		}
		indices = append(indices, index)
	}
	sort.Ints(indices)

	out := make([]any, 0, len(indices))
	for _, index := range indices {
		out = append(out, rows[index])
	}
	return out
}

func blankRow(row map[string]any) bool {
	for _, value := range row {
		if text, _ := value.(string); strings.TrimSpace(text) != "" {
			return false
		}
	}
	return true
}
