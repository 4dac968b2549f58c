package propername

// Part identifies one sub-field of a proper name.
type Part string

// Canonical part keys. These double as the map keys used when a record is
// stored as a composite value and as the suffixes of derived field ids.
const (
	PartSalutation Part = "salutation"
	PartFirstName  Part = "first_name"
	PartMiddleName Part = "middle_name"
	PartLastName   Part = "last_name"
	PartSuffix     Part = "name_suffix"
)

var canonicalParts = [...]Part{
	PartSalutation,
	PartFirstName,
	PartMiddleName,
	PartLastName,
	PartSuffix,
}

// Parts returns the canonical parts in display order.
func Parts() []Part {
	out := make([]Part, len(canonicalParts))
	copy(out, canonicalParts[:])
	return out
}

// Valid reports whether p is one of the canonical parts.
func (p Part) Valid() bool {
	for _, candidate := range canonicalParts {
		if candidate == p {
			return true
		}
	}
	return false
}

func (p Part) String() string {
	return string(p)
}

// Record is a fully populated proper name. The zero value is an empty name.
type Record struct {
	Salutation string `json:"salutation" yaml:"salutation"`
	FirstName  string `json:"first_name" yaml:"first_name"`
	MiddleName string `json:"middle_name" yaml:"middle_name"`
	LastName   string `json:"last_name" yaml:"last_name"`
	Suffix     string `json:"name_suffix" yaml:"name_suffix"`
}

// Get returns the value stored for part. Unknown parts yield "".
func (r Record) Get(part Part) string {
	switch part {
	case PartSalutation:
		return r.Salutation
	case PartFirstName:
		return r.FirstName
	case PartMiddleName:
		return r.MiddleName
	case PartLastName:
		return r.LastName
	case PartSuffix:
		return r.Suffix
	default:
		return ""
	}
}

// Set assigns value to part. Unknown parts are ignored.
func (r *Record) Set(part Part, value string) {
	switch part {
	case PartSalutation:
		r.Salutation = value
	case PartFirstName:
		r.FirstName = value
	case PartMiddleName:
		r.MiddleName = value
	case PartLastName:
		r.LastName = value
	case PartSuffix:
		r.Suffix = value
	}
}

// Map returns the record as a composite value keyed by part. All five keys
// are always present.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(canonicalParts))
	for _, part := range canonicalParts {
		out[string(part)] = r.Get(part)
	}
	return out
}

// Apply returns a copy of the record with fn applied to every part.
func (r Record) Apply(fn func(string) string) Record {
	if fn == nil {
		return r
	}
	var out Record
	for _, part := range canonicalParts {
		out.Set(part, fn(r.Get(part)))
	}
	return out
}

// IsZero reports whether every part is empty.
func (r Record) IsZero() bool {
	return r == Record{}
}
