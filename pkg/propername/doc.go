// Package propername defines the structured person-name value used by the
// proper name field types. A Record always carries the five canonical parts
// (salutation, first, middle, last and suffix); Value wraps either a Record or
// a legacy pre-formatted string, and Normalize is the single place raw stored
// data is converted into that shape. Format joins the parts into a display
// string, and Formatter lets callers post-process that string through display
// filters without changing how it is derived.
package propername
