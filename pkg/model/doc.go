// Package model defines the field configuration consumed by the proper name
// renderers, save transforms and display helpers. A Field carries the host
// flags that change behaviour (Repeatable, SplitValues), optional label text
// overrides keyed by translation key, and free-form UI hints such as
// `cssClass` that renderers may apply to the wrapping markup.
package model
