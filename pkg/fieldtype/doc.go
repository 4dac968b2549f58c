// Package fieldtype bundles the proper name field callbacks a host framework
// registers per field type (render, save transform, sanitize, escape) and
// runs the read, render, save and display flows against a meta.Store.
package fieldtype
