// Package sanitize holds the text transforms applied to proper name parts on
// save (Text) and on display (Attr), plus the adapters that map those
// transforms over every record of a repeatable field.
package sanitize
