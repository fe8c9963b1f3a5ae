// Package promptman manages text prompt templates stored as individual YAML
// files. Templates are loaded lazily through a Store, cached by prompt id,
// and rendered by substituting {name} placeholders with parameter values in
// strict or lenient mode.
package promptman
