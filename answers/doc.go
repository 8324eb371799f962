// Package answers loads externally supplied answer rows from JSON or XLSX
// files. Rows are validated on load and are read-only afterwards: the layout
// engine consumes them but never changes them.
package answers
