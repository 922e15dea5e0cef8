// Package convert turns micromodel declarations into form definitions. A
// Converter dispatches each declared field through an explicit registry keyed
// by field kind; ModelFields and ModelForm iterate a model in declaration
// order and assemble the converted fields, and Definition offers a
// declarative one-shot factory for model-backed forms. Conversions produce
// tagged results: a field whose kind has no registered conversion is reported
// as skipped, and callers choose whether to omit it, observe it, or fail the
// build. The converter implementation lives in internal/convert; this package
// exposes the public contracts.
package convert
