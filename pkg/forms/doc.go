// Package forms defines the form-field object model produced by the
// converter: typed fields bundling a label, description, default value,
// validators, filters, and type-specific attributes such as datetime formats,
// choice sets, coercion functions, and nested sub-forms. Rendering the fields
// into any particular widget markup is left to consumers.
package forms
