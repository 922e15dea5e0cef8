// Package micromodel defines the declarative data-model descriptors consumed
// by the form converter. A Model is an ordered set of typed Field
// declarations; declaration order is significant and flows through to
// generated forms. Models are constructed once, typically at package init or
// test setup, and are immutable afterwards.
package micromodel
