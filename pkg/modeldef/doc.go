// Package modeldef defines the contracts for importing micromodel
// declarations from external definition documents: sources identify where a
// document lives (file, fs.FS, URL), documents wrap the raw payload, and
// adapters normalize a supported format into micromodels. Concrete loaders
// and format adapters live under internal/ and are wired through the root
// package constructors.
package modeldef
