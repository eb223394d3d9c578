// Package spec provides the compiled AST for this dialect's JSONPath
// queries and the evaluator logic attached to each node. It will mainly
// be of interest to callers implementing their own parser front end for
// the same dialect.
//
// This package intentionally mirrors the shape of a [RFC 9535] JSONPath
// implementation's spec package (a Step/Selector interface, one type per
// step kind, each with its own Apply method) while implementing a
// different, simpler grammar: no named functions, a dedicated sort and
// field-extractor step, and regex literals in filter comparisons.
//
// [RFC 9535]: https://www.rfc-editor.org/rfc/rfc9535.html
package spec
