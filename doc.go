// Package dectable builds boolean business-rule expressions from named
// parameters, comparison operators and logical connectives, and compiles them
// into decision-table rows.
//
// Typical use is as follows:
//
//  1. Build an expression, either directly from the Condition/Composite types
//     or with the fluent Builder
//  2. Validate the expression (optional, but recommended before trusting any
//     rendered output)
//  3. Hand the expression to a renderer backend (feel, java, cel) for an
//     inline boolean string, or to the dmn package for a full decision-table
//     document
//
// Expressions are immutable once built. Copy produces a structurally equal,
// independent tree; no operation in this module or in any backend mutates a
// tree during traversal, so a tree may be shared read-only across goroutines.
//
// The compiler and renderers never fail: malformed input (an unknown operator
// symbol, a between value without two parts) surfaces as-is in the rendered
// text. Validate is the intended gate; callers decide whether to reject an
// invalid expression before rendering.
package dectable
