// Package printer renders a parsed record as a single human-readable line.
// Attribute values are written as HCL literals, so text is quoted and an
// absent value prints as null.
package printer
