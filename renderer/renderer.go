// Package renderer turns domain snapshots into markdown reports for the
// terminal. Rendering never touches storage; every function takes a value
// already computed by the finance package and returns a document string.
package renderer
