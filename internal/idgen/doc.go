// Package idgen produces the opaque random tokens used to name temporary
// files. It is a thin wrapper so tests can stub it.
package idgen
