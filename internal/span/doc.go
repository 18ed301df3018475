// Package span provides immutable byte-range views over either an in-memory
// buffer or a window of a file on disk.
//
// A Span is validated when it is constructed and stays valid for its whole
// lifetime. Deriving a sub-span is cheap and performs no I/O for either
// backend; bytes are only read or copied by Materialize. Spans carry no
// mutable state, so one Span may be sliced and materialized from many
// goroutines at once. Every file materialization opens its own handle and
// closes it before returning.
package span
