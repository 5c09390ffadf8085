// Package sliceutil provides generic slice helpers: chunking, dedup,
// key-based sorting and grouping, and unbiased shuffling.
//
// All helpers return new slices and leave their input untouched, except
// [Chunk], whose sub-slices alias the input's backing array.
package sliceutil
