// Package timeutil provides calendar boundary helpers (start of day,
// week, month) and human-readable time rendering.
//
// Boundary helpers respect the input's location, so "start of day" means
// midnight in that zone, not UTC.
package timeutil
