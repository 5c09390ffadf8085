// Package fsutil provides small file-system helpers: existence checks,
// directory creation, atomic writes, and JSON/YAML file round-trips.
//
// Write helpers go through [WriteFileAtomic] (temp file plus rename), so
// a crash mid-write never leaves a truncated file behind.
//
//	var cfg Config
//	if err := fsutil.ReadYAML("config.yaml", &cfg); err != nil { ... }
//
// Decoding failures are joined with [ErrDecode] so callers can
// distinguish malformed content from I/O errors via errors.Is.
package fsutil
