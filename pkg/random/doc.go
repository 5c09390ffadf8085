// Package random provides thin crypto/rand wrappers for tokens, hex
// strings, bounded integers, and UUIDs.
//
// All functions draw from crypto/rand; there is no seeding and no
// math/rand fallback. [String] uses an alphabet without lookalike
// characters, so its output is safe to read back over the phone.
package random
