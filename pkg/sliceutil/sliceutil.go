package sliceutil

import (
	"cmp"
	"crypto/rand"
	"math/big"
	"slices"
)

// Chunk splits s into consecutive sub-slices of at most size elements.
// The last chunk may be shorter. A non-positive size or an empty slice
// yields nil. Chunks share s's backing array.
func Chunk[S ~[]E, E any](s S, size int) []S {
	if size <= 0 || len(s) == 0 {
		return nil
	}

	out := make([]S, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		out = append(out, s[i:end])
	}
	return out
}

// Uniq returns a new slice with the first occurrence of each element,
// preserving order.
func Uniq[S ~[]E, E comparable](s S) S {
	if s == nil {
		return nil
	}

	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SortBy returns a copy of s sorted ascending by the key fn extracts.
// The sort is stable, so elements with equal keys keep their order.
func SortBy[S ~[]E, E any, K cmp.Ordered](s S, fn func(E) K) S {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b E) int {
		return cmp.Compare(fn(a), fn(b))
	})
	return out
}

// GroupBy buckets elements by the key fn extracts, preserving order
// within each bucket.
func GroupBy[S ~[]E, E any, K comparable](s S, fn func(E) K) map[K]S {
	out := make(map[K]S)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Shuffle returns a copy of s in cryptographically random order
// (Fisher-Yates over crypto/rand).
func Shuffle[S ~[]E, E any](s S) S {
	out := slices.Clone(s)
	for i := len(out) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			// Entropy exhaustion is not recoverable here; keep the
			// remaining prefix in its current order.
			return out
		}
		j := int(n.Int64())
		out[i], out[j] = out[j], out[i]
	}
	return out
}
