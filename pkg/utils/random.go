package utils

import "hash/fnv"

// StringToSeed hashes a string into a stable int64 seed. The same name
// always produces the same seed, which keeps named expeditions replayable.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
