// Package hash computes layout fingerprints.
//
// A fingerprint identifies the set of physical displays a layout was saved
// for. It is order independent and length-prefixes every component, so
// ("ab", "c") and ("a", "bc") never hash the same.
package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
)

// Fingerprint returns the hex SHA-256 of the sorted identity keys.
func Fingerprint(keys []string) string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	h := sha256.New()
	var lenBuf [8]byte

	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(sorted)))
	h.Write(lenBuf[:])

	for _, key := range sorted {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(key)))
		h.Write(lenBuf[:])
		h.Write([]byte(key))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Short returns the first 12 characters of a fingerprint for display.
func Short(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
