package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// optsDigestLen is the number of hex characters kept from an options digest.
const optsDigestLen = 16

// benchKey formats a row key as "<keyType>:n=<n>:<digest>". The size stays
// in clear text, so every row for one size matches "bench:n=12:*".
func benchKey(keyType string, n int, opts BenchKeyOpts) string {
	return fmt.Sprintf("%s:n=%d:%s", keyType, n, optsDigest(opts))
}

// optsDigest hashes the fields of opts in declaration order, each terminated
// by a zero byte so adjacent fields cannot run together.
func optsDigest(opts BenchKeyOpts) string {
	h := sha256.New()
	for _, field := range []string{opts.Reference, strconv.Itoa(opts.Workers), opts.Version} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:optsDigestLen]
}

// Hash returns the full 64-character hex SHA-256 of data.
// FileCache names its entries by the hash of the key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
