package crypto

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Hash256 streams every item into one unkeyed BLAKE2b-256 digest.
func Hash256(data ...[]byte) []byte {
	d, _ := blake2b.New256(nil)
	return sum(d, data)
}

// Hash returns a BLAKE2b digest of the given size (1..64 bytes).
func Hash(size int, data ...[]byte) []byte {
	d, err := blake2b.New(size, nil)
	if err != nil {
		panic(err)
	}
	return sum(d, data)
}

func sum(d hash.Hash, data [][]byte) []byte {
	for _, item := range data {
		d.Write(item)
	}
	return d.Sum(nil)
}
