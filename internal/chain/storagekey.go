package chain

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Storage keys are built by hand instead of from runtime metadata: the
// handful of storage items this client reads is fixed, and their hashers
// are known (twox128 prefixes, blake2b_128concat map keys).

// twox128 is two seeded xxhash64 runs concatenated little-endian.
func twox128(data []byte) []byte {
	out := make([]byte, 16)
	d := xxhash.New()
	for seed := uint64(0); seed < 2; seed++ {
		d.ResetWithSeed(seed)
		_, _ = d.Write(data)
		binary.LittleEndian.PutUint64(out[seed*8:], d.Sum64())
	}
	return out
}

// blake2b128Concat hashes the encoded map key and appends the key itself,
// the transparent hasher used by the pallets this client queries.
func blake2b128Concat(encodedKey []byte) []byte {
	h, _ := blake2b.New(16, nil)
	h.Write(encodedKey)
	return append(h.Sum(nil), encodedKey...)
}

// storageKey assembles twox128(pallet) ++ twox128(item) ++ hashedKeys.
func storageKey(pallet, item string, hashedKeys ...[]byte) []byte {
	key := append(twox128([]byte(pallet)), twox128([]byte(item))...)
	for _, k := range hashedKeys {
		key = append(key, k...)
	}
	return key
}

func encodeU32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}
