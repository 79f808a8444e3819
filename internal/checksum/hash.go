package checksum

import (
	"encoding/binary"
	"hash"
	"iter"

	"github.com/minio/highwayhash"
)

// Digests are only ever compared within a single process run, so the
// key is fixed. This is the only hash function used.
var key = [32]byte{
	0x76, 0x65, 0x63, 0x2d, 0x64, 0x69, 0x67, 0x65,
	0x73, 0x74, 0x2d, 0x6b, 0x65, 0x79, 0x2d, 0x30,
	0x76, 0x65, 0x63, 0x2d, 0x64, 0x69, 0x67, 0x65,
	0x73, 0x74, 0x2d, 0x6b, 0x65, 0x79, 0x2d, 0x31,
}

// New64 returns a keyed 64 bit HighwayHash.
func New64() hash.Hash64 {
	h, err := highwayhash.New64(key[:])
	if err != nil {
		panic(err)
	}
	return h
}

// Uint64s returns the order-sensitive digest of vals. Two element
// streams digest equal only when they hold the same values in the same
// order.
func Uint64s(vals iter.Seq[uint64]) uint64 {
	h := New64()
	var b [8]byte
	for v := range vals {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}
	return h.Sum64()
}
