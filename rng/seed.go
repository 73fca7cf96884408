package rng

import (
	"encoding/binary"
	"math/bits"
	"os"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

var (
	epoch = time.Now()
	calls atomic.Uint64

	// keeps the block in DeriveSeed on the heap
	sink atomic.Pointer[[16]byte]
)

// DeriveSeed returns a best-effort, non-deterministic machine word built from
// cheap local signals: the address of a fresh allocation, the wall and
// monotonic clocks, the process id and a call counter. It never blocks, never
// fails and makes no external calls. It is not a cryptographic seed.
func DeriveSeed() uint {
	block := new([16]byte)
	sink.Store(block)

	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(uintptr(unsafe.Pointer(block))))
	binary.LittleEndian.PutUint64(buf[8:], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(buf[16:], uint64(time.Since(epoch)))
	binary.LittleEndian.PutUint64(buf[24:], uint64(os.Getpid()))
	binary.LittleEndian.PutUint64(buf[32:], calls.Add(1))

	x := mix64(xxhash.Sum64(buf[:]))
	if bits.UintSize == 32 {
		x ^= x >> 32
	}
	return uint(x)
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
