// Package random holds the non-determinism used to shuffle rosters and draw identifiers, so that callers can
// pin it in tests and reproduce a given arrangement from its seed
package random

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

type Source interface {
	// Shuffle pseudo-randomizes the order of n elements through swap
	Shuffle(n int, swap func(i, j int))
	Uint64() uint64
}

// NewSource returns a source seeded from the runtime's entropy
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededSource returns a source that yields the same sequence for the same seed
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type pinnedSource struct {
	values *rand.Rand
}

// NewPinnedSource returns a source that never reorders anything. Uint64 is still a fixed sequence
func NewPinnedSource() Source {
	return &pinnedSource{values: rand.New(rand.NewPCG(0, 0))}
}

func (source *pinnedSource) Shuffle(n int, swap func(i, j int)) {}

func (source *pinnedSource) Uint64() uint64 {
	return source.values.Uint64()
}

type reader struct {
	source Source
}

// Reader exposes the source as an io.Reader, e.g. to feed identifier generators
func Reader(source Source) io.Reader {
	return &reader{source: source}
}

func (reader *reader) Read(buffer []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(buffer); i += len(word) {
		binary.LittleEndian.PutUint64(word[:], reader.source.Uint64())
		copy(buffer[i:], word[:])
	}
	return len(buffer), nil
}
