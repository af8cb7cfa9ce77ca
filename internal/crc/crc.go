// Package crc implements the running CRC-32 accumulator used by every
// checksum operation.
package crc

import "hash/crc32"

// The IEEE (ISO-HDLC) polynomial in reflected form, the same table-driven
// CRC-32 used by zip and gzip. Outputs must verify against independent
// implementations, so no other variant is acceptable here.
var table = crc32.MakeTable(crc32.IEEE)

// Accumulator holds the running CRC-32 state of one checksum operation.
// The zero value is ready to use and corresponds to zero bytes consumed.
type Accumulator struct {
	crc uint32
}

// New creates a fresh accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Update folds an ordered byte sequence into the running state. Updating
// with an empty slice is a no-op. Splitting a stream into chunks and
// feeding them in order yields the same state as one whole-stream update.
func (a *Accumulator) Update(p []byte) {
	a.crc = crc32.Update(a.crc, table, p)
}

// Sum32 returns the current 32-bit checksum value without mutating the
// state, so it may be read after every chunk of an incremental run.
func (a *Accumulator) Sum32() uint32 {
	return a.crc
}

// Checksum returns the CRC-32 of p in a single shot.
func Checksum(p []byte) uint32 {
	return crc32.Checksum(p, table)
}
