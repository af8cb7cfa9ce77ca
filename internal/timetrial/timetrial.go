// Package timetrial benchmarks the checksum update path over a synthetic
// payload.
package timetrial

import (
	"time"

	"github.com/dustin/go-humanize"

	"crcutil/internal/crc"
)

const (
	// BlockCount is the reference number of blocks checksummed per trial.
	BlockCount = 1000000
	// BlockLength is the reference length of the synthetic block in bytes.
	BlockLength = 1000000
)

// Result summarizes one trial.
type Result struct {
	Checksum       uint32
	Blocks         int
	BlockLength    int
	Elapsed        time.Duration
	BytesPerSecond float64
}

// Block generates the deterministic trial payload: byte i holds i & 0xFF.
func Block(length int) []byte {
	block := make([]byte, length)
	for i := range block {
		block[i] = byte(i & 0xFF)
	}
	return block
}

// Run checksums the same synthetic block blockCount times with a single
// accumulator and measures elapsed wall-clock time. The block is generated
// once, outside the timed region.
func Run(blockCount, blockLength int) Result {
	block := Block(blockLength)

	start := time.Now()
	acc := crc.New()
	for i := 0; i < blockCount; i++ {
		acc.Update(block)
	}
	elapsed := time.Since(start)

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = time.Millisecond.Seconds()
	}
	total := float64(blockCount) * float64(blockLength)

	return Result{
		Checksum:       acc.Sum32(),
		Blocks:         blockCount,
		BlockLength:    blockLength,
		Elapsed:        elapsed,
		BytesPerSecond: total / seconds,
	}
}

// HumanRate renders the throughput for log output, e.g. "1.2 GB/s".
func (r Result) HumanRate() string {
	return humanize.Bytes(uint64(r.BytesPerSecond)) + "/s"
}
