package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownVectors(t *testing.T) {
	vectors := []struct {
		in   string
		want uint32
	}{
		{"", 0x00000000},
		{"a", 0xe8b7be43},
		{"abc", 0x352441c2},
		{"cyclic redundancy check", 0x7ea817ba},
		{"abcdefghijklmnopqrstuvwxyz", 0x4c2750bd},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 0x1fc2e6d2},
		{"12345678901234567890123456789012345678901234567890123456789012345678901234567890", 0x7ca94a72},
	}

	for _, v := range vectors {
		require.Equal(t, v.want, Checksum([]byte(v.in)), "Checksum(%q)", v.in)
	}
}

func TestUpdateMatchesChecksum(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	a := New()
	a.Update(data)
	require.Equal(t, Checksum(data), a.Sum32())
}

func TestUpdateAssociativeAcrossChunks(t *testing.T) {
	data := []byte("0123456789abcdefghijklmnopqrstuvwxyz")

	whole := New()
	whole.Update(data)

	for _, split := range []int{1, 2, 7, len(data) - 1} {
		parts := New()
		parts.Update(data[:split])
		parts.Update(data[split:])
		require.Equal(t, whole.Sum32(), parts.Sum32(), "split at %d", split)
	}
}

func TestUpdateEmptyIsNoOp(t *testing.T) {
	a := New()
	a.Update([]byte("abc"))
	before := a.Sum32()

	a.Update(nil)
	a.Update([]byte{})
	require.Equal(t, before, a.Sum32())
}

func TestSum32Idempotent(t *testing.T) {
	a := New()
	a.Update([]byte("idempotent"))
	require.Equal(t, a.Sum32(), a.Sum32())
}

func TestZeroValueAccumulator(t *testing.T) {
	var a Accumulator
	require.Equal(t, uint32(0), a.Sum32())
}
