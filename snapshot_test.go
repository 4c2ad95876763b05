package bitvec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	b, err := FromBitString[Relaxed]("1010010001")
	require.NoError(t, err)
	defer b.Close()

	rb := b.Snapshot()
	assert.Equal(t, b.InUseCount(), rb.GetCardinality())
	for _, idx := range []uint64{0, 2, 5, 9} {
		assert.True(t, rb.Contains(idx))
	}
	assert.False(t, rb.Contains(1))
}

func TestSnapshot_Empty(t *testing.T) {
	b, err := New[Atomic](256)
	require.NoError(t, err)
	defer b.Close()

	assert.Zero(t, b.Snapshot().GetCardinality())
}

func TestWriteTo_RoundTrip(t *testing.T) {
	b, err := New[Atomic](130)
	require.NoError(t, err)
	defer b.Close()

	for _, i := range []uint64{0, 63, 64, 129} {
		b.TryToSet(i)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	// 8-byte header plus three words.
	assert.Equal(t, int64(32), n)

	// The word layout is strategy-independent.
	got, err := NewFromReader[Relaxed](&buf)
	require.NoError(t, err)
	defer got.Close()

	assert.Equal(t, b.BitCount(), got.BitCount())
	assert.Equal(t, b.String(), got.String())
}

func TestNewFromReader_Truncated(t *testing.T) {
	b, err := New[Relaxed](128)
	require.NoError(t, err)
	defer b.Close()

	var buf bytes.Buffer
	_, err = b.WriteTo(&buf)
	require.NoError(t, err)

	truncated := bytes.NewReader(buf.Bytes()[:12])
	_, err = NewFromReader[Relaxed](truncated)
	require.Error(t, err)
}
