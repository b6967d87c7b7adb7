package carrays_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underworld/carrays-go/pkg/carrays"
)

func TestRawViewAliasesStorage(t *testing.T) {
	arr, err := carrays.NewDoubleArray(10)
	require.NoError(t, err)
	defer arr.Close()

	require.NoError(t, arr.Set(0, 123.456))

	view, err := arr.Raw()
	require.NoError(t, err)
	require.NotNil(t, view.Pointer())
	assert.False(t, view.IsNil())
	assert.Equal(t, 10, view.Len())
	assert.Equal(t, uintptr(80), view.Size())
	assert.Equal(t, carrays.NativeBackend(), view.Native())

	// the pointer reads like a native double*
	assert.Equal(t, 123.456, *(*float64)(view.Pointer()))

	s := view.Slice()
	require.Len(t, s, 10)
	assert.Equal(t, 10, cap(s))
	assert.Equal(t, view.Pointer(), unsafe.Pointer(&s[0]))

	s[9] = -1
	got, err := arr.Get(9)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got)
}

func TestRawViewUnsignedBytes(t *testing.T) {
	arr, err := carrays.NewUnsignedArray(2)
	require.NoError(t, err)
	defer arr.Close()

	require.NoError(t, arr.Set(1, 0xFFFFFFFF))

	view, err := arr.Raw()
	require.NoError(t, err)

	raw := unsafe.Slice((*byte)(view.Pointer()), view.Size())
	require.Len(t, raw, 8)
	assert.Equal(t, []byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, raw)
}

func TestZeroRawView(t *testing.T) {
	var view carrays.RawView[int32]
	assert.Nil(t, view.Pointer())
	assert.True(t, view.IsNil())
	assert.Nil(t, view.Slice())
	assert.False(t, view.Native())
}

func TestFromPointerBorrows(t *testing.T) {
	owner, err := carrays.NewIntArray(4)
	require.NoError(t, err)
	defer owner.Close()

	view, err := owner.Raw()
	require.NoError(t, err)

	borrowed, err := carrays.FromPointer[int32](view.Pointer(), view.Len())
	require.NoError(t, err)
	assert.False(t, borrowed.Owned())
	assert.Equal(t, 4, borrowed.Len())

	require.NoError(t, borrowed.Set(3, 77))
	got, err := owner.Get(3)
	require.NoError(t, err)
	assert.Equal(t, int32(77), got)

	_, err = borrowed.Get(4)
	require.ErrorIs(t, err, carrays.ErrIndexOutOfRange)

	bview, err := borrowed.Raw()
	require.NoError(t, err)
	assert.False(t, bview.Native())

	// closing the borrower leaves the owner intact
	require.NoError(t, borrowed.Close())
	_, err = borrowed.Get(0)
	require.ErrorIs(t, err, carrays.ErrClosed)

	require.NoError(t, owner.Set(0, 5))
	got, err = owner.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int32(5), got)
}

func TestFromPointerGoMemory(t *testing.T) {
	backing := []float32{1, 2, 3}

	arr, err := carrays.FromPointer[float32](unsafe.Pointer(&backing[0]), len(backing))
	require.NoError(t, err)
	defer arr.Close()

	got, err := arr.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, backing, got)
}

func TestFromPointerInvalid(t *testing.T) {
	_, err := carrays.FromPointer[float64](nil, 3)
	require.ErrorIs(t, err, carrays.ErrInvalidLength)

	x := 1.0
	_, err = carrays.FromPointer[float64](unsafe.Pointer(&x), -1)
	require.ErrorIs(t, err, carrays.ErrInvalidLength)

	empty, err := carrays.FromPointer[float64](nil, 0)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	view, err := empty.Raw()
	require.NoError(t, err)
	assert.Nil(t, view.Pointer())
}
