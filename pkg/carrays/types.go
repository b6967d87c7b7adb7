package carrays

// Per-type names matching the C element types.
type (
	DoubleArray   = Array[float64]
	FloatArray    = Array[float32]
	IntArray      = Array[int32]
	UnsignedArray = Array[uint32]
)

// NewDoubleArray allocates length zeroed doubles.
func NewDoubleArray(length int) (*DoubleArray, error) { return New[float64](length) }

// NewFloatArray allocates length zeroed floats.
func NewFloatArray(length int) (*FloatArray, error) { return New[float32](length) }

// NewIntArray allocates length zeroed 32-bit signed integers.
func NewIntArray(length int) (*IntArray, error) { return New[int32](length) }

// NewUnsignedArray allocates length zeroed 32-bit unsigned integers.
func NewUnsignedArray(length int) (*UnsignedArray, error) { return New[uint32](length) }
