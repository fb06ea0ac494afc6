package blocks

// SizeFormat selects the strategy for condensing the display of a
// large number of bytes.
type SizeFormat interface {
	sizeFormat()
}

// StaticBlockSize displays counts as multiples of a fixed BlockSize.
// It is the default strategy.
type StaticBlockSize struct{}

// HumanReadable displays counts with a dynamic divisor: as the number
// of bytes grows, the divisor grows with it (1, 1000, 1000000, … for
// Decimal; powers of 1024 for Binary).
type HumanReadable int

const (
	// Decimal scales by the largest fitting power of 1000.
	Decimal HumanReadable = iota
	// Binary scales by the largest fitting power of 1024.
	Binary
)

func (StaticBlockSize) sizeFormat() {}
func (HumanReadable) sizeFormat() {}

// DefaultSizeFormat returns the strategy used when the caller selects
// none.
func DefaultSizeFormat() SizeFormat {
	return StaticBlockSize{}
}
