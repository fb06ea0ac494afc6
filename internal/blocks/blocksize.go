package blocks

import (
	"lukechampine.com/uint128"

	"github.com/dennisklein/dfree/internal/size"
)

// ParseFunc converts a size-suffixed string such as "1K" or "2GB" into
// a byte count.
type ParseFunc func(string) (uint64, error)

// BlockSize is a fixed number of bytes used to scale the display of
// large byte counts. The count is always positive; the zero value is
// never produced by the constructors.
type BlockSize struct {
	bytes uint64
}

// FromString constructs a BlockSize from a user-supplied size argument.
// Values that fail to parse or resolve to zero are rejected with a
// parse error quoting the original input.
func FromString(s string, parse ParseFunc) (BlockSize, error) {
	bytes, err := parse(s)
	if err != nil {
		return BlockSize{}, err
	}

	if bytes == 0 {
		return BlockSize{}, &size.ParseError{Input: s}
	}

	return BlockSize{bytes: bytes}, nil
}

// Default returns the block size used when the user supplies none:
// 512 bytes in POSIX-strict mode, 1024 bytes otherwise. Callers at the
// process boundary decide strictness, typically from the presence of
// the POSIXLY_CORRECT environment variable.
func Default(posixStrict bool) BlockSize {
	if posixStrict {
		return BlockSize{bytes: 512}
	}

	return BlockSize{bytes: 1024}
}

// Bytes returns the wrapped byte count.
func (b BlockSize) Bytes() uint64 {
	return b.bytes
}

// Format renders the block size as a magnitude and unit suffix, e.g.
// "1K" for the 1024-byte default or "512B" in POSIX-strict mode.
func (b BlockSize) Format() (string, error) {
	return Format(uint128.From64(b.bytes))
}
