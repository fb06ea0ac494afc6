// Package blocks condenses byte counts into short magnitude-and-suffix
// strings following GNU df conventions, and provides the BlockSize
// value used to scale disk usage reports.
package blocks

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

// ErrNotRepresentable is returned when a byte count exceeds the largest
// magnitude either unit table can express.
var ErrNotRepresentable = errors.New("byte count is not representable")

// The first ten powers of 1024 and of 1000. Index i of each table
// corresponds to index i of the matching suffix table below.
var (
	iecBases = powers(1024)
	siBases  = powers(1000)
)

var (
	iecSuffixes = [9]string{"B", "K", "M", "G", "T", "P", "E", "Z", "Y"}
	// "kB" instead of "KB" because of GNU df.
	siSuffixes = [9]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
)

// powers returns the first ten powers of base. The top entries exceed
// 64 bits, hence the 128-bit table type.
func powers(base uint64) [10]uint128.Uint128 {
	var table [10]uint128.Uint128

	table[0] = uint128.From64(1)
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1].Mul64(base)
	}

	return table
}

// Format converts a byte count into a magnitude and a multi-byte unit
// suffix.
//
// Counts that are multiples of 1024 but not of 1000 render as exact
// binary multiples ("1K", "2K", "3M"). Everything else renders against
// powers of 1000 with at most one fractional digit, rounding the
// remainder up ("1.1kB", "999MB").
//
// Returns ErrNotRepresentable if the count is too large for the unit
// tables.
func Format(n uint128.Uint128) (string, error) {
	if n.Mod64(1024) == 0 && n.Mod64(1000) != 0 {
		return formatBinary(n)
	}

	return formatDecimal(n)
}

// formatBinary converts a multiple of 1024 into a string like "12K" or
// "34M". The divisibility precondition guarantees an exact quotient, so
// no fractional digit is ever produced.
func formatBinary(n uint128.Uint128) (string, error) {
	// The smallest power of 1024 larger than n selects the divisor and
	// suffix.
	for i := 0; i < len(iecBases)-1; i++ {
		if n.Cmp(iecBases[i+1]) < 0 {
			return n.Div(iecBases[i]).String() + iecSuffixes[i], nil
		}
	}

	return "", ErrNotRepresentable
}

// formatDecimal converts a byte count into a string like "12kB" or
// "3.4MB". The result has at most 5 chars for counts below ten
// yottabytes, for example: "1.1kB", "999kB", "1MB".
func formatDecimal(n uint128.Uint128) (string, error) {
	// Select the first bucket whose span can hold n.
	i := 0
	for siBases[i+1].Sub(siBases[i]).Cmp(n) < 0 {
		i++
		if i+1 == len(siBases) {
			return "", ErrNotRepresentable
		}
	}

	quot, rem := n.QuoRem(siBases[i])
	suffix := siSuffixes[i]

	if rem.IsZero() {
		return quot.String() + suffix, nil
	}

	// rem is non-zero, so i > 0 and the bucket holds at least ten
	// tenths.
	tenth := siBases[i].Div64(10)
	tenths := rem.Div(tenth).Lo

	switch {
	case rem.Mod(tenth).IsZero():
		return fmt.Sprintf("%s.%d%s", quot, tenths, suffix), nil
	case tenths+1 == 10 || quot.Cmp64(10) >= 0:
		// Rounding the fraction up carries into the integer part.
		return quot.Add64(1).String() + suffix, nil
	default:
		return fmt.Sprintf("%s.%d%s", quot, tenths+1, suffix), nil
	}
}
