// Package size parses size-suffixed strings such as "1K", "2GB" or
// "512" into byte counts, following the block-size syntax of GNU df.
package size

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// unitLetters orders the multi-byte unit letters by magnitude; letter
// i stands for base^(i+1).
const unitLetters = "KMGTPEZY"

// ParseError reports a size string that could not be converted into a
// byte count. It carries the original input for diagnostics.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid size: %q", e.Input)
}

// Parse converts a size string into a byte count. The string is an
// optional decimal number (defaulting to 1) followed by an optional
// unit: a bare letter like "K" or an "iB" suffix select powers of
// 1024, a "B" suffix selects powers of 1000, and "b" means 512-byte
// blocks. Results that do not fit in 64 bits are rejected.
func Parse(s string) (uint64, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	digits, unit := s[:i], s[i:]
	if digits == "" && unit == "" {
		return 0, &ParseError{Input: s}
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, &ParseError{Input: s}
	}

	number := uint64(1)
	if digits != "" {
		var err error

		number, err = strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, &ParseError{Input: s}
		}
	}

	// The 128-bit product detects overflow before it happens; anything
	// above 64 bits is not a usable block size.
	if uint128.From64(number).Cmp(uint128.Max.Div(factor)) > 0 {
		return 0, &ParseError{Input: s}
	}

	total := factor.Mul64(number)
	if total.Hi != 0 {
		return 0, &ParseError{Input: s}
	}

	return total.Lo, nil
}

// unitFactor resolves a unit suffix to its byte multiplier.
func unitFactor(unit string) (uint128.Uint128, bool) {
	switch unit {
	case "", "B":
		return uint128.From64(1), true
	case "b":
		return uint128.From64(512), true
	}

	letter, rest := unit[0], unit[1:]
	if letter == 'k' {
		letter = 'K'
	}

	exponent := strings.IndexByte(unitLetters, letter)
	if exponent < 0 {
		return uint128.Uint128{}, false
	}

	var base uint64

	switch rest {
	case "", "iB":
		base = 1024
	case "B":
		base = 1000
	default:
		return uint128.Uint128{}, false
	}

	factor := uint128.From64(1)
	for range exponent + 1 {
		factor = factor.Mul64(base)
	}

	return factor, true
}
