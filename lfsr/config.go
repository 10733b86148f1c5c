package lfsr

import (
	"fmt"
	"math/big"
	"strings"
)

// ValidateWidth checks the register width against MinWidth.
func ValidateWidth(width int) error {
	if width < MinWidth {
		return ConfigError{
			Reason: fmt.Sprintf("width must be >= %d, was given %d", MinWidth, width),
		}
	}
	return nil
}

// ParseHexValue parses a 0x-prefixed hexadecimal number, e.g. 0x4321.
func ParseHexValue(s string) (*big.Int, error) {
	t := strings.ToLower(s)
	if !strings.HasPrefix(t, "0x") {
		return nil, ConfigError{
			Reason: fmt.Sprintf("can't parse %q, specify as hex number, eg. 0x4321", s),
		}
	}
	value, ok := new(big.Int).SetString(strings.TrimPrefix(t, "0x"), 16)
	if !ok || value.Sign() < 0 {
		return nil, ConfigError{
			Reason: fmt.Sprintf("can't parse %q, specify as hex number, eg. 0x4321", s),
		}
	}
	return value, nil
}

// CheckValueWidth checks that value fits in width bits.
func CheckValueWidth(value *big.Int, width int) error {
	if value.BitLen() > width {
		return ConfigError{
			Reason: fmt.Sprintf("value is too large (%d bits), must fit in only %d bits", value.BitLen(), width),
		}
	}
	return nil
}
