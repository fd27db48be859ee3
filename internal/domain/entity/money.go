package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts a decimal price string ("19.99") into integer minor
// units (1999). The input is multiplied by 100 and rounded to the nearest
// integer; anything that does not yield a positive integer is rejected.
func ParsePrice(s string) (int64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}

	cents := int64(math.Round(value * 100))
	if cents <= 0 {
		return 0, fmt.Errorf("price must be positive, got %q", s)
	}

	return cents, nil
}

// FormatPrice renders minor units as a two-decimal major-unit string
// ("1999" -> "19.99"). This is the only place integer prices are divided.
func FormatPrice(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
