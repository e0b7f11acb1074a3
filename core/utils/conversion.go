package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MicrosPerUnit is the multiplier between currency units and the
// micro-currency amounts the Ads API expects.
const MicrosPerUnit = 1_000_000

// ToMicros converts a decimal currency value (as written in the sheet,
// e.g. "10" or "10.50") into micro-currency units.
func ToMicros(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty currency value")
	}

	units, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid currency value %q: %w", value, err)
	}
	if units < 0 {
		return 0, fmt.Errorf("negative currency value %q", value)
	}

	// Round to the nearest micro to avoid float drift on values like 10.10.
	return int64(units*MicrosPerUnit + 0.5), nil
}

// FormatDate converts a sheet date (YYYY-MM-DD) into the YYYYMMDD form the
// Ads API expects for campaign start and end dates.
func FormatDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("empty date")
	}

	t, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}

	return t.Format("20060102"), nil
}

// ColumnLetter converts a 0-based column index into its A1-notation letter
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}

	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}
