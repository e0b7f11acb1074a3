// Package utils provides small scalar conversion helpers shared across the
// upload flows: currency-to-micros conversion, sheet date formatting, and
// A1-notation column letters.
package utils
