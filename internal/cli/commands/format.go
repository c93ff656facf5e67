package commands

import (
	"fmt"
	"strconv"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func columnError(name string, err error) error {
	return fmt.Errorf("column %q: %w", name, err)
}
