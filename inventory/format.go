package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// ConvertSize renders a byte count with the largest 1024-based unit,
// rounded to two decimals with trailing zeros dropped. Zero is special
// cased so we never take log(0).
func ConvertSize(bytes uint64) string {
	if bytes == 0 {
		return "0 B"
	}
	unit := 0
	value := float64(bytes)
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	rounded := strconv.FormatFloat(value, 'f', 2, 64)
	rounded = strings.TrimRight(rounded, "0")
	rounded = strings.TrimSuffix(rounded, ".")
	return fmt.Sprintf("%s %s", rounded, sizeUnits[unit])
}
