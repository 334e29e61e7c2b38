package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a size the way the file server does in its
// size_formatted fields: one decimal and a binary unit, e.g. "1.5 KB".
func FormatFileSize(size int64) string {
	if size < 0 {
		size = 0
	}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return strconv.FormatFloat(value, 'f', 1, 64) + " " + sizeUnits[unit]
}
