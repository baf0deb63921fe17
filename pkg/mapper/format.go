package mapper

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var byteUnits = []string{"kB", "MB", "GB", "TB"}

// FormatBytes renders n in decimal units: "512 B", "40.00 kB".
func FormatBytes(n uint64) string {
	if n < 1000 {
		return printer.Sprintf("%d B", n)
	}
	v := float64(n) / 1000
	unit := 0
	for v >= 1000 && unit < len(byteUnits)-1 {
		v /= 1000
		unit++
	}
	return printer.Sprintf("%.2f %s", v, byteUnits[unit])
}

// FormatCount renders n with thousands separators: "1,000".
func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}
