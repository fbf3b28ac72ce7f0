package core

import "github.com/dustin/go-humanize"

// FormatSize renders a byte count in IEC units, e.g. "1.5 GiB".
// Negative counts render as zero.
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// FormatCount renders an integer with thousands separators, e.g. "52,400".
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
