package utils

import "strings"

// SplitAndTrim splits s on every occurrence of sep and trims the whitespace around each piece
func SplitAndTrim(s, sep string) []string {
	pieces := strings.Split(s, sep)
	for idx, piece := range pieces {
		pieces[idx] = strings.TrimSpace(piece)
	}
	return pieces
}
