package parser

import "strconv"

// parseInt64 and parseFloat64 convert a lexed numeric literal's text into
// its value. The lexer has already validated the lexeme's shape, so a
// conversion error here can only mean a literal wide enough to overflow
// int64/float64; both fall back to their zero-adjacent saturation rather
// than panicking, matching Go's own strconv behavior on ErrRange.
func parseInt64(lit string) int64 {
	if n, err := strconv.ParseInt(lit, 0, 64); err == nil {
		return n
	}
	n, _ := strconv.ParseUint(lit, 0, 64)
	return int64(n)
}

func parseFloat64(lit string) float64 {
	n, _ := strconv.ParseFloat(lit, 64)
	return n
}
