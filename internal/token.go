package internal

import "strconv"

// IsIndexToken reports whether tok has the exact whole-token form
// "[" one-or-more-digits "]". Anything else, including signed or
// bracketed-but-empty tokens, is a key token.
func IsIndexToken(tok string) bool {
	if len(tok) < 3 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return false
	}
	for i := 1; i < len(tok)-1; i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// ParseIndexToken extracts the integer from an index token.
// ok is false when tok is not an index token or its digits do not fit
// in an int.
func ParseIndexToken(tok string) (int, bool) {
	if !IsIndexToken(tok) {
		return 0, false
	}
	index, err := strconv.Atoi(tok[1 : len(tok)-1])
	if err != nil {
		return 0, false
	}
	return index, true
}
