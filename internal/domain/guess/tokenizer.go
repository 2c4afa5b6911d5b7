package guess

// Tokenize splits compact meld notation into codes.
//
//	token := "f" | "n" | "s" | "S" | "p" ["2".."4"] | "r" "3".."5"
//
// Every byte of combined must belong to a token; otherwise the whole input
// is rejected with ErrRejected. Callers strip whitespace first.
func Tokenize(combined string) ([]string, error) {
	tokens := make([]string, 0, len(combined))
	for i := 0; i < len(combined); {
		n := scanToken(combined[i:])
		if n == 0 {
			return nil, ErrRejected
		}
		tokens = append(tokens, combined[i:i+n])
		i += n
	}
	return tokens, nil
}

// scanToken returns the byte length of the token at the start of s, or 0
// when no token starts there.
func scanToken(s string) int {
	switch s[0] {
	case 'f', 'n', 's', 'S':
		return 1
	case 'p':
		if len(s) > 1 && s[1] >= '2' && s[1] <= '4' {
			return 2
		}
		return 1
	case 'r':
		if len(s) > 1 && s[1] >= '3' && s[1] <= '5' {
			return 2
		}
		return 0
	default:
		return 0
	}
}
