package analysis

type simplifyEntry struct {
	notation string
	tok      uint8
	known    bool
}

// Simplify removes moves that cancel out: a move directly followed by its
// inverse, and four identical quarter turns in a row. Cancellation cascades,
// so "R U U' R'" simplifies to nothing. Unknown notations are kept as is
// and block cancellation across them.
func Simplify(notations []string) []string {
	var stack []simplifyEntry

	for _, n := range notations {
		tok, ok := Token(n)
		if !ok {
			stack = append(stack, simplifyEntry{notation: n})
			continue
		}

		k := len(stack)
		if k > 0 && stack[k-1].known && stack[k-1].tok == inverse(tok) {
			stack = stack[:k-1]
			continue
		}
		if k >= 3 && sameRun(stack[k-3:], tok) {
			stack = stack[:k-3]
			continue
		}
		stack = append(stack, simplifyEntry{notation: TokenNotation(tok), tok: tok, known: true})
	}

	out := make([]string, len(stack))
	for i, e := range stack {
		out[i] = e.notation
	}
	return out
}

func sameRun(run []simplifyEntry, tok uint8) bool {
	for _, e := range run {
		if !e.known || e.tok != tok {
			return false
		}
	}
	return true
}

// Cancellations counts adjacent pairs where a move is immediately followed
// by its inverse.
func Cancellations(notations []string) int {
	n := 0
	for i := 1; i < len(notations); i++ {
		a, okA := Token(notations[i-1])
		b, okB := Token(notations[i])
		if okA && okB && a == inverse(b) {
			n++
		}
	}
	return n
}
