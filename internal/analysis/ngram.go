package analysis

import (
	"sort"
)

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	SessionID  string `json:"session_id,omitempty"`
	StartIndex int    `json:"start_index"`
	TsMs       int64  `json:"ts_ms"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// TimedMove is a move notation with its timestamp.
type TimedMove struct {
	Notation string
	TsMs     int64
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   61, // prime above NumTokens
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Moves with unknown notation are skipped. Only n-grams seen at least twice
// are reported.
func MineNGrams(moves []TimedMove, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	var tokens []uint8
	var known []TimedMove
	for _, m := range moves {
		if tok, ok := Token(m.Notation); ok {
			tokens = append(tokens, tok)
			known = append(known, m)
		}
	}

	for n := max(minN, 1); n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineNGramsForN(tokens, known, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineNGramsForN(tokens []uint8, moves []TimedMove, n, topK int) []NGram {
	// Buckets keep colliding hashes apart.
	buckets := make(map[uint64][]*ngramEntry)
	var entries []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}
		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start, TsMs: moves[start].TsMs}

		var entry *ngramEntry
		window := rh.Window()
		for _, e := range buckets[rh.Hash()] {
			if tokensEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			buckets[rh.Hash()] = append(buckets[rh.Hash()], entry)
			entries = append(entries, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	repeated := entries[:0]
	for _, e := range entries {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	// entries is in first-seen order, so ties keep that order.
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		result[i] = NGram{
			N:           n,
			Sequence:    tokenSequence(e.tokens),
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

func tokenSequence(tokens []uint8) []string {
	seq := make([]string, len(tokens))
	for i, t := range tokens {
		seq[i] = TokenNotation(t)
	}
	return seq
}

func tokensEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MineNGramsAcrossSessions aggregates per-session reports into one.
func MineNGramsAcrossSessions(reports map[string]*NGramReport, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	// Visit sessions in a stable order.
	ids := make([]string, 0, len(reports))
	ns := make(map[int]bool)
	for id, r := range reports {
		ids = append(ids, id)
		for n := range r.TopNGrams {
			ns[n] = true
		}
	}
	sort.Strings(ids)

	for n := range ns {
		aggregated := make(map[string]*NGram)
		var order []string

		for _, id := range ids {
			for _, ng := range reports[id].TopNGrams[n] {
				key := string(ng.Tokens)
				existing, ok := aggregated[key]
				if !ok {
					existing = &NGram{N: ng.N, Sequence: ng.Sequence, Tokens: ng.Tokens}
					aggregated[key] = existing
					order = append(order, key)
				}
				existing.Count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(existing.Occurrences) < maxOccurrences {
						occ.SessionID = id
						existing.Occurrences = append(existing.Occurrences, occ)
					}
				}
			}
		}

		ngrams := make([]NGram, 0, len(order))
		for _, key := range order {
			ngrams = append(ngrams, *aggregated[key])
		}
		sort.SliceStable(ngrams, func(i, j int) bool {
			return ngrams[i].Count > ngrams[j].Count
		})
		if len(ngrams) > topK {
			ngrams = ngrams[:topK]
		}
		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}
