package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

// Entry maps one free-text keyword to a canonical hexagram code. Several
// keywords legitimately belong to more than one entry across corpus
// revisions; Priority plus the fixed ordering below makes the winner
// deterministic instead of incidental.
type Entry struct {
	Keyword  string
	Code     string
	Priority int
}

// Lexicon is the static bilingual keyword table used for fast hexagram
// detection. Immutable after construction, safe for concurrent use.
type Lexicon struct {
	entries  []Entry
	synonyms map[string][]string
	concepts map[string][]string
}

// New builds the lexicon from the embedded keyword table. Entries are
// ordered by priority, then longest-keyword-first, then declaration order.
func New() *Lexicon {
	return newFromEntries(defaultEntries)
}

func newFromEntries(raw []Entry) *Lexicon {
	entries := make([]Entry, len(raw))
	copy(entries, raw)

	declIdx := make(map[string]int, len(raw))
	for i, e := range raw {
		key := e.Keyword + "\x00" + e.Code
		if _, seen := declIdx[key]; !seen {
			declIdx[key] = i
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority < entries[j].Priority
		}
		li := utf8.RuneCountInString(entries[i].Keyword)
		lj := utf8.RuneCountInString(entries[j].Keyword)
		if li != lj {
			return li > lj
		}
		return declIdx[entries[i].Keyword+"\x00"+entries[i].Code] < declIdx[entries[j].Keyword+"\x00"+entries[j].Code]
	})

	synonyms := make(map[string][]string)
	concepts := make(map[string][]string)
	for _, e := range raw {
		synonyms[e.Code] = append(synonyms[e.Code], e.Keyword)
		if e.Priority >= 2 {
			concepts[e.Code] = append(concepts[e.Code], e.Keyword)
		}
	}

	return &Lexicon{
		entries:  entries,
		synonyms: synonyms,
		concepts: concepts,
	}
}

// DetectExact scans the query for the first keyword that appears as a
// substring, honoring the deterministic entry order.
func (l *Lexicon) DetectExact(query string) (code, keyword string, ok bool) {
	q := strings.ToLower(query)
	for _, e := range l.entries {
		if strings.Contains(q, e.Keyword) {
			return e.Code, e.Keyword, true
		}
	}
	return "", "", false
}

// DetectFuzzy runs an approximate match of the whole query against every
// keyword and returns the best hit, accepted only at or above threshold
// (a ratio in [0,1]; the historical operating point is 0.80).
func (l *Lexicon) DetectFuzzy(query string, threshold float64) (code, keyword string, score float64, ok bool) {
	q := strings.ToLower(query)
	best := -1.0
	bestIdx := -1
	for i, e := range l.entries {
		s := PartialRatio(e.Keyword, q)
		if s > best {
			best = s
			bestIdx = i
		}
	}
	if bestIdx < 0 || best < threshold {
		return "", "", best, false
	}
	e := l.entries[bestIdx]
	return e.Code, e.Keyword, best, true
}

// Synonyms returns the keywords declared for a code, in declaration order,
// capped at limit (0 means all). Used for query expansion.
func (l *Lexicon) Synonyms(code string, limit int) []string {
	all := l.synonyms[code]
	if limit <= 0 || limit >= len(all) {
		out := make([]string, len(all))
		copy(out, all)
		return out
	}
	out := make([]string, limit)
	copy(out, all[:limit])
	return out
}

// ConceptSynonyms returns only the concept-level keywords for a code,
// leaving out the code token and the explicit name forms. This is what
// query expansion appends.
func (l *Lexicon) ConceptSynonyms(code string, limit int) []string {
	all := l.concepts[code]
	if limit <= 0 || limit >= len(all) {
		out := make([]string, len(all))
		copy(out, all)
		return out
	}
	out := make([]string, limit)
	copy(out, all[:limit])
	return out
}

// Entries exposes the ordered table, mainly for tests.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// PartialRatio scores how well needle matches the best-aligned window of
// haystack, as a normalized edit-distance ratio in [0,1]. Equivalent in
// spirit to a partial-similarity scorer: a short keyword fully contained
// in a long query still scores 1.0.
func PartialRatio(needle, haystack string) float64 {
	n := []rune(strings.ToLower(needle))
	h := []rune(strings.ToLower(haystack))
	if len(n) == 0 || len(h) == 0 {
		return 0
	}
	if len(n) > len(h) {
		n, h = h, n
	}

	best := 0.0
	for start := 0; start+len(n) <= len(h); start++ {
		window := string(h[start : start+len(n)])
		d := smetrics.WagnerFischer(string(n), window, 1, 1, 2)
		ratio := 1.0 - float64(d)/float64(len(n)*2)
		if ratio > best {
			best = ratio
		}
		if best == 1.0 {
			break
		}
	}
	return best
}
