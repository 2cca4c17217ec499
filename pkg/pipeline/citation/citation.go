package citation

import (
	"regexp"
	"strconv"

	"kinhdich-rag-be/pkg/pipeline/state"
)

var markerRe = regexp.MustCompile(`\[(\d+)\]`)

// Result is the outcome of resolving the citation markers of one answer.
type Result struct {
	Answer string
	// Valid lists the in-range citation numbers, in order of appearance.
	Valid []int
	// Total counts every [n] marker found, valid or not.
	Total int
}

// Resolve scans answer for [n] markers. A marker is valid when n addresses
// a passage in docs (1-based). Valid markers whose passage stores a
// footnote keyed by n are replaced inline with the footnote text; every
// other marker, including out-of-range ones, is kept byte for byte so an
// unresolved reference stays visible to the reader.
func Resolve(answer string, docs []state.Document) Result {
	res := Result{}

	res.Answer = markerRe.ReplaceAllStringFunc(answer, func(marker string) string {
		res.Total++

		n, err := strconv.Atoi(markerRe.FindStringSubmatch(marker)[1])
		if err != nil || n < 1 || n > len(docs) {
			return marker
		}
		res.Valid = append(res.Valid, n)

		note, ok := docs[n-1].Footnotes[strconv.Itoa(n)]
		if !ok {
			return marker
		}
		return " (" + note + ") "
	})

	return res
}
