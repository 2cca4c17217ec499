package state

import (
	"time"

	"github.com/google/uuid"
)

// QueryType classifies what the user is asking for.
type QueryType string

const (
	QueryUnset         QueryType = ""
	QueryDivination    QueryType = "divination"
	QueryEntrySpecific QueryType = "entry_specific"
	QueryPhilosophy    QueryType = "philosophy"
	QueryGeneral       QueryType = "general"
)

// CastingContext carries an already-cast hexagram supplied by the caller.
// When present the pipeline answers about this hexagram first.
type CastingContext struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	Summary       string `json:"summary"`
	ChangingLines []int  `json:"changing_lines"`
}

// Entity is one hexagram mention detected in the query.
type Entity struct {
	Text     string
	Code     string
	Explicit bool
}

// Sense is the outcome of disambiguating one ambiguous word.
type Sense struct {
	Word       string
	Sense      string
	Confidence float64
}

// Document is one retrieved corpus passage as it flows through the
// pipeline. VectorScore and RerankScore stay nil until the strategy or
// stage that produces them has run.
type Document struct {
	ID          uuid.UUID
	EntryCode   string
	ContentType string
	Content     string
	Footnotes   map[string]string
	VectorScore *float64
	RerankScore *float64
}

// RelevanceScore resolves the best available score: rerank wins over
// vector, absence of both means zero.
func (d Document) RelevanceScore() float64 {
	if d.RerankScore != nil {
		return *d.RerankScore
	}
	if d.VectorScore != nil {
		return *d.VectorScore
	}
	return 0
}

// StageTiming records how long one stage took.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// State is the value threaded through the pipeline stages. Stages never
// mutate their input; each returns a derived copy, so a failed stage
// leaves the previous state intact and observable.
type State struct {
	Query   string
	Casting *CastingContext

	// Dispatch
	QueryType QueryType

	// Linguistics
	Entities      []Entity
	Senses        []Sense
	ExpandedQuery string

	// Retrieval
	Strategy  string
	Documents []Document

	// Reasoning
	Reranked   []Document
	Answer     string
	Citations  []int
	Confidence float64

	// Trace is append-only: every stage records which branch or strategy
	// fired, in order.
	Trace   []string
	Timings []StageTiming
}

// New seeds a pipeline state for a raw query. Everything except the query
// and the optional casting context starts at its zero value.
func New(query string, casting *CastingContext) State {
	return State{
		Query:   query,
		Casting: casting,
	}
}

// EffectiveQuery is the expanded query when linguistics produced one, the
// raw query otherwise.
func (s State) EffectiveQuery() string {
	if s.ExpandedQuery != "" {
		return s.ExpandedQuery
	}
	return s.Query
}

// Clone returns a deep copy safe to extend without aliasing the original.
func (s State) Clone() State {
	out := s
	out.Entities = append([]Entity(nil), s.Entities...)
	out.Senses = append([]Sense(nil), s.Senses...)
	out.Documents = cloneDocuments(s.Documents)
	out.Reranked = cloneDocuments(s.Reranked)
	out.Citations = append([]int(nil), s.Citations...)
	out.Trace = append([]string(nil), s.Trace...)
	out.Timings = append([]StageTiming(nil), s.Timings...)
	if s.Casting != nil {
		c := *s.Casting
		c.ChangingLines = append([]int(nil), s.Casting.ChangingLines...)
		out.Casting = &c
	}
	return out
}

// WithTiming appends a stage timing on a copy of the state.
func (s State) WithTiming(stage string, d time.Duration) State {
	out := s.Clone()
	out.Timings = append(out.Timings, StageTiming{Stage: stage, Duration: d})
	return out
}

// WithTrace appends a trace entry on a copy of the state.
func (s State) WithTrace(entry string) State {
	out := s.Clone()
	out.Trace = append(out.Trace, entry)
	return out
}

func cloneDocuments(docs []Document) []Document {
	if docs == nil {
		return nil
	}
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = d.cloneDoc()
	}
	return out
}

func (d Document) cloneDoc() Document {
	out := d
	if d.VectorScore != nil {
		v := *d.VectorScore
		out.VectorScore = &v
	}
	if d.RerankScore != nil {
		v := *d.RerankScore
		out.RerankScore = &v
	}
	if d.Footnotes != nil {
		out.Footnotes = make(map[string]string, len(d.Footnotes))
		for k, v := range d.Footnotes {
			out.Footnotes[k] = v
		}
	}
	return out
}

// Float is a convenience for building optional scores.
func Float(v float64) *float64 {
	return &v
}
