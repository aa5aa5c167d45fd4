package domain

import "encoding/json"

// Clause is a single leaf or nested node of a boolean retrieval query.
// Each clause marshals itself into the engine's query DSL.
type Clause interface {
	json.Marshaler
}

// MultiMatch matches a query string across several fields. Fields may carry
// per-field boosts in the "field^N" form. Operator is "and" or "or".
type MultiMatch struct {
	Query     string
	Fields    []string
	Operator  string
	Fuzziness string
	Boost     float64
}

func (m MultiMatch) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"query":  m.Query,
		"fields": m.Fields,
	}
	if m.Operator != "" {
		body["operator"] = m.Operator
	}
	if m.Fuzziness != "" {
		body["fuzziness"] = m.Fuzziness
	}
	if m.Boost != 0 {
		body["boost"] = m.Boost
	}
	return json.Marshal(map[string]any{"multi_match": body})
}

// Match matches a single field.
type Match struct {
	Field string
	Query string
	Boost float64
}

func (m Match) MarshalJSON() ([]byte, error) {
	body := map[string]any{"query": m.Query}
	if m.Boost != 0 {
		body["boost"] = m.Boost
	}
	return json.Marshal(map[string]any{"match": map[string]any{m.Field: body}})
}

// MatchPhrase matches an exact phrase in a single field.
type MatchPhrase struct {
	Field string
	Query string
	Boost float64
}

func (m MatchPhrase) MarshalJSON() ([]byte, error) {
	body := map[string]any{"query": m.Query}
	if m.Boost != 0 {
		body["boost"] = m.Boost
	}
	return json.Marshal(map[string]any{"match_phrase": map[string]any{m.Field: body}})
}

// Wildcard matches a pattern against a single field. Used by identifier
// queries where recall matters more than precision.
type Wildcard struct {
	Field string
	Value string
	Boost float64
}

func (w Wildcard) MarshalJSON() ([]byte, error) {
	body := map[string]any{"value": w.Value}
	if w.Boost != 0 {
		body["boost"] = w.Boost
	}
	return json.Marshal(map[string]any{"wildcard": map[string]any{w.Field: body}})
}

// AllOf is a nested conjunction: every inner clause must match.
type AllOf struct {
	Clauses []Clause
	Boost   float64
}

func (a AllOf) MarshalJSON() ([]byte, error) {
	body := map[string]any{"must": a.Clauses}
	if a.Boost != 0 {
		body["boost"] = a.Boost
	}
	return json.Marshal(map[string]any{"bool": body})
}

// MatchNone matches no documents. Emitted for degenerate input so the
// retrieval layer never receives an empty boolean body.
type MatchNone struct{}

func (MatchNone) MarshalJSON() ([]byte, error) {
	return []byte(`{"match_none":{}}`), nil
}

// BoolQuery is the structured retrieval query assembled by the planner.
type BoolQuery struct {
	Must               []Clause
	Should             []Clause
	MustNot            []Clause
	MinimumShouldMatch int
}

func (q *BoolQuery) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	if len(q.Must) > 0 {
		body["must"] = q.Must
	}
	if len(q.Should) > 0 {
		body["should"] = q.Should
	}
	if len(q.MustNot) > 0 {
		body["must_not"] = q.MustNot
	}
	if q.MinimumShouldMatch > 0 {
		body["minimum_should_match"] = q.MinimumShouldMatch
	}
	return json.Marshal(map[string]any{"bool": body})
}

// IsEmpty reports whether the query carries no clauses at all.
func (q *BoolQuery) IsEmpty() bool {
	return len(q.Must) == 0 && len(q.Should) == 0 && len(q.MustNot) == 0
}
