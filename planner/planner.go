// Package planner classifies a normalized query into a heuristic category
// and assembles the structured boolean retrieval query for it. Categories
// are an ordered rule list evaluated in fixed priority order; the first
// matching rule wins.
package planner

import (
	"search-relevance/domain"
	"search-relevance/rewrite"
)

// Rule is one (predicate, builder) pair of the dispatcher.
type Rule struct {
	Name    string
	Matches func(q string) bool
	Build   func(q string) *domain.BoolQuery
}

type Planner struct {
	synonyms *rewrite.SynonymTable
	rules    []Rule
}

// New builds a planner over the given synonym table. Rule order is part of
// the policy: fuel queries take precedence over identifier queries, which
// take precedence over year+price queries; everything else is default.
func New(synonyms *rewrite.SynonymTable) *Planner {
	p := &Planner{synonyms: synonyms}
	p.rules = []Rule{
		{Name: CategoryFuel, Matches: matchesFuel, Build: buildFuel},
		{Name: CategoryVehicleID, Matches: matchesVehicleID, Build: buildVehicleID},
		{Name: CategoryYearPrice, Matches: matchesYearPrice, Build: buildYearPrice},
		{Name: CategoryDefault, Matches: func(string) bool { return true }, Build: p.buildDefault},
	}
	return p
}

// Plan assembles the retrieval query for a normalized, spelling-corrected
// query string and reports which category applied. An empty query yields a
// query guaranteed to match nothing.
func (p *Planner) Plan(q string) (*domain.BoolQuery, string) {
	if q == "" {
		return &domain.BoolQuery{Must: []domain.Clause{domain.MatchNone{}}}, CategoryEmpty
	}

	for _, rule := range p.rules {
		if !rule.Matches(q) {
			continue
		}
		bq := rule.Build(q)
		p.applyShared(bq, q)
		return bq, rule.Name
	}

	// Unreachable: the default rule matches everything.
	return &domain.BoolQuery{Must: []domain.Clause{domain.MatchNone{}}}, CategoryEmpty
}

// applyShared attaches the clauses every category carries: the digest
// boilerplate suppression, opposite-direction suppression, and the
// minimum_should_match floor.
func (p *Planner) applyShared(bq *domain.BoolQuery, q string) {
	bq.MustNot = append(bq.MustNot, boilerplateClauses()...)
	bq.MustNot = append(bq.MustNot, directionClauses(q)...)
	if len(bq.Should) > 0 {
		bq.MinimumShouldMatch = 1
	}
}
