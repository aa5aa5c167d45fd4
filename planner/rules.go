package planner

import (
	"regexp"
	"strconv"
	"strings"

	"search-relevance/domain"
)

// Category names, in dispatch priority order.
const (
	CategoryFuel      = "fuel"
	CategoryVehicleID = "vehicle_id"
	CategoryYearPrice = "year_price"
	CategoryDefault   = "default"
	CategoryEmpty     = "empty"
)

// Accepted range for year tokens. Older years are historical noise, later
// ones typos.
const (
	minYear = 2024
	maxYear = 2027
)

// searchFields carries the standard field weighting: titles dominate body
// text when scoring.
var searchFields = []string{"title^4", "text"}

const fuzzinessAuto = "AUTO"

var (
	fuelTerms      = []string{"бензин", "топливо", "дизель"}
	vehicleIDTerms = []string{"vin", "вин", "vincode"}
	priceTerms     = []string{"цена", "цены", "стоимость"}

	// Electric-vehicle vocabulary is a known false-positive cluster for
	// fuel-price queries.
	electricTerms = []string{"электромобиль", "электрокар"}

	increaseTerms = []string{"повышение", "рост", "подорожание", "подорожали"}
	decreaseTerms = []string{"снижение", "падение", "подешевели", "удешевление"}
)

// Non-article digest headlines pollute every category.
var boilerplateTitles = []string{"Главное за день", "главное за день"}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

func containsAny(q string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

// yearToken extracts the first 4-digit token within the accepted range, or
// "" when none is present.
func yearToken(q string) string {
	for _, m := range yearPattern.FindAllString(q, -1) {
		if y, err := strconv.Atoi(m); err == nil && y >= minYear && y <= maxYear {
			return m
		}
	}
	return ""
}

func boilerplateClauses() []domain.Clause {
	out := make([]domain.Clause, 0, len(boilerplateTitles))
	for _, t := range boilerplateTitles {
		out = append(out, domain.MatchPhrase{Field: "title", Query: t})
	}
	return out
}

// directionClauses suppresses the opposite sentiment direction: a
// prices-falling query must not surface prices-rising articles on title
// keyword overlap alone.
func directionClauses(q string) []domain.Clause {
	var opposite []string
	switch {
	case containsAny(q, decreaseTerms):
		opposite = increaseTerms
	case containsAny(q, increaseTerms):
		opposite = decreaseTerms
	default:
		return nil
	}

	out := make([]domain.Clause, 0, len(opposite))
	for _, t := range opposite {
		out = append(out, domain.Match{Field: "title", Query: t})
	}
	return out
}

func matchesFuel(q string) bool { return containsAny(q, fuelTerms) }

func buildFuel(q string) *domain.BoolQuery {
	bq := &domain.BoolQuery{
		Should: []domain.Clause{
			domain.MultiMatch{
				Query:     "бензин топливо цена стоимость",
				Fields:    searchFields,
				Operator:  "or",
				Fuzziness: fuzzinessAuto,
				Boost:     2.0,
			},
			domain.Match{Field: "title", Query: "бензин", Boost: 3.0},
			domain.Match{Field: "title", Query: "топливо", Boost: 2.0},
		},
	}
	for _, t := range electricTerms {
		bq.MustNot = append(bq.MustNot, domain.Match{Field: "title", Query: t})
	}
	return bq
}

func matchesVehicleID(q string) bool { return containsAny(q, vehicleIDTerms) }

// buildVehicleID favors recall: identifier queries are rare and the corpus
// mentions them in passing, so substring matching on the title is worth the
// precision cost.
func buildVehicleID(q string) *domain.BoolQuery {
	return &domain.BoolQuery{
		Should: []domain.Clause{
			domain.MultiMatch{
				Query:     "vin номер идентификационный кузовной",
				Fields:    searchFields,
				Operator:  "or",
				Fuzziness: fuzzinessAuto,
				Boost:     3.0,
			},
			domain.MatchPhrase{Field: "text", Query: "vin", Boost: 4.0},
			domain.Wildcard{Field: "title", Value: "*vin*", Boost: 5.0},
		},
	}
}

func matchesYearPrice(q string) bool {
	return containsAny(q, priceTerms) && yearToken(q) != ""
}

// buildYearPrice requires the price keyword and the year to co-occur in the
// title at high boost, with an OR fallback across all fields at low boost.
func buildYearPrice(q string) *domain.BoolQuery {
	year := yearToken(q)
	return &domain.BoolQuery{
		Should: []domain.Clause{
			domain.AllOf{
				Clauses: []domain.Clause{
					domain.Match{Field: "title", Query: "цена"},
					domain.Match{Field: "title", Query: year},
				},
				Boost: 4.0,
			},
			domain.AllOf{
				Clauses: []domain.Clause{
					domain.Match{Field: "title", Query: "стоимость"},
					domain.Match{Field: "title", Query: year},
				},
				Boost: 4.0,
			},
			domain.MultiMatch{
				Query:     "цена стоимость " + year,
				Fields:    searchFields,
				Operator:  "or",
				Fuzziness: fuzzinessAuto,
				Boost:     2.0,
			},
		},
	}
}

func (p *Planner) buildDefault(q string) *domain.BoolQuery {
	bq := &domain.BoolQuery{
		Should: []domain.Clause{
			domain.MultiMatch{
				Query:     q,
				Fields:    searchFields,
				Operator:  "and",
				Fuzziness: fuzzinessAuto,
				Boost:     2.0,
			},
		},
	}

	if year := yearToken(q); year != "" {
		bq.Should = append(bq.Should, domain.MatchPhrase{Field: "title", Query: year, Boost: 3.0})
	}

	if syn, ok := p.synonyms.Expand(q); ok {
		bq.Should = append(bq.Should, domain.MultiMatch{
			Query:     syn,
			Fields:    searchFields,
			Operator:  "or",
			Fuzziness: fuzzinessAuto,
			Boost:     1.5,
		})
	}

	return bq
}
