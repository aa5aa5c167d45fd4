package planner

import (
	"testing"

	"search-relevance/domain"
	"search-relevance/rewrite"
	"search-relevance/tokenize"
)

func TestPlanCategoryDispatch(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"fuel keyword", "снижение цен на бензин", CategoryFuel},
		{"diesel is fuel", "подорожал дизель", CategoryFuel},
		{"vin latin", "проверка vin онлайн", CategoryVehicleID},
		{"vin cyrillic", "узнать вин по номеру", CategoryVehicleID},
		{"year plus price", "цены на автомобили 2025", CategoryYearPrice},
		{"price without year", "цены на автомобили", CategoryDefault},
		{"year out of range", "цены на автомобили 2019", CategoryDefault},
		{"plain query", "зимние шины", CategoryDefault},
		{"fuel beats year price", "цена бензина 2025", CategoryFuel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := p.Plan(tt.query)
			if got != tt.want {
				t.Errorf("Plan(%q) category = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestPlanEmptyQueryMatchesNothing(t *testing.T) {
	p := New(nil)

	bq, cat := p.Plan("")
	if cat != CategoryEmpty {
		t.Fatalf("category = %q, want %q", cat, CategoryEmpty)
	}
	if len(bq.Must) != 1 {
		t.Fatalf("must clauses = %d, want 1", len(bq.Must))
	}
	if _, ok := bq.Must[0].(domain.MatchNone); !ok {
		t.Errorf("must[0] = %T, want domain.MatchNone", bq.Must[0])
	}
}

func TestPlanFuelSuppressesElectricAndOppositeDirection(t *testing.T) {
	p := New(nil)

	bq, cat := p.Plan("снижение цен на бензин")
	if cat != CategoryFuel {
		t.Fatalf("category = %q, want %q", cat, CategoryFuel)
	}

	mustNot := make(map[string]bool)
	for _, c := range bq.MustNot {
		if m, ok := c.(domain.Match); ok && m.Field == "title" {
			mustNot[m.Query] = true
		}
	}

	for _, term := range []string{"электромобиль", "электрокар"} {
		if !mustNot[term] {
			t.Errorf("missing must_not title match for %q", term)
		}
	}
	// A falling-prices query excludes the rising-prices vocabulary.
	for _, term := range []string{"повышение", "рост", "подорожание", "подорожали"} {
		if !mustNot[term] {
			t.Errorf("missing must_not title match for opposite direction %q", term)
		}
	}
	for _, term := range []string{"снижение", "падение"} {
		if mustNot[term] {
			t.Errorf("query's own direction %q must not be suppressed", term)
		}
	}
}

func TestPlanSharedBoilerplateSuppression(t *testing.T) {
	p := New(nil)

	for _, query := range []string{"зимние шины", "цены на бензин", "проверка vin"} {
		bq, _ := p.Plan(query)

		found := 0
		for _, c := range bq.MustNot {
			if mp, ok := c.(domain.MatchPhrase); ok && mp.Field == "title" {
				if mp.Query == "Главное за день" || mp.Query == "главное за день" {
					found++
				}
			}
		}
		if found != 2 {
			t.Errorf("Plan(%q): boilerplate must_not phrases = %d, want 2", query, found)
		}
	}
}

func TestPlanYearPriceCooccurrenceBoost(t *testing.T) {
	p := New(nil)

	bq, cat := p.Plan("цены на автомобили 2025")
	if cat != CategoryYearPrice {
		t.Fatalf("category = %q, want %q", cat, CategoryYearPrice)
	}
	if bq.MinimumShouldMatch != 1 {
		t.Errorf("minimum_should_match = %d, want 1", bq.MinimumShouldMatch)
	}

	var pairs int
	for _, c := range bq.Should {
		all, ok := c.(domain.AllOf)
		if !ok {
			continue
		}
		if all.Boost != 4.0 {
			t.Errorf("co-occurrence boost = %v, want 4.0", all.Boost)
		}
		if len(all.Clauses) != 2 {
			t.Fatalf("co-occurrence clauses = %d, want 2", len(all.Clauses))
		}
		year, ok := all.Clauses[1].(domain.Match)
		if !ok || year.Query != "2025" {
			t.Errorf("co-occurrence year clause = %#v, want title match on 2025", all.Clauses[1])
		}
		pairs++
	}
	if pairs != 2 {
		t.Errorf("co-occurrence pairs = %d, want 2", pairs)
	}
}

func TestPlanVehicleIDClauses(t *testing.T) {
	p := New(nil)

	bq, cat := p.Plan("проверка vin онлайн")
	if cat != CategoryVehicleID {
		t.Fatalf("category = %q, want %q", cat, CategoryVehicleID)
	}

	var wildcard *domain.Wildcard
	var phrase *domain.MatchPhrase
	for _, c := range bq.Should {
		switch v := c.(type) {
		case domain.Wildcard:
			wildcard = &v
		case domain.MatchPhrase:
			phrase = &v
		}
	}
	if wildcard == nil || wildcard.Field != "title" || wildcard.Value != "*vin*" || wildcard.Boost != 5.0 {
		t.Errorf("wildcard clause = %#v, want title *vin* boost 5.0", wildcard)
	}
	if phrase == nil || phrase.Field != "text" || phrase.Query != "vin" || phrase.Boost != 4.0 {
		t.Errorf("phrase clause = %#v, want text \"vin\" boost 4.0", phrase)
	}
}

func TestPlanDefaultWithSynonyms(t *testing.T) {
	tok, err := tokenize.New()
	if err != nil {
		t.Fatalf("tokenize.New: %v", err)
	}
	syn := rewrite.NewSynonymTable(map[string][]string{
		"шины": {"резина", "покрышки"},
	}, tok)
	p := New(syn)

	bq, cat := p.Plan("зимние шины 2026")
	if cat != CategoryDefault {
		t.Fatalf("category = %q, want %q", cat, CategoryDefault)
	}

	var primary, synonym *domain.MultiMatch
	var yearPhrase *domain.MatchPhrase
	for _, c := range bq.Should {
		switch v := c.(type) {
		case domain.MultiMatch:
			if v.Operator == "and" {
				primary = &v
			} else {
				synonym = &v
			}
		case domain.MatchPhrase:
			yearPhrase = &v
		}
	}

	if primary == nil || primary.Query != "зимние шины 2026" || primary.Fuzziness != "AUTO" || primary.Boost != 2.0 {
		t.Errorf("primary clause = %#v, want and/AUTO boost 2.0 over the query", primary)
	}
	if yearPhrase == nil || yearPhrase.Query != "2026" || yearPhrase.Boost != 3.0 {
		t.Errorf("year phrase = %#v, want title 2026 boost 3.0", yearPhrase)
	}
	if synonym == nil || synonym.Query != "покрышки резина" || synonym.Boost != 1.5 {
		t.Errorf("synonym clause = %#v, want or boost 1.5 over sorted expansions", synonym)
	}
}
