package domain

// HumanLabel is a hand-assigned relevance judgment. 0 means not relevant;
// higher grades mean more relevant. Only HumanLabel feeds the evaluation
// engine.
type HumanLabel int

// Relevant reports whether the judgment counts as a relevant document.
func (l HumanLabel) Relevant() bool {
	return l > 0
}

// PseudoLabel is a machine-generated relevance signal in [0,1], produced by
// query/document similarity during reranker training. It is a different
// notion of relevance than HumanLabel and the two never convert into each
// other.
type PseudoLabel float64

// JudgedResult is one row of a judged result list: a document at a given
// rank for a query, with its human judgment.
type JudgedResult struct {
	Query    string
	Rank     int
	Title    string
	Body     string
	URL      string
	Category string
	Date     string
	Score    float64
	Label    HumanLabel
}

// LabeledPair is one reranker training row: a (query, document) pair with a
// pseudo-relevance label and the retrieval context it was collected under.
type LabeledPair struct {
	QueryID  string      `json:"query_id"`
	Query    string      `json:"query"`
	URL      string      `json:"doc_url"`
	Title    string      `json:"title"`
	Body     string      `json:"text"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
	Score    float64     `json:"retrieval_score"`
	Rank     int         `json:"rank"`
	Label    PseudoLabel `json:"label"`
}

// RankingList is the ordered relevance labels for one query, in the exact
// order the system produced the results. The evaluator never re-sorts it.
type RankingList struct {
	Query  string
	Labels []HumanLabel
}

// TotalRelevant counts the relevant documents in the list.
func (r RankingList) TotalRelevant() int {
	n := 0
	for _, l := range r.Labels {
		if l.Relevant() {
			n++
		}
	}
	return n
}
