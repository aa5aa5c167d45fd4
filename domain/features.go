package domain

// NumFeatures is the width of the reranker feature vector. The ordering
// below is a contract shared between training and inference; changing it
// invalidates every trained model.
const NumFeatures = 10

// Feature vector positions.
const (
	FeatRetrievalScore = iota
	FeatQueryTokens
	FeatTitleTokens
	FeatBodyTokens
	FeatTitleOverlap
	FeatBodyOverlap
	FeatTotalOverlap
	FeatTitleOverlapRatio
	FeatBodyOverlapRatio
	FeatQueryFullyInTitle
)

// FeatureVector holds the lexical-overlap features for one (query, hit) pair.
type FeatureVector [NumFeatures]float64
