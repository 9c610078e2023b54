package domain

import "time"

// Source identifies the portal an article was fetched from
type Source string

// Sentiment is the tone of an article as judged by the enrichment agent
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is one of the known sentiments
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Article represents a news article stored for a feature.
// Core fields are set once by ingestion; enrichment fields stay empty until analysis.
type Article struct {
	ID          string
	FeatureID   string
	Title       string
	Content     string
	Link        string
	ContentHash string
	Source      Source
	Category    string
	PublishedAt time.Time
	ScrapedAt   time.Time

	// enrichment
	Summary         string
	Keywords        []string
	Sentiment       Sentiment
	ImportanceScore *float64
	RefinedCategory string
	Entities        Entities
	OneLiner        string
	AnalyzedAt      *time.Time
}

// Analyzed reports whether the article already carries an importance score
func (a *Article) Analyzed() bool {
	return a.ImportanceScore != nil
}

// Entities holds named entities found in an article
type Entities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Analysis is the structured enrichment produced for one article
type Analysis struct {
	Summary         string    `json:"summary"`
	Keywords        []string  `json:"keywords"`
	Sentiment       Sentiment `json:"sentiment"`
	ImportanceScore float64   `json:"importance_score"`
	Category        string    `json:"category"`
	Entities        Entities  `json:"entities"`
	OneLiner        string    `json:"one_liner"`
}

// ArticleFilter represents listing criteria for stored articles
type ArticleFilter struct {
	FeatureID    string
	Limit        int
	OnlyAnalyzed bool
	MinScore     float64
}
