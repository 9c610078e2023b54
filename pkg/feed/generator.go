// Package feed exports analyzed articles of a feature as an RSS 2.0 document.
package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/umputun/pushhub/pkg/domain"
)

// Generator builds RSS documents with links rooted at baseURL
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator makes a generator for the given public base url
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS renders analyzed articles of a feature, most important first.
// Articles without an importance score are skipped.
func (g *Generator) GenerateRSS(articles []*domain.Article, featureID string, minScore float64) (string, error) {
	scored := make([]*domain.Article, 0, len(articles))
	for _, a := range articles {
		if a == nil || !a.Analyzed() || *a.ImportanceScore < minScore {
			continue
		}
		scored = append(scored, a)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := *scored[i].ImportanceScore, *scored[j].ImportanceScore
		if si != sj {
			return si > sj
		}
		return pubTime(scored[i]).After(pubTime(scored[j]))
	})

	items := make([]*Item, 0, len(scored))
	for _, a := range scored {
		items = append(items, g.item(a))
	}

	doc := &RSS{
		Version: "2.0",
		Atom:    atomNS,
		Channel: &Channel{
			Title:       fmt.Sprintf("PushHub - %s (score ≥ %.1f)", featureID, minScore),
			Link:        g.baseURL + "/",
			Description: fmt.Sprintf("Analyzed articles of %s with importance ≥ %.1f", featureID, minScore),
			AtomLink: &AtomLink{
				Href: fmt.Sprintf("%s/rss/%s", g.baseURL, featureID),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(out), nil
}

func (g *Generator) item(a *domain.Article) *Item {
	var desc strings.Builder
	if a.OneLiner != "" {
		desc.WriteString(a.OneLiner)
	}
	if a.Summary != "" {
		if desc.Len() > 0 {
			desc.WriteString("\n\n")
		}
		desc.WriteString(a.Summary)
	}
	if a.Sentiment != "" {
		fmt.Fprintf(&desc, "\n\nSentiment: %s", a.Sentiment)
	}

	category := a.RefinedCategory
	if category == "" {
		category = a.Category
	}
	var categories []string
	if category != "" {
		categories = append(categories, category)
	}
	categories = append(categories, a.Keywords...)

	res := &Item{
		Title:       fmt.Sprintf("[%.1f] %s", *a.ImportanceScore, a.Title),
		Link:        a.Link,
		GUID:        GUID{Value: a.ID},
		Description: desc.String(),
		Source:      string(a.Source),
		Categories:  categories,
	}
	if t := pubTime(a); !t.IsZero() {
		res.PubDate = t.Format(time.RFC1123Z)
	}
	return res
}

// pubTime falls back to the scrape time for articles without a publish date
func pubTime(a *domain.Article) time.Time {
	if !a.PublishedAt.IsZero() {
		return a.PublishedAt
	}
	return a.ScrapedAt
}
