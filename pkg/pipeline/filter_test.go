package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/pushhub/pkg/domain"
)

func titles(articles []domain.Article) []string {
	res := make([]string, len(articles))
	for i, a := range articles {
		res[i] = a.Title
	}
	return res
}

func TestDeduplicate(t *testing.T) {
	candidates := []domain.Article{
		{Title: "a", ContentHash: "h1"},
		{Title: "b", ContentHash: "h2"},
		{Title: "c", ContentHash: ""},
		{Title: "d", ContentHash: "h3"},
		{Title: "e", ContentHash: "h3"},
		{Title: "f", ContentHash: ""},
	}
	existing := map[string]struct{}{"h2": {}}

	res := Deduplicate(candidates, existing)
	assert.Equal(t, []string{"a", "c", "d", "f"}, titles(res))
	// inputs are not modified
	assert.Len(t, existing, 1)
	assert.Len(t, candidates, 6)

	assert.Empty(t, Deduplicate(nil, existing))
	assert.Equal(t, []string{"a", "b", "c", "d", "f"}, titles(Deduplicate(candidates, nil)))
}

func TestNormalizeKeywords(t *testing.T) {
	assert.Equal(t, []string{"Bitcoin", "курс рубля"}, NormalizeKeywords([]string{"  Bitcoin ", "", "   ", "курс рубля"}))
	assert.Empty(t, NormalizeKeywords(nil))
	assert.Empty(t, NormalizeKeywords([]string{" ", "\t"}))
}

func TestFilterByKeywords(t *testing.T) {
	candidates := []domain.Article{
		{Title: "Bitcoin rallies", Content: "crypto markets up"},
		{Title: "Weather", Content: "rain in Moscow, bitcoin miners unaffected"},
		{Title: "Курс рубля", Content: "ЦБ установил курс"},
		{Title: "Sport", Content: "football"},
	}

	tbl := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{"no keywords", nil, []string{"Bitcoin rallies", "Weather", "Курс рубля", "Sport"}},
		{"blank keywords", []string{" ", ""}, []string{"Bitcoin rallies", "Weather", "Курс рубля", "Sport"}},
		{"case sensitive title", []string{"Bitcoin"}, []string{"Bitcoin rallies"}},
		{"case sensitive content", []string{"bitcoin"}, []string{"Weather"}},
		{"any keyword", []string{"football", " курс "}, []string{"Курс рубля", "Sport"}},
		{"no match", []string{"ethereum"}, []string{}},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(FilterByKeywords(candidates, tt.keywords)))
		})
	}
}
