package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	h := ContentHash("Bitcoin hits record", "Price went up")
	assert.Len(t, h, 64)

	// cosmetic differences don't change the hash
	assert.Equal(t, h, ContentHash("  bitcoin HITS record ", "Price\n\twent   up"))

	// different content, different hash
	assert.NotEqual(t, h, ContentHash("Bitcoin hits record", "Price went down"))

	// title and content boundary matters
	assert.NotEqual(t, ContentHash("a b", "c"), ContentHash("a", "b c"))

	assert.Empty(t, ContentHash("", ""))
	assert.Empty(t, ContentHash("  ", "\n"))
	assert.NotEmpty(t, ContentHash("", "only content"))
}

func TestCleanText(t *testing.T) {
	tbl := []struct {
		in, out string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"line1\n\n   line2", "line1 line2"},
	}
	for i, tt := range tbl {
		assert.Equal(t, tt.out, cleanText(tt.in), "case %d", i)
	}
}

func TestBase_Resolve(t *testing.T) {
	b := newBase("lenta", map[string]string{"tech": "https://lenta.ru/rss/tech"}, "https://lenta.ru/search?q={keyword}", Options{})

	link, category, err := b.resolve(Query{Category: "tech"})
	require.NoError(t, err)
	assert.Equal(t, "https://lenta.ru/rss/tech", link)
	assert.Equal(t, "tech", category)

	link, category, err = b.resolve(Query{Category: "tech", Keyword: "биткоин курс"})
	require.NoError(t, err)
	assert.Equal(t, "https://lenta.ru/search?q=%D0%B1%D0%B8%D1%82%D0%BA%D0%BE%D0%B8%D0%BD+%D0%BA%D1%83%D1%80%D1%81", link)
	assert.Equal(t, searchCategory, category)

	_, _, err = b.resolve(Query{Category: "sport"})
	require.Error(t, err)

	// without search url keyword is ignored
	noSearch := newBase("rbc", map[string]string{"news": "https://rbc.ru/rss"}, "", Options{})
	assert.False(t, noSearch.SupportsSearch())
	link, _, err = noSearch.resolve(Query{Category: "news", Keyword: "x"})
	require.NoError(t, err)
	assert.Equal(t, "https://rbc.ru/rss", link)
}

func TestBase_Categories(t *testing.T) {
	b := newBase("s", map[string]string{"b": "u2", "a": "u1", "c": "u3"}, "", Options{})
	assert.Equal(t, []string{"a", "b", "c"}, b.Categories())
	assert.Equal(t, "s", b.Name())
	assert.NotNil(t, b.opts.Client)
	assert.Equal(t, "PushHub/1.0", b.opts.UserAgent)
}

func TestFetchError(t *testing.T) {
	inner := assert.AnError
	err := &FetchError{Source: "lenta", URL: "http://x", Err: inner}
	assert.Equal(t, "fetch lenta from http://x: "+inner.Error(), err.Error())
	assert.ErrorIs(t, err, inner)
}
