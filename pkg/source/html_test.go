package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testListing = `<html><body>
<div class="news">
	<div class="item">
		<a class="title" href="/news/1">First <b>headline</b></a>
		<p class="teaser">Teaser of the first</p>
		<time datetime="2024-05-01T10:00:00Z">1 May</time>
	</div>
	<div class="item">
		<a class="title" href="https://other.example.com/2">Second headline</a>
		<p class="teaser">Teaser &amp; second</p>
		<span class="date">02.05.2024 11:30</span>
	</div>
	<div class="item"><p class="teaser">orphan teaser</p></div>
</div>
</body></html>`

func TestHTMLSource_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testListing))
	}))
	defer ts.Close()

	src, err := NewHTMLSource("rbc", map[string]string{"economy": ts.URL + "/economy"}, "",
		Selectors{Item: "div.item", Title: "a.title", Content: "p.teaser", Date: "time, span.date"}, Options{})
	require.NoError(t, err)

	articles, err := src.Fetch(context.Background(), Query{Category: "economy"})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "First headline", articles[0].Title)
	assert.Equal(t, "Teaser of the first", articles[0].Content)
	assert.Equal(t, ts.URL+"/news/1", articles[0].Link)
	assert.Equal(t, "economy", articles[0].Category)
	assert.True(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Equal(articles[0].PublishedAt))
	assert.Equal(t, ContentHash("First headline", "Teaser of the first"), articles[0].ContentHash)

	assert.Equal(t, "Second headline", articles[1].Title)
	assert.Equal(t, "Teaser & second", articles[1].Content)
	assert.Equal(t, "https://other.example.com/2", articles[1].Link)
	assert.True(t, time.Date(2024, 5, 2, 11, 30, 0, 0, time.UTC).Equal(articles[1].PublishedAt))
}

func TestHTMLSource_Charset(t *testing.T) {
	// "Привет" and "мир" in windows-1251
	page := "<html><body><div class='item'><a href='/x'>\xcf\xf0\xe8\xe2\xe5\xf2</a><p>\xec\xe8\xf0</p></div></body></html>"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()

	src, err := NewHTMLSource("old", map[string]string{"main": ts.URL}, "", Selectors{Item: "div.item", Title: "a", Content: "p"}, Options{})
	require.NoError(t, err)
	articles, err := src.Fetch(context.Background(), Query{Category: "main"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Привет", articles[0].Title)
	assert.Equal(t, "мир", articles[0].Content)
	assert.Equal(t, ts.URL+"/x", articles[0].Link)
}

func TestHTMLSource_Errors(t *testing.T) {
	_, err := NewHTMLSource("x", nil, "", Selectors{}, Options{})
	require.Error(t, err)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	src, err := NewHTMLSource("x", map[string]string{"main": ts.URL}, "", Selectors{Item: "div"}, Options{})
	require.NoError(t, err)
	_, err = src.Fetch(context.Background(), Query{Category: "main"})
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ts.URL, fe.URL)
}

func TestHTMLSource_Cancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testListing))
	}))
	defer ts.Close()

	src, err := NewHTMLSource("x", map[string]string{"main": ts.URL}, "", Selectors{Item: "div.item", Title: "a"}, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Fetch(ctx, Query{Category: "main"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseDate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="item"><a href="/a">t</a><span>not a date</span></div>`))
	}))
	defer ts.Close()

	src, err := NewHTMLSource("x", map[string]string{"main": ts.URL}, "", Selectors{Item: "div.item", Title: "a", Date: "span"}, Options{})
	require.NoError(t, err)
	articles, err := src.Fetch(context.Background(), Query{Category: "main"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.True(t, articles[0].PublishedAt.IsZero())
}
