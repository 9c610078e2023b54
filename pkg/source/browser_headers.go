package source

import (
	"math/rand"
	"net/http"
)

const (
	acceptFeed = "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5"
	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

var acceptLanguages = []string{
	"ru-RU,ru;q=0.9,en;q=0.8",
	"ru,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,ru;q=0.8",
	"en-GB,en;q=0.9",
}

// addBrowserHeaders makes source requests look like a regular browser visit
func addBrowserHeaders(req *http.Request, accept string) {
	req.Header.Set("Accept", accept)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Connection", "keep-alive")
	if rand.Float32() < 0.3 { //nolint:gosec // header variation only
		req.Header.Set("DNT", "1")
	}
}
