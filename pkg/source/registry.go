package source

import (
	"fmt"

	"github.com/umputun/pushhub/pkg/config"
)

// Registry keeps configured sources by name, in configuration order
type Registry struct {
	byName map[string]Source
	order  []string
}

// NewRegistry builds sources from configuration
func NewRegistry(cfgs []config.SourceConfig, opts Options) (*Registry, error) {
	r := &Registry{byName: make(map[string]Source, len(cfgs))}
	for _, c := range cfgs {
		if _, ok := r.byName[c.Name]; ok {
			return nil, fmt.Errorf("duplicate source %q", c.Name)
		}
		var src Source
		switch c.Kind {
		case "", "rss":
			src = NewRSSSource(c.Name, c.Categories, c.SearchURL, opts)
		case "html":
			sel := Selectors{Item: c.Selectors.Item, Title: c.Selectors.Title, Link: c.Selectors.Link,
				Content: c.Selectors.Content, Date: c.Selectors.Date}
			hs, err := NewHTMLSource(c.Name, c.Categories, c.SearchURL, sel, opts)
			if err != nil {
				return nil, err
			}
			src = hs
		default:
			return nil, fmt.Errorf("source %s: unknown kind %q", c.Name, c.Kind)
		}
		r.Add(src)
	}
	return r, nil
}

// Add registers a source, replacing one with the same name
func (r *Registry) Add(src Source) {
	if r.byName == nil {
		r.byName = map[string]Source{}
	}
	if _, ok := r.byName[src.Name()]; !ok {
		r.order = append(r.order, src.Name())
	}
	r.byName[src.Name()] = src
}

// Get returns a source by name
func (r *Registry) Get(name string) (Source, bool) {
	src, ok := r.byName[name]
	return src, ok
}

// Names returns source names in registration order
func (r *Registry) Names() []string {
	res := make([]string, len(r.order))
	copy(res, r.order)
	return res
}
