package pipeline

import (
	"strings"

	"github.com/umputun/pushhub/pkg/domain"
)

// Deduplicate returns candidates whose content hash is empty or not in existing, in fetch order.
// Of several candidates sharing a hash only the first is kept. Neither input is modified.
func Deduplicate(candidates []domain.Article, existing map[string]struct{}) []domain.Article {
	res := make([]domain.Article, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, a := range candidates {
		if a.ContentHash == "" {
			res = append(res, a)
			continue
		}
		if _, ok := existing[a.ContentHash]; ok {
			continue
		}
		if _, ok := seen[a.ContentHash]; ok {
			continue
		}
		seen[a.ContentHash] = struct{}{}
		res = append(res, a)
	}
	return res
}

// NormalizeKeywords trims keywords and drops empty ones. Case is preserved.
func NormalizeKeywords(raw []string) []string {
	res := make([]string, 0, len(raw))
	for _, k := range raw {
		if k = strings.TrimSpace(k); k != "" {
			res = append(res, k)
		}
	}
	return res
}

// FilterByKeywords keeps candidates whose title or content contains any keyword as a literal,
// case-sensitive substring. With no keywords left after normalization candidates are returned as is.
func FilterByKeywords(candidates []domain.Article, keywords []string) []domain.Article {
	keywords = NormalizeKeywords(keywords)
	if len(keywords) == 0 {
		return candidates
	}
	res := make([]domain.Article, 0, len(candidates))
	for _, a := range candidates {
		for _, k := range keywords {
			if strings.Contains(a.Title, k) || strings.Contains(a.Content, k) {
				res = append(res, a)
				break
			}
		}
	}
	return res
}
