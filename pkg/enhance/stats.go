package enhance

import (
	"sort"
	"strings"

	"github.com/South-33/Elixer/pkg/legaldb"
)

// DatabaseStats summarizes the shape and keyword profile of a database.
type DatabaseStats struct {
	Chapters         int            `json:"chapters"`
	Articles         int            `json:"articles"`
	Points           int            `json:"points"`
	ArticlesWithIDs  int            `json:"articles_with_ids"`
	DistinctKeywords int            `json:"distinct_keywords"`
	TopKeywords      []KeywordCount `json:"top_keywords,omitempty"`
}

// KeywordCount pairs a keyword with the number of articles it appears in.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Stats calculates statistics for doc. topN limits the TopKeywords list;
// zero or negative omits it. Works on both raw and enhanced databases: for
// raw input, keyword counts are derived on the fly without mutating doc.
func Stats(doc *legaldb.Document, topN int) DatabaseStats {
	stats := DatabaseStats{}
	frequency := make(map[string]int)

	for _, chapter := range doc.Chapters {
		stats.Chapters++
		for _, article := range chapter.Articles {
			stats.Articles++
			stats.Points += len(article.Points)
			if article.ID != "" {
				stats.ArticlesWithIDs++
			}

			keywords := article.Keywords
			if keywords == nil && article.Content != nil {
				// Mirrors the fullText the enhancer would build.
				fullText := *article.Content + " " + strings.Join(article.Points, pointSeparator)
				keywords = ExtractKeywords(fullText)
			}
			for _, kw := range keywords {
				frequency[kw]++
			}
		}
	}

	stats.DistinctKeywords = len(frequency)

	if topN > 0 && len(frequency) > 0 {
		counts := make([]KeywordCount, 0, len(frequency))
		for kw, n := range frequency {
			counts = append(counts, KeywordCount{Keyword: kw, Count: n})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].Count != counts[j].Count {
				return counts[i].Count > counts[j].Count
			}
			return counts[i].Keyword < counts[j].Keyword
		})
		if len(counts) > topN {
			counts = counts[:topN]
		}
		stats.TopKeywords = counts
	}

	return stats
}
