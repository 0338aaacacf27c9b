// Package enhance implements the legal database enhancement transform: it
// derives stable identifiers, searchable text fields, keywords, and tags for
// every chapter and article, and stamps the document metadata.
package enhance

import (
	"fmt"
	"strings"
	"time"

	"github.com/South-33/Elixer/pkg/legaldb"
)

const (
	// chapterIDPrefix and articleIDInfix define the derived identifier
	// scheme: "chap_<n>" for chapters, "chap_<n>_art_<m>" for articles.
	chapterIDPrefix = "chap_"
	articleIDInfix  = "_art_"

	// pointSeparator joins article points inside fullText.
	pointSeparator = "; "
)

// Enhancer derives identifiers, text summaries, and metadata for legal
// database documents.
type Enhancer struct {
	// Now supplies the timestamp recorded as metadata.last_updated.
	// Defaults to time.Now when nil.
	Now func() time.Time
}

// New returns an Enhancer using the wall clock.
func New() *Enhancer {
	return &Enhancer{Now: time.Now}
}

// Enhance transforms doc in place. Chapters are processed in document order
// and articles within each chapter in order, so the output is fully
// deterministic from file order. A document without chapters is valid;
// metadata is updated regardless.
func (e *Enhancer) Enhance(doc *legaldb.Document) error {
	for i, chapter := range doc.Chapters {
		if !chapter.Number.IsSet() {
			return &legaldb.MissingFieldError{
				Record: "chapter",
				Field:  "chapter_number",
				Path:   fmt.Sprintf("chapters[%d]", i),
			}
		}
		chapter.ID = chapterIDPrefix + chapter.Number.String()

		for j, article := range chapter.Articles {
			path := fmt.Sprintf("chapters[%d].articles[%d]", i, j)
			if !article.Number.IsSet() {
				return &legaldb.MissingFieldError{
					Record: "article",
					Field:  "article_number",
					Path:   path,
				}
			}
			if article.Content == nil {
				return &legaldb.MissingFieldError{
					Record: "article",
					Field:  "content",
					Path:   path,
				}
			}

			article.ID = chapter.ID + articleIDInfix + article.Number.String()
			article.FullText = *article.Content + " " + strings.Join(article.Points, pointSeparator)
			article.Keywords = ExtractKeywords(article.FullText)
			// Overwrites any tags the input carried.
			article.Tags = []string{chapter.Title}
		}
	}

	if doc.Metadata == nil {
		doc.Metadata = make(map[string]interface{})
	}
	now := e.Now
	if now == nil {
		now = time.Now
	}
	doc.Metadata["enhanced"] = true
	doc.Metadata["last_updated"] = now().Format("2006-01-02")

	return nil
}

// EnhanceFile loads the database at inputPath, enhances it, and writes the
// result to outputPath, overwriting any existing file there. The input file
// is never modified. Errors from loading, enhancing, or writing propagate
// unchanged; nothing is written when the transform fails.
func (e *Enhancer) EnhanceFile(inputPath, outputPath string) error {
	doc, err := legaldb.Load(inputPath)
	if err != nil {
		return err
	}
	if err := e.Enhance(doc); err != nil {
		return err
	}
	return legaldb.Save(outputPath, doc)
}
