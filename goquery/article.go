package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsbrief"
	"golang.org/x/net/html"
)

// Content length thresholds, in characters.
const (
	// MinContentLength is the shortest selected content block that is kept.
	// Shorter blocks are replaced by the paragraph fallback.
	MinContentLength = 100

	// MinParagraphLength is the length a paragraph must exceed to be part of
	// the paragraph fallback.
	MinParagraphLength = 20
)

// TitleSelectors are tried in order; the first selector whose first match
// has non-empty text provides the title.
var TitleSelectors = []string{
	"h1",
	"title",
	".headline",
	".article-title",
	`[class*="title"]`,
	`[class*="headline"]`,
}

// ContentSelectors locate candidate article containers. The longest text
// across all matches of all selectors wins.
var ContentSelectors = []string{
	"article",
	".article-content",
	".post-content",
	".entry-content",
	`[class*="article"]`,
	`[class*="content"]`,
	".story-body",
	"main",
}

// NoiseSelector matches elements that never contribute to article text.
const NoiseSelector = "script, style, nav, footer, header, aside"

// Ensure Extractor implements newsbrief.Extractor at compile time.
var _ newsbrief.Extractor = (*Extractor)(nil)

// Extractor locates article title and body text in arbitrary news markup
// using ordered CSS selector heuristics. It has no site-specific rules.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns the title and whitespace-normalized body
// text. Title is empty when no selector matches. Content is empty when
// neither a content container nor the paragraph fallback yields text.
func (e *Extractor) Extract(rawHTML string) (*newsbrief.ExtractResult, error) {
	// With scripting disabled <noscript> children are parsed as elements,
	// so their markup never leaks into Text().
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, newsbrief.Errorf(newsbrief.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	// Title runs before noise removal so headings inside <header> count.
	title := firstText(doc, TitleSelectors)

	doc.Find(NoiseSelector).Remove()

	content := longestText(doc, ContentSelectors)
	if newsbrief.RuneLen(content) < MinContentLength {
		content = paragraphText(doc)
	}

	return &newsbrief.ExtractResult{
		Title:   title,
		Content: newsbrief.NormalizeWhitespace(content),
	}, nil
}

// firstText returns the trimmed text of the first element matched by the
// first selector that yields non-empty text. Only the first match of each
// selector is considered.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// longestText returns the longest trimmed text among all elements matched by
// any of the selectors. On equal length the first one seen wins.
func longestText(doc *goquery.Document, selectors []string) string {
	var longest string
	longestLen := 0
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if n := newsbrief.RuneLen(text); n > longestLen {
				longest, longestLen = text, n
			}
		})
	}
	return longest
}

// paragraphText joins the text of every paragraph longer than
// MinParagraphLength with single spaces.
func paragraphText(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if newsbrief.RuneLen(text) > MinParagraphLength {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}
