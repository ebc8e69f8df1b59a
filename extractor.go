package newsbrief

// ExtractResult holds the title and body text parsed from an HTML page.
type ExtractResult struct {
	// Title is the page title. Empty if no candidate was found.
	Title string

	// Content is the article body as plain text.
	// Boilerplate (scripts, nav, footer, sidebar) has been removed.
	Content string
}

// Extractor parses raw HTML and locates the article it contains.
type Extractor interface {
	// Extract processes raw HTML and returns the title and body text.
	// An empty Content is not an error; callers decide whether it is usable.
	Extract(html string) (*ExtractResult, error)
}
