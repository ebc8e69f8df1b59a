package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/newsbrief"
	"github.com/fwojciec/newsbrief/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsbrief.Extractor at compile time.
var _ newsbrief.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Rail Strike Ends - The Morning Ledger</title>
<meta property="og:title" content="Rail Strike Ends After Two Weeks">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Rail Strike Ends After Two Weeks</h1>
<p>Rail workers returned to their posts on Monday after union leaders accepted a revised pay offer that raises wages by six percent over two years.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main article text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/sports">Sports</a></nav>
<article>
<h1>Drought Declared Across Three Counties</h1>
<p>State officials declared a drought emergency across three counties on Wednesday, citing reservoir levels at their lowest point in thirty years.</p>
<p>Residents are asked to limit outdoor watering to two days a week until further notice.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "drought emergency")
		assert.Equal(t, newsbrief.NormalizeWhitespace(result.Content), result.Content)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		require.Error(t, err)
	})
}
