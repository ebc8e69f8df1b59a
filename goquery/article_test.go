package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/newsbrief"
	"github.com/fwojciec/newsbrief/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsbrief.Extractor at compile time.
var _ newsbrief.Extractor = (*goquery.Extractor)(nil)

// body returns a paragraph of the given length made of repeated letters.
func body(letter string, n int) string {
	return strings.Repeat(letter, n)
}

func TestExtractor_Extract_Title(t *testing.T) {
	t.Parallel()

	t.Run("uses h1 text trimmed", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Daily Planet - News</title></head>
<body>
<h1>
	City Council Approves New Park
</h1>
<article><p>` + body("a", 150) + `</p></article>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "City Council Approves New Park", result.Title)
	})

	t.Run("falls back to title element when h1 is empty", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>  Daily Planet - Storm Warning  </title></head>
<body><h1>   </h1><p>Nothing much here.</p></body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Daily Planet - Storm Warning", result.Title)
	})

	t.Run("uses headline class when no heading or title exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="headline">Markets Rally on Rate Cut</div>
<div class="page-title">Business</div>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Markets Rally on Rate Cut", result.Title)
	})

	t.Run("matches partial title class names", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><span class="story-title-main">Local Team Wins Final</span></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Local Team Wins Final", result.Title)
	})

	t.Run("finds h1 inside header before noise removal", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<header><h1>Election Results Are In</h1></header>
<article><p>` + body("b", 150) + `</p></article>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Election Results Are In", result.Title)
		assert.Equal(t, body("b", 150), result.Content)
	})

	t.Run("returns empty title when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Just a paragraph without any heading at all.</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, result.Title)
	})
}

func TestExtractor_Extract_Content(t *testing.T) {
	t.Parallel()

	t.Run("selects longest block regardless of scan order", func(t *testing.T) {
		t.Parallel()

		short := body("s", 50)
		long := body("l", 200)

		first := `<html><body><article>` + short + `</article><main>` + long + `</main></body></html>`
		second := `<html><body><article>` + long + `</article><main>` + short + `</main></body></html>`

		ext := goquery.NewExtractor()
		r1, err := ext.Extract(first)
		require.NoError(t, err)
		r2, err := ext.Extract(second)
		require.NoError(t, err)

		assert.Equal(t, long, r1.Content)
		assert.Equal(t, long, r2.Content)
	})

	t.Run("first seen wins on equal length", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>` + body("m", 150) + `</main><article>` + body("a", 150) + `</article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, body("a", 150), result.Content)
	})

	t.Run("considers every match of a selector", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="post-content">` + body("x", 120) + `</div>
<div class="post-content">` + body("y", 180) + `</div>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, body("y", 180), result.Content)
	})

	t.Run("strips noise elements before scanning", func(t *testing.T) {
		t.Parallel()

		text := "The storm made landfall early on Tuesday morning and knocked out power to thousands of homes along the coast."
		html := `<html><body>
<header class="article-header">` + body("h", 600) + `</header>
<nav class="content-nav">` + body("n", 400) + `</nav>
<article>
<p>` + text + `</p>
<script>var tracking = "` + body("j", 300) + `";</script>
<style>.ad { display: none; }</style>
</article>
<aside class="article-sidebar">` + body("r", 500) + `</aside>
<footer class="content-footer">` + body("f", 500) + `</footer>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, text, result.Content)
	})

	t.Run("keeps noscript text but not its markup", func(t *testing.T) {
		t.Parallel()

		text := "The mayor announced a new transit plan for the eastern districts at a press conference downtown today."
		html := `<html><body><article>
<p>` + text + `</p>
<noscript><img src="https://px.example.com/t.gif" alt=""></noscript>
</article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, text, result.Content)
		assert.NotContains(t, result.Content, "<img")
	})

	t.Run("falls back to long paragraphs when content is short", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>
<p>Short one.</p>
<p>This paragraph is clearly longer than twenty.</p>
</article>
<p>Tiny.</p>
<p>  Another paragraph with enough characters.  </p>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "This paragraph is clearly longer than twenty. Another paragraph with enough characters.", result.Content)
	})

	t.Run("excludes paragraphs of exactly the minimum length", func(t *testing.T) {
		t.Parallel()

		exact := body("e", goquery.MinParagraphLength)
		longer := body("g", goquery.MinParagraphLength+1)
		html := `<html><body><p>` + exact + `</p><p>` + longer + `</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longer, result.Content)
	})

	t.Run("keeps content of exactly the minimum length", func(t *testing.T) {
		t.Parallel()

		block := body("k", goquery.MinContentLength)
		html := `<html><body><article>` + block + `</article><p>` + body("p", 40) + `</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, block, result.Content)
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<p>The council met on Monday.</p>

<p>It voted   to approve the budget,
which includes funding for three new parks and a library renovation downtown.</p>
</article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "The council met on Monday. It voted to approve the budget, which includes funding for three new parks and a library renovation downtown.", result.Content)
	})

	t.Run("returns empty content when nothing usable exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Empty</title></head><body><div>tiny</div><p>short text</p></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Empty", result.Title)
		assert.Empty(t, result.Content)
	})
}
