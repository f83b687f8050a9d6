package content

import (
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Earnings Beat</title><script>var ads = true;</script></head>
<body>
  <nav><a href="/">Home</a><a href="/markets">Markets</a></nav>
  <header>Daily Market Wire</header>
  <article>
    <p>Acme Corporation reported third-quarter earnings that comfortably beat Wall Street expectations on Tuesday.</p>
    <p>Share</p>
    <p>Revenue climbed 14 percent to 2.3 billion dollars while operating margin expanded for the fourth straight quarter.</p>
    <p>Management raised full-year guidance and announced an additional share buyback program worth 500 million dollars.</p>
  </article>
  <footer>Copyright 2026</footer>
</body>
</html>`

func TestExtractArticleParagraphs(t *testing.T) {
	t.Parallel()

	text := Extract(articleHTML, "https://example.com/earnings-beat")

	if !strings.Contains(text, "beat Wall Street expectations") {
		t.Fatalf("lead paragraph missing from extraction: %q", text)
	}
	if !strings.Contains(text, "share buyback program") {
		t.Fatalf("closing paragraph missing from extraction: %q", text)
	}
	if strings.Contains(text, "var ads") {
		t.Fatalf("script content leaked into extraction: %q", text)
	}
}

func TestExtractStructuralDropsShortParagraphs(t *testing.T) {
	t.Parallel()

	text := extractStructural(articleHTML)
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) == "Share" {
			t.Fatalf("short share-button paragraph survived: %q", text)
		}
	}
	if !strings.Contains(text, "Acme Corporation") {
		t.Fatalf("real paragraph missing: %q", text)
	}
}

func TestExtractStructuralClassContainer(t *testing.T) {
	t.Parallel()

	html := `<html><body>
	  <div class="sidebar">ignore me entirely please and thank you</div>
	  <div class="story-content">
	    <p>The Federal Reserve left interest rates unchanged at its meeting on Wednesday afternoon.</p>
	  </div>
	</body></html>`

	text := extractStructural(html)
	if !strings.Contains(text, "Federal Reserve") {
		t.Fatalf("class-matched container not used: %q", text)
	}
}

func TestExtractStructuralBodyFallback(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>Markets rallied broadly on Friday as inflation data came in cooler than forecast.</p></body></html>`
	text := extractStructural(html)
	if !strings.Contains(text, "Markets rallied broadly") {
		t.Fatalf("body fallback failed: %q", text)
	}
}

func TestExtractMalformedHTML(t *testing.T) {
	t.Parallel()

	if text := Extract("", ""); text != "" {
		t.Fatalf("expected empty result for empty input, got %q", text)
	}
	// Unbalanced tags must degrade gracefully, never panic.
	_ = Extract("<div><p>half open", "https://example.com/x")
}

func TestExtractStructuralContainerTextFallback(t *testing.T) {
	t.Parallel()

	// No paragraph clears the 30-char bar, so the container's full text is used.
	html := `<html><body><article>Quick note.<span> Markets closed early.</span></article></body></html>`
	text := extractStructural(html)
	if !strings.Contains(text, "Markets closed early") {
		t.Fatalf("container text fallback failed: %q", text)
	}
}
