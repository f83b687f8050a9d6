package content

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	// minReadableLength is the threshold below which the readability
	// result is considered a miss and the structural fallback runs.
	minReadableLength = 50
	// minParagraphTextLength filters out nav crumbs and share buttons
	// that survive element stripping.
	minParagraphTextLength = 30
)

// Extract produces plain-text article content from raw HTML. The primary
// path is readability-style boilerplate removal; if that yields too little,
// a structural goquery pass locates the main container and concatenates its
// paragraphs. Malformed HTML degrades to an empty string, never an error.
func Extract(html, pageURL string) string {
	if text := extractReadable(html, pageURL); len(strings.TrimSpace(text)) > minReadableLength {
		return strings.TrimSpace(text)
	}
	return extractStructural(html)
}

func extractReadable(html, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" {
		// readability needs a base URL to resolve relative links.
		parsed = &url.URL{Scheme: "https", Host: "localhost"}
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return ""
	}
	return article.TextContent
}

func extractStructural(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style, nav, header, footer, aside, noscript").Remove()

	container := findMainContainer(doc)
	if container == nil || container.Length() == 0 {
		return ""
	}

	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > minParagraphTextLength {
			parts = append(parts, text)
		}
	})
	if len(parts) > 0 {
		return strings.Join(parts, "\n\n")
	}

	return strings.TrimSpace(container.Text())
}

// findMainContainer walks the priority chain: <article>, <main>, any element
// whose class mentions article/content, a div.post, then the document body.
func findMainContainer(doc *goquery.Document) *goquery.Selection {
	if s := doc.Find("article").First(); s.Length() > 0 {
		return s
	}
	if s := doc.Find("main").First(); s.Length() > 0 {
		return s
	}

	var byClass *goquery.Selection
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		lower := strings.ToLower(class)
		if strings.Contains(lower, "article") || strings.Contains(lower, "content") {
			byClass = s
			return false
		}
		return true
	})
	if byClass != nil {
		return byClass
	}

	if s := doc.Find("div.post").First(); s.Length() > 0 {
		return s
	}
	if s := doc.Find("body").First(); s.Length() > 0 {
		return s
	}
	return nil
}
