package content

import (
	"strings"
	"testing"
)

func TestIsBlockedEmptyInput(t *testing.T) {
	t.Parallel()

	if IsBlocked("") {
		t.Fatal("empty text must not be blocked")
	}
	if IsBlocked("   \n\t  ") {
		t.Fatal("whitespace-only text must not be blocked")
	}
}

func TestIsBlockedPaywallPage(t *testing.T) {
	t.Parallel()

	text := "Please subscribe to continue reading. This article is available to subscribers only."
	if !IsBlocked(text) {
		t.Fatal("paywall page not detected")
	}
}

func TestIsBlockedPhraseAnywhere(t *testing.T) {
	t.Parallel()

	padding := strings.Repeat("Stocks rose on Tuesday as investors weighed earnings. ", 30)
	text := padding + "Subscribe to Continue reading the rest of this story." + padding
	if !IsBlocked(text) {
		t.Fatal("block phrase inside long content not detected")
	}
}

func TestIsBlockedWeakIndicatorsShortPage(t *testing.T) {
	t.Parallel()

	// Under 500 chars with two distinct weak indicators.
	text := "This site needs javascript. We also use cookies to serve you."
	if !IsBlocked(text) {
		t.Fatal("short page with co-occurring weak indicators not detected")
	}

	// A single weak indicator is not enough.
	single := "We use cookies to improve your experience on our site."
	if IsBlocked(single) {
		t.Fatal("one weak indicator must not block")
	}
}

func TestIsBlockedWeakIndicatorsLongPage(t *testing.T) {
	t.Parallel()

	filler := strings.Repeat("The central bank held rates steady in a widely expected move. ", 20)
	text := filler + "Readers can subscribe to our newsletter. Pages render best with javascript."
	if IsBlocked(text) {
		t.Fatal("weak indicators on a long page must not block")
	}
}

func TestIsBlockedLegitimateArticle(t *testing.T) {
	t.Parallel()

	text := "Shares of Acme Corp jumped 8% after the company reported quarterly revenue " +
		"of $2.3 billion, beating analyst estimates. Management raised full-year guidance " +
		"citing strong demand across all segments."
	if IsBlocked(text) {
		t.Fatal("legitimate article flagged as blocked")
	}
}
