package content

import "strings"

// shortPageThreshold is the length under which weak indicators are trusted:
// genuine articles this short are rare.
const shortPageThreshold = 500

const minWeakIndicators = 2

// IsBlocked reports whether extracted text looks like a paywall, CAPTCHA,
// cookie wall, or other access-denial page rather than article content.
// Empty input is never blocked. Matching is case-insensitive; the first
// phrase hit wins.
func IsBlocked(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, phrase := range blockPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	if len(trimmed) < shortPageThreshold {
		distinct := 0
		for _, indicator := range weakIndicators {
			if strings.Contains(lower, indicator) {
				distinct++
			}
		}
		if distinct >= minWeakIndicators {
			return true
		}
	}

	return false
}
