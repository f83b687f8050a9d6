package chunk

import (
	"regexp"
	"strings"
	"unicode"
)

// ScoredParagraph is ephemeral: produced and consumed within one selection
// pass, recomputed every call.
type ScoredParagraph struct {
	Index  int
	Text   string
	Score  float64
	Length int
}

// minParagraphLength drops fragments too short to carry signal.
const minParagraphLength = 50

// Weights and caps for the lexical scoring signals. Cheap signals ration
// expensive model calls: they pick the paragraphs most likely to hold
// decision-relevant facts and framing.
const (
	titleOverlapBonus = 2.0

	tickerWeight = 1.5
	tickerCap    = 4.5

	numericWeight = 1.0
	numericCap    = 5.0

	financialTermWeight = 0.5
	financialTermCap    = 4.0

	thesisPhraseWeight = 1.5
	thesisPhraseCap    = 4.5

	firstParagraphBonus      = 3.0
	secondParagraphBonus     = 1.5
	lastParagraphBonus       = 2.5
	secondToLastBonus        = 1.0
	shortParagraphMultiplier = 0.7
	shortParagraphLength     = 100
)

var (
	blankLineExpr = regexp.MustCompile(`\r?\n[ \t]*\r?\n`)
	tickerExpr    = regexp.MustCompile(`\b[A-Z]{1,5}\b`)
	numericExpr   = regexp.MustCompile(`\$[0-9][0-9,.]*(?:[kKmMbB]|(?:\s?(?:million|billion|trillion)))?|[0-9]+(?:\.[0-9]+)?%|\b[0-9]+\.[0-9]+\b`)
)

// SplitParagraphs splits article text on blank lines, or on a single line
// break that is followed by an uppercase letter (single-newline-separated
// paragraphs). Paragraphs under 50 characters are discarded entirely.
func SplitParagraphs(text string) []string {
	var paragraphs []string

	for _, block := range blankLineExpr.Split(text, -1) {
		var current strings.Builder
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if current.Len() > 0 && startsUpper(line) {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			if current.Len() > 0 {
				current.WriteByte(' ')
			}
			current.WriteString(line)
		}
		if current.Len() > 0 {
			paragraphs = append(paragraphs, current.String())
		}
	}

	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if len(p) >= minParagraphLength {
			kept = append(kept, p)
		}
	}
	return kept
}

// Score rates a paragraph's value for summarization: financial-information
// density, positional importance, and title relevance. Pure function; all
// contributions are independently capped before summing.
func Score(paragraph string, index, total int, title string) float64 {
	lower := strings.ToLower(paragraph)

	score := 0.0
	if overlapsTitle(lower, title) {
		score += titleOverlapBonus
	}

	score += capped(float64(len(tickerExpr.FindAllString(paragraph, -1)))*tickerWeight, tickerCap)
	score += capped(float64(len(numericExpr.FindAllString(paragraph, -1)))*numericWeight, numericCap)
	score += capped(countOccurrences(lower, financialTerms)*financialTermWeight, financialTermCap)
	score += capped(countOccurrences(lower, thesisPhrases)*thesisPhraseWeight, thesisPhraseCap)

	// Lead and conclusion carry the most standalone information in news
	// writing; a paragraph in a very short document may earn both bonuses.
	if index == 0 {
		score += firstParagraphBonus
	}
	if index == 1 {
		score += secondParagraphBonus
	}
	if index == total-1 {
		score += lastParagraphBonus
	}
	if index == total-2 {
		score += secondToLastBonus
	}

	if len(paragraph) < shortParagraphLength {
		score *= shortParagraphMultiplier
	}

	return score
}

// ScoreAll splits content and scores every surviving paragraph.
func ScoreAll(content, title string) []ScoredParagraph {
	paragraphs := SplitParagraphs(content)
	scored := make([]ScoredParagraph, 0, len(paragraphs))
	for i, p := range paragraphs {
		scored = append(scored, ScoredParagraph{
			Index:  i,
			Text:   p,
			Score:  Score(p, i, len(paragraphs), title),
			Length: len(p),
		})
	}
	return scored
}

// overlapsTitle reports whether any title word longer than three characters
// appears in the paragraph. Checked once, not per occurrence.
func overlapsTitle(lowerParagraph, title string) bool {
	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len(word) > 3 && strings.Contains(lowerParagraph, word) {
			return true
		}
	}
	return false
}

func countOccurrences(lowerText string, terms []string) float64 {
	count := 0
	for _, term := range terms {
		count += strings.Count(lowerText, term)
	}
	return float64(count)
}

func capped(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	return value
}

func startsUpper(line string) bool {
	for _, r := range line {
		return unicode.IsUpper(r)
	}
	return false
}
