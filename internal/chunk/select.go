package chunk

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultCharBudget bounds how much article text reaches the model.
	DefaultCharBudget = 4000
	// DefaultMinParagraphs is the structure threshold below which plain
	// truncation beats selective chunking.
	DefaultMinParagraphs = 3

	// separatorAllowance accounts for the blank line joining paragraphs.
	separatorAllowance = 2

	ellipsis = "..."
)

var (
	multiBlankExpr = regexp.MustCompile(`\n{3,}`)
	spaceRunExpr   = regexp.MustCompile(`[ \t]{2,}`)

	// Lines that are pure ad artifacts, dropped during cleaning.
	adLineExpr = regexp.MustCompile(`(?im)^\s*(advertisement|sponsored content|sign up for our newsletter\.?)\s*$`)
)

// Select picks the paragraphs of content worth sending to the model under
// charBudget. The lead and closing paragraphs are always kept so the
// narrative bookends survive, the inner bookends join them when the budget
// allows, and the rest are added greedily by score. Output is always in
// document order: summarization quality depends on narrative coherence,
// not fact-density order.
func Select(content, title string, charBudget, minParagraphs int) string {
	if charBudget <= 0 {
		charBudget = DefaultCharBudget
	}
	if minParagraphs <= 0 {
		minParagraphs = DefaultMinParagraphs
	}

	cleaned := Clean(content)
	if len(cleaned) <= charBudget {
		return cleaned
	}

	scored := ScoreAll(cleaned, title)
	if len(scored) <= minParagraphs {
		return truncateAtWord(cleaned, charBudget)
	}

	total := len(scored)
	include := make(map[int]bool, total)
	used := 0

	// Lead and closing paragraphs are kept no matter how they score; the
	// inner bookends (second, second-to-last) join them when they fit.
	for _, i := range []int{0, total - 1} {
		if !include[i] {
			include[i] = true
			used += scored[i].Length + separatorAllowance
		}
	}
	for _, i := range []int{1, total - 2} {
		if include[i] {
			continue
		}
		if used+scored[i].Length+separatorAllowance > charBudget {
			continue
		}
		include[i] = true
		used += scored[i].Length + separatorAllowance
	}

	byScore := make([]ScoredParagraph, len(scored))
	copy(byScore, scored)
	sort.SliceStable(byScore, func(a, b int) bool {
		return byScore[a].Score > byScore[b].Score
	})

	for _, candidate := range byScore {
		if include[candidate.Index] {
			continue
		}
		if used+candidate.Length+separatorAllowance > charBudget {
			break
		}
		include[candidate.Index] = true
		used += candidate.Length + separatorAllowance
	}

	selected := make([]ScoredParagraph, 0, len(include))
	for _, p := range scored {
		if include[p.Index] {
			selected = append(selected, p)
		}
	}
	sort.Slice(selected, func(a, b int) bool {
		return selected[a].Index < selected[b].Index
	})

	parts := make([]string, 0, len(selected))
	for _, p := range selected {
		parts = append(parts, p.Text)
	}
	result := strings.Join(parts, "\n\n")

	if len(result) > charBudget {
		result = truncateAtWord(result, charBudget)
	}
	return result
}

// Clean normalizes whitespace and strips ad-artifact lines.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = adLineExpr.ReplaceAllString(text, "")
	text = spaceRunExpr.ReplaceAllString(text, " ")
	text = multiBlankExpr.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// truncateAtWord cuts at the last whole word under limit and appends an
// ellipsis marker.
func truncateAtWord(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	truncated := text[:cut]
	if idx := strings.LastIndexAny(truncated, " \n\t"); idx > 0 {
		truncated = truncated[:idx]
	}
	return strings.TrimSpace(truncated) + ellipsis
}
