package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Result is the outcome of summary validation. Confidence below
// BorderlineThreshold signals "rules are unsure, escalate to the model".
type Result struct {
	Valid      bool
	Reason     string
	Confidence float64
}

const (
	// MinSummaryLength is the trimmed length under which a summary is
	// rejected outright.
	MinSummaryLength = 80

	// structureMarker is the analyst-brief closer every good summary
	// carries; its absence is a soft signal only.
	structureMarker = "so what?"

	// BorderlineThreshold is the confidence under which stage two runs.
	BorderlineThreshold = 0.75

	strongRefusalConfidence = 0.95
	mediumRefusalConfidence = 0.6
	shortSummaryConfidence  = 0.9
	missingMarkerConfidence = 0.7
)

// High-confidence refusal patterns: clear rejections, content-policy
// language, apologies, or meta-commentary instead of an actual summary.
// Applied to the lowercased summary.
var strongRefusalPatterns = compileAll(
	`\bi cannot\b`,
	`\bi can't\b`,
	`\bi am unable to\b`,
	`\bi'm unable to\b`,
	`\bunable to (provide|generate|create|summarize|write)\b`,
	`\bcannot (provide|generate|create|summarize|write)\b`,
	`\bcontent policy\b`,
	`\bguidelines\b.*\b(prevent|restrict|prohibit)\b`,
	`\binappropriate\b`,
	`\bharmful content\b`,
	`\bi apologize\b.*\b(cannot|can't|unable)\b`,
	`\bi'm sorry\b.*\b(cannot|can't|unable)\b`,
	`\bsorry, but i\b`,
	`\bno information (available|provided|found)\b`,
	`\binsufficient information\b`,
	`\bcannot be summarized\b`,
	`\bnot enough (content|information|details)\b`,
	`^(this|the) article (discusses|talks about|is about|covers)\b`,
	`^(this|the) (text|content|passage) (discusses|talks about|is about)\b`,
)

// Medium-confidence patterns: hedging that might still wrap a usable
// summary. Deliberately scored below the escalation threshold.
var mediumRefusalPatterns = compileAll(
	`\bi don't have\b.*\b(access|information)\b`,
	`\bbased on the (provided|given|available)\b.*\blimited\b`,
	`\bthe article (does not|doesn't) (provide|contain|include)\b`,
	`\bno specific (details|data|numbers|figures)\b`,
	`\bgeneric\b.*\b(response|summary|content)\b`,
)

// ValidateRules runs the fast rule-based checks: refusal patterns first,
// then minimum length, then the soft structure check. The first failing
// check short-circuits. Pure function; never errors.
func ValidateRules(summary string) Result {
	lower := strings.ToLower(summary)

	for _, pattern := range strongRefusalPatterns {
		if pattern.MatchString(lower) {
			return Result{
				Valid:      false,
				Reason:     fmt.Sprintf("refusal pattern detected: %s", pattern.String()),
				Confidence: strongRefusalConfidence,
			}
		}
	}
	for _, pattern := range mediumRefusalPatterns {
		if pattern.MatchString(lower) {
			return Result{
				Valid:      false,
				Reason:     fmt.Sprintf("possible refusal pattern: %s", pattern.String()),
				Confidence: mediumRefusalConfidence,
			}
		}
	}

	if trimmed := len(strings.TrimSpace(summary)); trimmed < MinSummaryLength {
		return Result{
			Valid:      false,
			Reason:     fmt.Sprintf("summary too short (%d chars, minimum %d)", trimmed, MinSummaryLength),
			Confidence: shortSummaryConfidence,
		}
	}

	if !strings.Contains(lower, structureMarker) {
		return Result{
			Valid:      true,
			Reason:     `missing expected "so what?" structure`,
			Confidence: missingMarkerConfidence,
		}
	}

	return Result{Valid: true, Confidence: 1.0}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
