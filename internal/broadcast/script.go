// Package broadcast turns digest summaries into a spoken radio script.
package broadcast

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"newsbrief/internal/ports"
)

const (
	scriptTemperature = 0.7
	scriptNumPredict  = 1500
	introOutroMinutes = 0.5
)

const systemPrompt = `You are "The Street Beat" - a fast-paced, no-nonsense Wall Street radio host known for breaking down financial news with sharp wit and insider credibility. Think CNBC meets Bloomberg Radio, with a touch of irreverent charm.

Your personality:
- Confident and authoritative, but never arrogant
- Use colorful market metaphors ("the bulls are stampeding", "bears are sharpening their claws")
- Pepper in classic trading floor expressions ("let's cut through the noise", "follow the smart money")
- Occasionally address listeners directly ("Here's what you need to know before the bell")
- Keep energy high but professional - this isn't a podcast, it's premium market intelligence

Voice characteristics for TTS:
- Use natural speech patterns with varied sentence lengths
- Include brief pauses (marked with "...") for dramatic effect
- Avoid complex nested sentences that sound unnatural when spoken
- Write numbers as words for better TTS pronunciation (e.g., "fifty million" not "50M")`

const scriptTemplate = `<role>
%s
</role>

<instructions>
Transform the following market summaries into a cohesive %.1f-minute radio broadcast script.

Structure your script as follows:
1. **Opening Hook** (10-15 seconds): A punchy one-liner that grabs attention and sets the market mood
2. **Headlines Rundown** (15-20 seconds): Quick-fire overview of what's coming ("We've got three movers shaking up your portfolio today...")
3. **Main Stories** (%d stories, ~%d seconds each): For each story:
   - Transition phrase connecting to previous story
   - The key news in plain English
   - Why it matters to listeners' portfolios
   - One sharp takeaway or forward-looking comment
4. **Closing Kicker** (10-15 seconds): Memorable sign-off with market wisdom or call to action

IMPORTANT FORMATTING RULES:
- Write ONLY the spoken words - no stage directions, no [brackets], no (parentheses)
- Use "..." for natural pauses
- Write all numbers and percentages as spoken words
- Keep sentences punchy - average 10-15 words
- Total script should be approximately %d words for %.1f-minute read
</instructions>

<date>
%s
</date>

<summaries>
%s
</summaries>

<output>
Write the complete radio script now. Start directly with the opening hook - no preamble.
</output>`

// Config tunes the length of the generated script.
type Config struct {
	DurationMinutes float64
	WordsPerMinute  int
}

// DefaultConfig targets a two-minute read at a typical speaking rate.
func DefaultConfig() Config {
	return Config{DurationMinutes: 2.0, WordsPerMinute: 150}
}

// TargetWordCount is the word budget the model is asked to hit.
func (c Config) TargetWordCount() int {
	return int(c.DurationMinutes * float64(c.WordsPerMinute))
}

// Generator produces radio scripts from article summaries.
type Generator struct {
	model  ports.TextGenerator
	config Config
}

func NewGenerator(model ports.TextGenerator, config Config) *Generator {
	if config.DurationMinutes <= 0 {
		config = DefaultConfig()
	}
	return &Generator{model: model, config: config}
}

// Generate builds the prompt, calls the model, and cleans the result for
// TTS consumption.
func (g *Generator) Generate(ctx context.Context, date time.Time, summaries []string) (string, error) {
	if len(summaries) == 0 {
		return "", fmt.Errorf("no summaries provided for script generation")
	}

	storyCount := len(summaries)
	contentMinutes := g.config.DurationMinutes - introOutroMinutes
	timePerStory := int(contentMinutes * 60 / float64(storyCount))

	prompt := fmt.Sprintf(scriptTemplate,
		systemPrompt,
		g.config.DurationMinutes,
		storyCount,
		timePerStory,
		g.config.TargetWordCount(),
		g.config.DurationMinutes,
		date.Format("January 2, 2006"),
		formatSummaries(summaries),
	)

	raw, err := g.model.Generate(ctx, prompt, ports.GenerateOptions{
		Temperature: scriptTemperature,
		NumPredict:  scriptNumPredict,
	})
	if err != nil {
		return "", fmt.Errorf("generate script: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("model returned empty script")
	}

	return CleanScript(raw), nil
}

func formatSummaries(summaries []string) string {
	lines := make([]string, 0, len(summaries))
	for i, summary := range summaries {
		lines = append(lines, fmt.Sprintf("Story %d:\n%s", i+1, strings.TrimSpace(summary)))
	}
	return strings.Join(lines, "\n\n")
}

var (
	boldExpr      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicExpr    = regexp.MustCompile(`\*([^*]+)\*`)
	headerExpr    = regexp.MustCompile(`#{1,6}\s*`)
	bracketExpr   = regexp.MustCompile(`\[[^\]]+\]`)
	directionExpr = regexp.MustCompile(`(?i)\((?:pause|beat|laughs?|sighs?)[^)]*\)`)
	newlineExpr   = regexp.MustCompile(`\n{3,}`)
	spaceExpr     = regexp.MustCompile(` {2,}`)
	dotsExpr      = regexp.MustCompile(`\.{4,}`)
)

var preambles = []string{
	"here is the script",
	"here's the script",
	"here is your script",
	"here's your script",
	"radio script:",
	"script:",
}

// CleanScript strips model artifacts that would be read aloud by TTS:
// markdown, bracketed stage directions, and "here is the script" preambles.
func CleanScript(text string) string {
	text = boldExpr.ReplaceAllString(text, "$1")
	text = italicExpr.ReplaceAllString(text, "$1")
	text = headerExpr.ReplaceAllString(text, "")
	text = bracketExpr.ReplaceAllString(text, "")
	text = directionExpr.ReplaceAllString(text, "")

	text = newlineExpr.ReplaceAllString(text, "\n\n")
	text = spaceExpr.ReplaceAllString(text, " ")
	text = dotsExpr.ReplaceAllString(text, "...")

	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := make([]string, 0, len(lines))
	skipBlank := false
	for i, line := range lines {
		if i == 0 && hasPreamble(line) {
			skipBlank = true
			continue
		}
		if skipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		skipBlank = false
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

func hasPreamble(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, preamble := range preambles {
		if strings.HasPrefix(lower, preamble) {
			return true
		}
	}
	return false
}
