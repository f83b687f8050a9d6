package broadcast

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"newsbrief/internal/ports"
)

type fakeGenerator struct {
	prompt   string
	opts     ports.GenerateOptions
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	f.prompt = prompt
	f.opts = opts
	return f.response, f.err
}

func TestGeneratePromptAndOptions(t *testing.T) {
	t.Parallel()

	model := &fakeGenerator{response: "Good morning, traders... the bulls are running."}
	g := NewGenerator(model, DefaultConfig())

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	script, err := g.Generate(context.Background(), date, []string{"Summary one.", "Summary two.", "Summary three."})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if script == "" {
		t.Fatal("empty script")
	}
	if model.opts.Temperature != scriptTemperature || model.opts.NumPredict != scriptNumPredict {
		t.Fatalf("unexpected options: %+v", model.opts)
	}
	if !strings.Contains(model.prompt, "Story 2:\nSummary two.") {
		t.Fatal("summaries not numbered in prompt")
	}
	if !strings.Contains(model.prompt, "August 28, 2026") {
		t.Fatal("broadcast date missing from prompt")
	}
	if !strings.Contains(model.prompt, "approximately 300 words") {
		t.Fatal("word budget missing from prompt")
	}
	// 1.5 content minutes over 3 stories.
	if !strings.Contains(model.prompt, "~30 seconds each") {
		t.Fatal("per-story timing missing from prompt")
	}
}

func TestGenerateRequiresSummaries(t *testing.T) {
	t.Parallel()

	g := NewGenerator(&fakeGenerator{response: "x"}, DefaultConfig())
	if _, err := g.Generate(context.Background(), time.Now(), nil); err == nil {
		t.Fatal("expected error with no summaries")
	}
}

func TestGenerateRejectsEmptyResponse(t *testing.T) {
	t.Parallel()

	g := NewGenerator(&fakeGenerator{response: "   "}, DefaultConfig())
	if _, err := g.Generate(context.Background(), time.Now(), []string{"s"}); err == nil {
		t.Fatal("expected error on empty model output")
	}
}

func TestCleanScript(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"markdown bold", "**Opening Hook** The bulls are out.", "Opening Hook The bulls are out."},
		{"headers", "## Headlines\nMarkets rallied.", "Headlines\nMarkets rallied."},
		{"stage directions", "Welcome back [music fades] folks (pause) to the show.", "Welcome back folks to the show."},
		{"laughs direction", "That's rich (laughs heartily) indeed.", "That's rich indeed."},
		{"excess dots", "And then...... silence.", "And then... silence."},
		{"preamble line", "Here is the script:\n\nGood morning traders.", "Good morning traders."},
		{"double spaces", "Too  many   spaces.", "Too many spaces."},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanScript(tc.in); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestWriterSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWriter(dir)

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	path, err := w.Save(date, "script body")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(path, "script-2026-08-28.txt") {
		t.Fatalf("unexpected path: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "script body" {
		t.Fatalf("unexpected contents: %q", data)
	}
}
