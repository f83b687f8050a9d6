package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"newsbrief/internal/ports"
	"newsbrief/internal/trace"
	"newsbrief/internal/validate"
)

const (
	summaryTemperature = 0.3
	summaryNumPredict  = 500
	judgeTemperature   = 0.1
	judgeNumPredict    = 10
)

// OllamaClient talks to a local Ollama server over its generate API.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
	recorder   *trace.Recorder
}

var (
	_ ports.TextGenerator = (*OllamaClient)(nil)
	_ ports.Summarizer    = (*OllamaClient)(nil)
	_ validate.Judge      = (*OllamaClient)(nil)
)

// NewOllamaClient builds a client; recorder may be nil to disable tracing.
func NewOllamaClient(baseURL, model string, recorder *trace.Recorder) *OllamaClient {
	return &OllamaClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		model:    model,
		recorder: recorder,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends one prompt and returns the model's full response text.
func (c *OllamaClient) Generate(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	return c.generate(ctx, "generate", prompt, opts)
}

// Summarize produces an analyst-style bullet summary of one article.
func (c *OllamaClient) Summarize(ctx context.Context, title, excerpt string) (string, error) {
	prompt := fmt.Sprintf(`You are a financial analyst writing for busy retail investors.

Summarize the following news article in 2-4 short bullet points.
Rules:
- Lead with the concrete facts: names, numbers, dates.
- No preamble, no meta-commentary about the article itself.
- End with a final line starting exactly with "So what?" that explains
  why an investor should care.

Title: %s

Article:
%s

Summary:`, title, excerpt)

	return c.generate(ctx, "summarize", prompt, ports.GenerateOptions{
		Temperature: summaryTemperature,
		NumPredict:  summaryNumPredict,
	})
}

// JudgeSummary asks the model whether a summary is a genuine summary or a
// refusal/meta answer. The response should contain VALID or INVALID.
func (c *OllamaClient) JudgeSummary(ctx context.Context, summary string) (string, error) {
	prompt := fmt.Sprintf(`You are a strict quality checker for news summaries.

Below is a text that is supposed to be a financial news summary.
Answer with exactly one word: VALID if it is a genuine summary with
concrete information, or INVALID if it is a refusal, an apology, or
commentary about the article instead of a summary of it.

Text:
%s

Answer:`, summary)

	return c.generate(ctx, "judge", prompt, ports.GenerateOptions{
		Temperature: judgeTemperature,
		NumPredict:  judgeNumPredict,
	})
}

func (c *OllamaClient) generate(ctx context.Context, kind, prompt string, opts ports.GenerateOptions) (string, error) {
	started := time.Now()

	response, err := c.post(ctx, prompt, opts)

	call := trace.Call{
		Kind:      kind,
		Model:     c.model,
		Prompt:    prompt,
		Response:  response,
		StartedAt: started,
		Duration:  time.Since(started),
	}
	if err != nil {
		call.Err = err.Error()
	}
	c.recorder.Record(call)

	return response, err
}

func (c *OllamaClient) post(ctx context.Context, prompt string, opts ports.GenerateOptions) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: opts.Temperature,
			NumPredict:  opts.NumPredict,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal ollama payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("ollama error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	return strings.TrimSpace(decoded.Response), nil
}
