package validate

import (
	"context"
	"log/slog"
	"strings"
)

const (
	judgeVerdictConfidence = 0.85
	degradedConfidence     = 0.5
)

// Judge asks a model whether a borderline summary is genuine. The verdict
// is expected to contain VALID or INVALID.
type Judge interface {
	JudgeSummary(ctx context.Context, summary string) (string, error)
}

// Validator is the two-stage cascade: fast rules, then a model-assisted
// check for borderline results.
type Validator struct {
	judge  Judge
	logger *slog.Logger
}

// New wires an optional judge; with a nil judge only stage one ever runs.
func New(judge Judge, logger *slog.Logger) *Validator {
	return &Validator{judge: judge, logger: logger}
}

// Validate runs the rule checks and, when the rules are unsure (confidence
// below the borderline threshold) and a judge is available, escalates to
// the model. A judge outage or an ambiguous verdict degrades to accepting
// the summary at confidence 0.5.
func (v *Validator) Validate(ctx context.Context, summary string, useFallback bool) Result {
	ruleResult := ValidateRules(summary)

	if ruleResult.Confidence >= BorderlineThreshold {
		if !ruleResult.Valid {
			v.debug("summary rejected by rules", "reason", ruleResult.Reason)
		}
		return ruleResult
	}

	if !useFallback || v.judge == nil {
		return ruleResult
	}

	v.debug("borderline summary, escalating to model", "confidence", ruleResult.Confidence)

	verdict, err := v.judge.JudgeSummary(ctx, summary)
	if err != nil {
		v.debug("judge unavailable, defaulting to accept", "error", err)
		return Result{Valid: true, Reason: "judge unavailable, defaulting to accept", Confidence: degradedConfidence}
	}

	upper := strings.ToUpper(verdict)
	switch {
	case strings.Contains(upper, "INVALID"):
		return Result{Valid: false, Reason: "model classified as invalid/refusal", Confidence: judgeVerdictConfidence}
	case strings.Contains(upper, "VALID"):
		return Result{Valid: true, Reason: "model classified as valid", Confidence: judgeVerdictConfidence}
	default:
		v.debug("ambiguous judge verdict, defaulting to accept", "verdict", verdict)
		return Result{Valid: true, Reason: "ambiguous judge verdict, defaulting to accept", Confidence: degradedConfidence}
	}
}

func (v *Validator) debug(msg string, args ...any) {
	if v.logger != nil {
		v.logger.Debug(msg, args...)
	}
}
