package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"researchspark-backend/internal/credentials"
	"researchspark-backend/internal/llm"
	"researchspark-backend/internal/shared/metrics"
	"researchspark-backend/internal/shared/telemetry"
	"researchspark-backend/internal/shared/util"
)

// Service coordinates one analysis lifecycle at a time: prompt build, one
// external call, strict result validation. Dependencies are injected; there
// is no ambient state beyond the credential store it owns a reference to.
type Service struct {
	credentials *credentials.Store
	llm         llm.Client
	model       string
	lc          *lifecycle
}

// NewService constructs a Service.
func NewService(store *credentials.Store, client llm.Client, model string) *Service {
	return &Service{
		credentials: store,
		llm:         client,
		model:       model,
		lc:          newLifecycle(),
	}
}

// Analyze evaluates one research abstract. It issues at most one outbound
// call; credential problems are reported before any call is made. The
// context is the caller's: abandoning the request cancels the upstream call.
func (s *Service) Analyze(ctx context.Context, req Request) (Analysis, error) {
	text := strings.TrimSpace(req.ResearchText)
	if text == "" {
		return Analysis{}, ErrEmptyInput
	}

	cred, ok := s.credentials.Get()
	if !ok {
		s.lc.awaitCredential()
		return Analysis{}, ErrMissingCredential
	}
	if !cred.Validated {
		s.lc.awaitCredential()
		return Analysis{}, ErrInvalidCredential
	}

	if err := s.lc.begin(StateAnalyzing); err != nil {
		return Analysis{}, err
	}

	started := time.Now()
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"field":            req.Field,
		"word_count":       util.CountWords(text),
		"state_transition": "idle->analyzing",
	})

	prompt := llm.BuildPrompt(text, req.Field)
	raw, err := s.llm.Analyze(ctx, prompt, cred.Value)
	if err != nil {
		s.failAnalysis(err, started)
		return Analysis{}, err
	}

	result, err := ParseResult(raw)
	if err != nil {
		s.failAnalysis(err, started)
		return Analysis{}, err
	}

	analysis := Analysis{
		ID:         uuid.NewString(),
		Field:      req.Field,
		WordCount:  util.CountWords(text),
		Model:      s.model,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
		DurationMs: float64(time.Since(started).Microseconds()) / 1000.0,
	}
	s.lc.succeed(&analysis)
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDuration(time.Since(started))
	telemetry.Info("analysis.status", map[string]any{
		"analysis_id":      analysis.ID,
		"overall_score":    result.OverallScore,
		"recommendation":   result.InvestmentRecommendation,
		"duration_ms":      analysis.DurationMs,
		"state_transition": "analyzing->success",
	})

	return analysis, nil
}

func (s *Service) failAnalysis(err error, started time.Time) {
	s.lc.fail(err, StateError)
	metrics.IncAnalysisFailed()
	telemetry.Error("analysis.failed", map[string]any{
		"error":            err.Error(),
		"duration_ms":      float64(time.Since(started).Microseconds()) / 1000.0,
		"state_transition": "analyzing->error",
	})
}

// SetCredential trims and stores a new secret, then probes it. An empty
// secret clears the store. Returns whether the probe succeeded.
func (s *Service) SetCredential(ctx context.Context, secret string) (bool, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return false, s.ClearCredential()
	}

	if err := s.lc.begin(StateTesting); err != nil {
		return false, err
	}
	if err := s.credentials.Set(trimmed); err != nil {
		s.lc.settle(false)
		return false, err
	}

	valid := s.probe(ctx, trimmed)
	s.credentials.MarkValidated(valid)
	s.lc.settle(valid)
	return valid, nil
}

// TestCredential probes a candidate secret without persisting it.
func (s *Service) TestCredential(ctx context.Context, secret string) (bool, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return false, ErrEmptyCredential
	}
	if err := s.lc.begin(StateTesting); err != nil {
		return false, err
	}
	valid := s.probe(ctx, trimmed)
	s.lc.settle(valid)
	return valid, nil
}

// RevalidateHeldCredential re-probes a secret loaded from disk at startup.
func (s *Service) RevalidateHeldCredential(ctx context.Context) {
	cred, ok := s.credentials.Get()
	if !ok {
		return
	}
	if err := s.lc.begin(StateTesting); err != nil {
		return
	}
	valid := s.probe(ctx, cred.Value)
	s.credentials.MarkValidated(valid)
	s.lc.settle(valid)
	telemetry.Info("credential.revalidated", map[string]any{"valid": valid})
}

func (s *Service) probe(ctx context.Context, secret string) bool {
	valid := s.llm.VerifyKey(ctx, secret)
	metrics.IncCredentialProbe(valid)
	telemetry.Info("credential.probe", map[string]any{"valid": valid})
	return valid
}

// ClearCredential removes the stored secret. Idempotent.
func (s *Service) ClearCredential() error {
	return s.credentials.Clear()
}

// CredentialStatus reports whether a secret is configured and validated.
// The secret itself is never exposed.
func (s *Service) CredentialStatus() (configured, validated bool) {
	_, configured = s.credentials.Get()
	return configured, s.credentials.Validated()
}

// State returns the current lifecycle snapshot.
func (s *Service) State() Snapshot {
	return s.lc.snapshot()
}

// Reset returns the lifecycle to idle, discarding any held result or error.
func (s *Service) Reset() {
	s.lc.reset()
}
