package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"neurowell/internal/modules/wellness/domain"
	wellnessout "neurowell/internal/modules/wellness/port/out"
	"neurowell/internal/platform/panel"
)

const maxBodyBytes = 1 << 20

type HTTPBackend struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPBackend(baseURL string, timeout time.Duration, log *zap.Logger) wellnessout.Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type envelope struct {
	Success  bool          `json:"success"`
	Error    string        `json:"error"`
	Message  string        `json:"message"`
	Plan     *planWire     `json:"plan"`
	Analysis *analysisWire `json:"analysis"`
}

type planWire struct {
	MentalHealth         []string `json:"mental_health"`
	Fitness              []string `json:"fitness"`
	Nutrition            []string `json:"nutrition"`
	PersonalizedInsights string   `json:"personalized_insights"`
	MotivationMessage    string   `json:"motivation_message"`
}

// complete reports whether every list the plan panel renders is present.
func (p *planWire) complete() bool {
	return p != nil && p.MentalHealth != nil && p.Fitness != nil && p.Nutrition != nil
}

type analysisWire struct {
	EmotionalState        string   `json:"emotional_state"`
	StressIndicators      []string `json:"stress_indicators"`
	RecommendedFocusAreas []string `json:"recommended_focus_areas"`
	EmpathyMessage        string   `json:"empathy_message"`
}

func (e envelope) result() domain.Result {
	return domain.Result{Success: e.Success, Error: e.Error, Message: e.Message}
}

func (b *HTTPBackend) GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error) {
	env, err := b.post(ctx, domain.PathGeneratePlan, req)
	if err != nil {
		return domain.PlanResult{}, err
	}
	out := domain.PlanResult{Result: env.result()}
	if env.Success {
		if !env.Plan.complete() {
			return domain.PlanResult{}, fmt.Errorf("decode %s: success without a complete plan", domain.PathGeneratePlan)
		}
		out.Plan = panel.Plan{
			MentalHealth:         env.Plan.MentalHealth,
			Fitness:              env.Plan.Fitness,
			Nutrition:            env.Plan.Nutrition,
			PersonalizedInsights: env.Plan.PersonalizedInsights,
			MotivationMessage:    env.Plan.MotivationMessage,
		}
	}
	return out, nil
}

func (b *HTTPBackend) AnalyzeFeelings(ctx context.Context, req domain.FeelingsRequest) (domain.AnalysisResult, error) {
	env, err := b.post(ctx, domain.PathAnalyzeFeelings, req)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	out := domain.AnalysisResult{Result: env.result()}
	if env.Success {
		if env.Analysis == nil {
			return domain.AnalysisResult{}, fmt.Errorf("decode %s: success without analysis", domain.PathAnalyzeFeelings)
		}
		out.Analysis = panel.Analysis{
			EmotionalState:        env.Analysis.EmotionalState,
			StressIndicators:      env.Analysis.StressIndicators,
			RecommendedFocusAreas: env.Analysis.RecommendedFocusAreas,
			EmpathyMessage:        env.Analysis.EmpathyMessage,
		}
	}
	return out, nil
}

func (b *HTTPBackend) LogMood(ctx context.Context, req domain.MoodRequest) (domain.Result, error) {
	env, err := b.post(ctx, domain.PathLogMood, req)
	if err != nil {
		return domain.Result{}, err
	}
	return env.result(), nil
}

// post sends body as JSON and decodes the envelope whatever the status
// code: the backend reports failures as {success:false,error} with 4xx/5xx.
func (b *HTTPBackend) post(ctx context.Context, path string, body any) (envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return envelope{}, fmt.Errorf("encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return envelope{}, fmt.Errorf("build %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := b.client.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	b.log.Debug("backend call", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(started)))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return envelope{}, fmt.Errorf("read %s: %w", path, err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("decode %s (status %d): %w", path, resp.StatusCode, err)
	}
	return env, nil
}
