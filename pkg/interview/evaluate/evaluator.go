package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hireflow-be/internal/constant"
	"hireflow-be/internal/pkg/logger"
	"hireflow-be/pkg/llm"
	"hireflow-be/pkg/llm/gateway"
	"hireflow-be/pkg/store"
)

// GatewayEvaluator scores candidate answers through the provider gateway.
// It reports ok == false on any failure so the orchestrator can apply its
// safe default instead of stalling the turn.
type GatewayEvaluator struct {
	gw         *gateway.Gateway
	scoreFloor int
	logger     logger.ILogger
}

func NewGatewayEvaluator(gw *gateway.Gateway, scoreFloor int, log logger.ILogger) *GatewayEvaluator {
	return &GatewayEvaluator{
		gw:         gw,
		scoreFloor: scoreFloor,
		logger:     log,
	}
}

type evaluationPayload struct {
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	NeedsProbe bool   `json:"needs_probe"`
	ProbeText  string `json:"probe_text"`
}

func (e *GatewayEvaluator) Evaluate(ctx context.Context, question, answer, positionTitle string) (store.AnswerEvaluation, bool) {
	prompt := fmt.Sprintf(constant.EvaluateAnswerUserPromptV1, positionTitle, question, answer)

	result := e.gw.Generate(ctx, prompt,
		llm.WithSystemPrompt(constant.EvaluateAnswerSystemPromptV1),
		llm.WithJSONMode(),
		llm.WithMaxTokens(400),
	)
	if !result.OK {
		return store.AnswerEvaluation{}, false
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(gateway.StripMarkdownFence(result.Text)), &payload); err != nil {
		e.logger.Warn("Evaluator", "Provider returned unparseable evaluation", map[string]interface{}{
			"error": err.Error(),
		})
		return store.AnswerEvaluation{}, false
	}

	// A probe verdict without wording still has to ask something.
	probeText := strings.TrimSpace(payload.ProbeText)
	if payload.NeedsProbe && probeText == "" {
		probeText = constant.FallbackProbe
	}

	return store.AnswerEvaluation{
		Score:      e.clamp(payload.Score),
		Feedback:   payload.Feedback,
		NeedsProbe: payload.NeedsProbe,
		ProbeText:  probeText,
	}, true
}

// clamp keeps provider-scored answers inside the configured realistic band.
func (e *GatewayEvaluator) clamp(score int) int {
	if score < e.scoreFloor {
		return e.scoreFloor
	}
	if score > 100 {
		return 100
	}
	return score
}
