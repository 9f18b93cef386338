package transcript

import (
	"context"
	"strings"

	"hireflow-be/internal/constant"
	"hireflow-be/pkg/llm"
	"hireflow-be/pkg/llm/gateway"
)

// GatewayPolisher runs the chosen transcript through one stylistic rewrite
// pass. NO_CONTENT or any gateway failure yields ok == false, which makes
// the fusion engine keep the raw text.
type GatewayPolisher struct {
	gw *gateway.Gateway
}

var _ Polisher = &GatewayPolisher{}

func NewGatewayPolisher(gw *gateway.Gateway) *GatewayPolisher {
	return &GatewayPolisher{gw: gw}
}

func (p *GatewayPolisher) Polish(ctx context.Context, text string) (string, bool) {
	result := p.gw.Generate(ctx, text,
		llm.WithSystemPrompt(constant.PolishTranscriptSystemPromptV1),
		llm.WithMaxTokens(800),
	)
	if !result.OK {
		return "", false
	}

	polished := strings.TrimSpace(result.Text)
	if polished == "" || strings.EqualFold(polished, NoContentMarker) {
		return "", false
	}
	return polished, true
}
