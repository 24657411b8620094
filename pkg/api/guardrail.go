package api

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quillhq/quill/pkg/config"
)

// Guardrail screens inbound questions against a compiled regex denylist
// before a job is accepted.
type Guardrail struct {
	denylist   []*regexp.Regexp
	escalation string
}

// NewGuardrail compiles the denylist. Patterns are matched case-insensitively
// against the whole question.
func NewGuardrail(cfg *config.Guardrails) (*Guardrail, error) {
	if cfg == nil {
		return &Guardrail{}, nil
	}
	g := &Guardrail{escalation: cfg.EscalationMessage}
	for _, pattern := range cfg.Denylist {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling guardrail pattern %q: %w", pattern, err)
		}
		g.denylist = append(g.denylist, re)
	}
	return g, nil
}

// Check returns a non-empty rejection message when the question is denied.
func (g *Guardrail) Check(question string) string {
	if g == nil {
		return ""
	}
	q := strings.TrimSpace(question)
	for _, re := range g.denylist {
		if re.MatchString(q) {
			if g.escalation != "" {
				return g.escalation
			}
			return "request blocked by policy"
		}
	}
	return ""
}
