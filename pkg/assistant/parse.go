package assistant

import (
	"encoding/json"
	"errors"
	"strings"
)

// parseAnalysis decodes a provider reply into a ResumeAnalysis. Models often
// wrap JSON in prose or fenced blocks, so after a direct unmarshal fails the
// outermost brace window is tried.
func parseAnalysis(raw string) (ResumeAnalysis, error) {
	raw = strings.TrimSpace(raw)
	var out ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out, nil
	}
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			if err := json.Unmarshal([]byte(raw[i:j+1]), &out); err == nil {
				return out, nil
			}
		}
	}
	return ResumeAnalysis{}, errors.New("model reply is not valid analysis JSON")
}

// normalizeAnalysis enforces the ResumeAnalysis invariants on provider
// output: score clamped to [0,100], no nil slices, strengths and weaknesses
// never empty.
func normalizeAnalysis(a ResumeAnalysis) ResumeAnalysis {
	a.AIScore = clampScore(a.AIScore)
	if a.Skills == nil {
		a.Skills = []string{}
	}
	if len(a.Strengths) == 0 {
		a.Strengths = append([]string{}, defaultStrengths...)
	}
	if len(a.Weaknesses) == 0 {
		a.Weaknesses = append([]string{}, defaultWeaknesses...)
	}
	return a
}
