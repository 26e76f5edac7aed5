package assistant

import "strings"

// BaseScore computes the heuristic suitability score for a resume text.
// Purely additive: 50 base, up to +30 for catalogue skills, small bonuses
// for experience/project/leadership mentions, capped at 100.
func BaseScore(text string) int {
	score := 50

	skills := ExtractSkills(text)
	score += min(len(skills)*5, 30)

	lower := strings.ToLower(text)
	if strings.Contains(lower, "experience") {
		score += 10
	}
	if strings.Contains(lower, "project") {
		score += 5
	}
	if strings.Contains(lower, "leadership") {
		score += 5
	}
	return min(score, 100)
}

// relevantSkills filters extracted skills down to those literally mentioned
// in the job description.
func relevantSkills(skills []string, jobDescription string) []string {
	jd := strings.ToLower(jobDescription)
	var out []string
	for _, skill := range skills {
		if strings.Contains(jd, strings.ToLower(skill)) {
			out = append(out, skill)
		}
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func recommendationFor(score int) string {
	switch {
	case score >= 80:
		return RecommendationStrong
	case score >= 60:
		return RecommendationGood
	default:
		return RecommendationEntryLevel
	}
}
