package assistant

import (
	"fmt"
	"strings"
)

// Default strength/weakness pairs substituted when detection finds nothing.
var (
	defaultStrengths  = []string{"Technical background", "Professional experience"}
	defaultWeaknesses = []string{"Could provide more specific examples", "Additional certifications could strengthen profile"}
)

// FallbackAnalysis builds a complete ResumeAnalysis without any external
// dependency. It is a pure function of its inputs and never fails, even for
// an empty resume text. Matching is plain substring matching on the
// lower-cased text: a resume saying "led" does not satisfy a check for
// "lead", and that behavior is intentional.
func FallbackAnalysis(resumeText, jobDescription string) ResumeAnalysis {
	text := strings.ToLower(resumeText)
	skills := ExtractSkills(resumeText)
	experience := ExtractExperience(resumeText)
	education := ExtractEducation(resumeText)
	score := BaseScore(resumeText)

	var relevant []string
	if jobDescription != "" {
		relevant = relevantSkills(skills, jobDescription)
		score += min(len(relevant)*3, 15)
	}
	score = clampScore(score)

	var strengths []string
	if len(skills) > 3 {
		strengths = append(strengths, "Strong technical skill set")
	}
	if strings.Contains(text, "project") && strings.Contains(text, "lead") {
		strengths = append(strengths, "Project leadership experience")
	}
	if strings.Contains(text, "team") && strings.Contains(text, "manage") {
		strengths = append(strengths, "Team management skills")
	}
	if strings.Contains(text, "certification") || strings.Contains(text, "certified") {
		strengths = append(strengths, "Professional certifications")
	}
	if strings.Contains(text, "award") || strings.Contains(text, "recognition") {
		strengths = append(strengths, "Performance recognition")
	}
	if jobDescription != "" {
		jd := strings.ToLower(jobDescription)
		if len(relevant) > 0 {
			strengths = append([]string{"Skills align well with job description"}, strengths...)
		}
		if strings.Contains(jd, "leadership") && strings.Contains(text, "leadership") {
			strengths = append(strengths, "Leadership experience relevant to job description")
		}
		if strings.Contains(jd, "project management") && strings.Contains(text, "project") {
			strengths = append(strengths, "Project management experience relevant to job description")
		}
	}
	if len(strengths) == 0 {
		strengths = append([]string{}, defaultStrengths...)
	}

	var weaknesses []string
	if len(skills) < 2 {
		weaknesses = append(weaknesses, "Limited technical skills mentioned")
	}
	if !strings.Contains(text, "experience") || !strings.Contains(text, "year") {
		weaknesses = append(weaknesses, "Experience details unclear")
	}
	if !strings.Contains(text, "education") && !strings.Contains(text, "degree") {
		weaknesses = append(weaknesses, "Education background not specified")
	}
	if !strings.Contains(text, "project") {
		weaknesses = append(weaknesses, "Limited project experience details")
	}
	if jobDescription != "" && len(relevant) == 0 {
		weaknesses = append(weaknesses, "Limited alignment with job description skills")
	}
	if len(weaknesses) == 0 {
		weaknesses = append([]string{}, defaultWeaknesses...)
	}

	return ResumeAnalysis{
		Skills:         skills,
		Experience:     experience,
		Education:      education,
		AIScore:        score,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Recommendation: recommendationFor(score),
		Summary:        buildSummary(skills, experience, education, score, jobDescription != ""),
	}
}

func buildSummary(skills []string, experience, education string, score int, withJobDescription bool) string {
	skillsPart := "potential"
	if len(skills) > 0 {
		skillsPart = "solid technical skills"
	}
	experiencePart := "professional background"
	if experience != ExperienceNotSpecified {
		experiencePart = strings.ToLower(experience)
	}
	educationPart := "Education background needs clarification"
	if education != EducationNotSpecified {
		educationPart = "Education: " + education
	}
	fit := "developing"
	switch {
	case score >= 70:
		fit = "strong"
	case score >= 50:
		fit = "moderate"
	}
	summary := fmt.Sprintf(
		"Candidate demonstrates %s with %s. %s. Overall assessment indicates %s fit for the role.",
		skillsPart, experiencePart, educationPart, fit,
	)
	if withJobDescription {
		summary += " The analysis was enhanced with the provided job description."
	}
	return summary
}
