package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackAnalysisEmptyResume(t *testing.T) {
	a := FallbackAnalysis("", "")

	require.Empty(t, a.Skills)
	require.Equal(t, ExperienceNotSpecified, a.Experience)
	require.Equal(t, EducationNotSpecified, a.Education)
	require.Equal(t, 50, a.AIScore)
	require.Equal(t, defaultStrengths, a.Strengths)
	require.Equal(t, []string{
		"Limited technical skills mentioned",
		"Experience details unclear",
		"Education background not specified",
		"Limited project experience details",
	}, a.Weaknesses)
	require.Equal(t, RecommendationEntryLevel, a.Recommendation)
	require.Equal(t,
		"Candidate demonstrates potential with professional background. Education background needs clarification. Overall assessment indicates moderate fit for the role.",
		a.Summary)
}

func TestFallbackAnalysisTypicalResume(t *testing.T) {
	text := "5 years of experience. Skills: JavaScript, React, Node.js, Python. Led a project team."
	a := FallbackAnalysis(text, "")

	require.Equal(t, []string{"JavaScript", "React", "Node.js", "Python", "Java"}, a.Skills)
	require.Equal(t, "5 years of professional experience", a.Experience)
	require.Equal(t, EducationNotSpecified, a.Education)
	// 50 base + 25 skills + 10 experience + 5 project
	require.Equal(t, 90, a.AIScore)
	require.Equal(t, RecommendationStrong, a.Recommendation)
	require.Contains(t, a.Strengths, "Strong technical skill set")
	// "Led" does not contain the substring "lead", so no leadership strength
	require.NotContains(t, a.Strengths, "Project leadership experience")
	require.Equal(t, []string{"Education background not specified"}, a.Weaknesses)
	require.Equal(t,
		"Candidate demonstrates solid technical skills with 5 years of professional experience. Education background needs clarification. Overall assessment indicates strong fit for the role.",
		a.Summary)
}

func TestFallbackAnalysisLeadVersusLed(t *testing.T) {
	withLead := FallbackAnalysis("I lead a project team and manage deadlines", "")
	require.Contains(t, withLead.Strengths, "Project leadership experience")
	require.Contains(t, withLead.Strengths, "Team management skills")

	withLed := FallbackAnalysis("I led a project team and manage deadlines", "")
	require.NotContains(t, withLed.Strengths, "Project leadership experience")
	require.Contains(t, withLed.Strengths, "Team management skills")
}

func TestFallbackAnalysisIdempotent(t *testing.T) {
	text := "Certified AWS engineer, 3 years of experience, Bachelor degree, project lead"
	jd := "AWS engineer with leadership"
	first := FallbackAnalysis(text, jd)
	second := FallbackAnalysis(text, jd)
	require.Equal(t, first, second)
}

func TestFallbackAnalysisWithJobDescription(t *testing.T) {
	text := "React developer with 5 years experience on projects"
	jd := "We need a React expert; project management required"
	a := FallbackAnalysis(text, jd)

	// 50 base + 5 skill + 10 experience + 5 project + 3 relevant skill
	require.Equal(t, 73, a.AIScore)
	require.Equal(t, RecommendationGood, a.Recommendation)
	require.Equal(t, []string{
		"Skills align well with job description",
		"Project management experience relevant to job description",
	}, a.Strengths)
	require.NotContains(t, a.Weaknesses, "Limited alignment with job description skills")
	require.Contains(t, a.Summary, "The analysis was enhanced with the provided job description.")
}

func TestFallbackAnalysisJobDescriptionMismatch(t *testing.T) {
	a := FallbackAnalysis("Plumbing and carpentry specialist", "Senior React developer")

	require.Contains(t, a.Weaknesses, "Limited alignment with job description skills")
	require.NotContains(t, a.Strengths, "Skills align well with job description")
}

func TestFallbackAnalysisScoreBounds(t *testing.T) {
	texts := []string{
		"",
		"JavaScript TypeScript React Python Docker Git AWS experience project leadership team manage",
		"short",
	}
	for _, text := range texts {
		a := FallbackAnalysis(text, "JavaScript TypeScript React Python Docker Git AWS")
		require.GreaterOrEqual(t, a.AIScore, 0)
		require.LessOrEqual(t, a.AIScore, 100)
		require.NotEmpty(t, a.Strengths)
		require.NotEmpty(t, a.Weaknesses)
	}
}
