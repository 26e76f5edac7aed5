package assistant

import (
	"fmt"
	"regexp"
	"strings"
)

// Sentinel values returned when extraction finds nothing.
const (
	ExperienceNotSpecified = "Experience details not clearly specified"
	EducationNotSpecified  = "Education details not specified"
)

// skillCatalogue is the fixed, ordered skill taxonomy. Extracted skills
// preserve this order, so the catalogue order is part of the contract.
var skillCatalogue = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java", "C++",
	"HTML", "CSS", "SQL", "MongoDB", "PostgreSQL", "AWS", "Docker", "Git",
	"Angular", "Vue.js", "Express", "Django", "Flask", "Spring Boot",
	"Machine Learning", "Data Analysis", "Project Management", "Leadership",
}

var educationKeywords = []string{"Bachelor", "Master", "PhD", "Degree", "University", "College"}

var yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?)`)

// ExtractSkills scans the catalogue against the text with case-insensitive
// substring matching and returns the entries found, in catalogue order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	skills := []string{}
	for _, skill := range skillCatalogue {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// ExtractExperience looks for the first "<N> years" style statement.
func ExtractExperience(text string) string {
	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s years of professional experience", m[1])
	}
	return ExperienceNotSpecified
}

// ExtractEducation returns a statement for the first education keyword found.
func ExtractEducation(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range educationKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return fmt.Sprintf("%s level education identified", kw)
		}
	}
	return EducationNotSpecified
}
