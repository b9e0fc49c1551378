// Package parsing provides token normalization for skill, credential, and
// location comparison.
package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical tokens so
// that postings and profiles written with different conventions still match.
var skillNormalizations = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"node":                "node.js",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"ms sql":              "sql server",
	"amazon web services": "aws",
	"google cloud":        "gcp",
}

// NormalizeSkill lowercases and trims a skill name and folds known variants
// to a canonical token. Comparison stays exact-token; this is not fuzzy
// matching.
func NormalizeSkill(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeToken lowercases and trims a free-form token such as an industry,
// job type, location, or credential name.
func NormalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// SkillSet builds a set of normalized skill tokens, dropping empties and
// duplicates.
func SkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if normalized := NormalizeSkill(skill); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// TokenSet builds a set of normalized free-form tokens.
func TokenSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		if normalized := NormalizeToken(value); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
