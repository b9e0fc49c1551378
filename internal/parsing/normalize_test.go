package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercases", "React", "react"},
		{"trims", "  TypeScript  ", "typescript"},
		{"golang variant", "Golang", "go"},
		{"js variant", "JS", "javascript"},
		{"k8s variant", "k8s", "kubernetes"},
		{"nodejs variant", "NodeJS", "node.js"},
		{"postgres variant", "Postgres", "postgresql"},
		{"unknown skill passes through", "Terraform", "terraform"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkill(tt.input))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "full-time", NormalizeToken("  Full-Time "))
	assert.Equal(t, "", NormalizeToken("   "))
}

func TestSkillSet_DropsEmptiesAndDuplicates(t *testing.T) {
	set := SkillSet([]string{"Go", "golang", "", "  ", "React"})

	assert.Len(t, set, 2)
	assert.True(t, set["go"])
	assert.True(t, set["react"])
}

func TestTokenSet(t *testing.T) {
	set := TokenSet([]string{"Tech", "tech", "Finance", ""})

	assert.Len(t, set, 2)
	assert.True(t, set["tech"])
	assert.True(t, set["finance"])
}
