package inquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		candidate string
		match     bool
	}{
		{name: "empty input matches everything", input: "", candidate: "anything", match: true},
		{name: "empty candidate never matches", input: "a", candidate: "", match: false},
		{name: "exact", input: "cherry", candidate: "cherry", match: true},
		{name: "prefix", input: "che", candidate: "cherry", match: true},
		{name: "substring", input: "err", candidate: "cherry", match: true},
		{name: "scattered characters", input: "cry", candidate: "cherry", match: true},
		{name: "case insensitive", input: "CHE", candidate: "cherry", match: true},
		{name: "missing character", input: "chz", candidate: "cherry", match: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score := fuzzyScore(tt.input, tt.candidate)
			if tt.match {
				assert.Positive(t, score)
			} else {
				assert.Zero(t, score)
			}
		})
	}
}

func TestFuzzyScoreRanking(t *testing.T) {
	t.Parallel()

	exact := fuzzyScore("git", "git")
	prefix := fuzzyScore("git", "github")
	substring := fuzzyScore("it", "github")
	scattered := fuzzyScore("gh", "github")

	assert.Greater(t, exact, prefix, "exact beats prefix")
	assert.Greater(t, prefix, substring, "prefix beats substring")
	assert.Greater(t, substring, scattered, "substring beats scattered match")
}
