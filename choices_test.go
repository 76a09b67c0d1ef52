package inquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoicesDedupByKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []Choice
		want  []string
	}{
		{
			name:  "unique names",
			items: []Choice{{Name: "a"}, {Name: "b"}, {Name: "c"}},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "duplicate names keep first",
			items: []Choice{{Name: "a"}, {Name: "b"}, {Name: "a"}},
			want:  []string{"a", "b"},
		},
		{
			name: "explicit keys dedupe across names",
			items: []Choice{
				{Key: "x", Name: "first"},
				{Key: "x", Name: "second"},
				{Key: "y", Name: "third"},
			},
			want: []string{"first", "third"},
		},
		{
			name:  "empty",
			items: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cs := newChoices(tt.items, Answers{})
			assert.Equal(t, len(tt.want), cs.Len())
			for i, name := range tt.want {
				assert.Equal(t, name, cs.At(i).Name)
			}
		})
	}
}

func TestChoicesFind(t *testing.T) {
	t.Parallel()

	cs := newChoices([]Choice{
		{Name: "alpha", Value: 1},
		{Key: "b", Name: "beta", Value: 2},
	}, Answers{})

	got, ok := cs.Find("alpha")
	require.True(t, ok)
	assert.Equal(t, 1, got.Value)

	got, ok = cs.Find("b")
	require.True(t, ok)
	assert.Equal(t, "beta", got.Name)

	_, ok = cs.Find("gamma")
	assert.False(t, ok)
}

func TestChoiceValueFallsBackToName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev", Choice{Name: "dev"}.value())
	assert.Equal(t, 42, Choice{Name: "dev", Value: 42}.value())
}

func TestNilChoicesAreEmpty(t *testing.T) {
	t.Parallel()

	var cs *Choices
	assert.Equal(t, 0, cs.Len())
	assert.Nil(t, cs.Names())
	_, ok := cs.Find("x")
	assert.False(t, ok)
}
