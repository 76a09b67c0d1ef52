package inquire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveQuestionDefaults(t *testing.T) {
	t.Parallel()

	q, err := resolveQuestion(Question{Name: "color"}, Answers{})
	require.NoError(t, err)

	assert.Equal(t, "color:", q.Message, "message derives from name")
	assert.Equal(t, "?", q.Prefix)
	assert.Empty(t, q.Suffix)
	assert.Equal(t, '*', q.Mask)
	require.NotNil(t, q.Filter)
	require.NotNil(t, q.Validate)
	require.NotNil(t, q.When)

	// Identity filter and accept-all validator.
	v, err := q.Filter(context.Background(), "raw", Answers{})
	require.NoError(t, err)
	assert.Equal(t, "raw", v)
	assert.NoError(t, q.Validate(context.Background(), "anything", Answers{}))
	assert.True(t, q.When(Answers{}))
}

func TestResolveQuestionKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	in := Question{
		Name:    "env",
		Message: "Which environment?",
		Prefix:  ">",
		Suffix:  " (required)",
		Mask:    '#',
	}
	q, err := resolveQuestion(in, Answers{})
	require.NoError(t, err)

	assert.Equal(t, "Which environment?", q.Message)
	assert.Equal(t, ">", q.Prefix)
	assert.Equal(t, " (required)", q.Suffix)
	assert.Equal(t, '#', q.Mask)
}

func TestResolveQuestionMissingName(t *testing.T) {
	t.Parallel()

	_, err := resolveQuestion(Question{}, Answers{})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "name", cfgErr.Param)
	assert.Contains(t, err.Error(), "required")
}

func TestNewRejectsMissingNameBeforeAnyStream(t *testing.T) {
	t.Parallel()

	// New must fail synchronously, before a terminal is even opened: the
	// mock keeps the test headless but would be unused on this path.
	p, err := New(Question{}, WithTerminal(newMockTerminal("")), WithScreen(&recordingScreen{}))
	require.Nil(t, p)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestResolveQuestionWrapsChoices(t *testing.T) {
	t.Parallel()

	q, err := resolveQuestion(Question{
		Name: "region",
		Choices: []Choice{
			{Name: "us-east-1"},
			{Name: "eu-central-1"},
			{Name: "us-east-1"}, // duplicate dropped
		},
	}, Answers{})
	require.NoError(t, err)

	cs := q.choiceList()
	require.NotNil(t, cs)
	assert.Equal(t, 2, cs.Len())
	assert.Equal(t, []string{"us-east-1", "eu-central-1"}, cs.Names())
}

func TestAnswersAccessors(t *testing.T) {
	t.Parallel()

	a := Answers{"name": "gopher", "admin": true, "count": 3}
	assert.Equal(t, "gopher", a.String("name"))
	assert.Empty(t, a.String("count"), "non-string answers read as empty")
	assert.True(t, a.Bool("admin"))
	assert.False(t, a.Bool("missing"))
}
