package script_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/indexedpq/script"
)

func TestParse(t *testing.T) {
	commands, err := script.Parse(strings.NewReader(`
# build the queue
add 5
ADDALL 3 8   1

peek
remove 3
drain
`))
	require.NoError(t, err)
	require.Equal(t, []script.Command{
		{Line: 3, Verb: script.VerbAdd, Arguments: []string{"5"}},
		{Line: 4, Verb: script.VerbAddAll, Arguments: []string{"3", "8", "1"}},
		{Line: 6, Verb: script.VerbPeek, Arguments: []string{}},
		{Line: 7, Verb: script.VerbRemove, Arguments: []string{"3"}},
		{Line: 8, Verb: script.VerbDrain, Arguments: []string{}},
	}, commands)
}

func TestParse_Errors(t *testing.T) {
	for name, source := range map[string]string{
		"unknown verb":      "add 1\npush 2",
		"missing argument":  "remove",
		"extra argument":    "poll 1",
		"variadic no value": "addall",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := script.Parse(strings.NewReader(source))
			require.ErrorIs(t, err, script.ErrInvalidCommand)
		})
	}
}

func TestValueParsers(t *testing.T) {
	intValue, err := script.IntParser("42")
	require.NoError(t, err)
	require.Equal(t, 42, intValue)

	_, err = script.IntParser("forty-two")
	require.ErrorIs(t, err, script.ErrInvalidValue)

	floatValue, err := script.FloatParser("-1.25")
	require.NoError(t, err)
	require.Equal(t, -1.25, floatValue)

	_, err = script.FloatParser("x")
	require.ErrorIs(t, err, script.ErrInvalidValue)

	for _, token := range []string{"NaN", "nan"} {
		_, err = script.FloatParser(token)
		require.ErrorIs(t, err, script.ErrInvalidValue, token)
	}

	infinity, err := script.FloatParser("+Inf")
	require.NoError(t, err)
	require.True(t, math.IsInf(infinity, 1))

	stringValue, err := script.StringParser("value")
	require.NoError(t, err)
	require.Equal(t, "value", stringValue)
}
