package script_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/indexedpq/priorityqueue"
	"github.com/iotaledger/indexedpq/script"
)

func parse(t *testing.T, source string) []script.Command {
	t.Helper()

	commands, err := script.Parse(strings.NewReader(source))
	require.NoError(t, err)

	return commands
}

func TestRunner_Run(t *testing.T) {
	queue := priorityqueue.New[int]()
	runner := script.NewRunner[int](queue, script.IntParser, nil)

	var output bytes.Buffer
	require.NoError(t, runner.Run(context.Background(), parse(t, `
addall 5 3 8 1 9 2
print
peek
size
contains 8
remove 8
contains 8
remove 8
check
poll
drain
empty
poll
peek
add 4
clear
size
`), &output))

	require.Equal(t, strings.Join([]string{
		"ok",
		"[1, 3, 2, 5, 9, 8]",
		"1",
		"6",
		"true",
		"true",
		"false",
		"false",
		"true",
		"1",
		"2 3 5 9",
		"true",
		"empty",
		"empty",
		"ok",
		"ok",
		"0",
	}, "\n")+"\n", output.String())
	require.EqualValues(t, 17, runner.Executed())
}

func TestRunner_Errors(t *testing.T) {
	runner := script.NewRunner[float64](priorityqueue.New[float64](), script.FloatParser, nil)

	var output bytes.Buffer
	err := runner.Run(context.Background(), parse(t, "add 1.5\nadd one\nadd 2"), &output)
	require.ErrorIs(t, err, script.ErrInvalidValue)
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, "ok\n", output.String())
	require.EqualValues(t, 1, runner.Executed())

	output.Reset()
	err = runner.Run(context.Background(), parse(t, "add 1\nadd NaN\ndrain"), &output)
	require.ErrorIs(t, err, script.ErrInvalidValue)
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, "ok\n", output.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, runner.Run(ctx, parse(t, "size"), &output), context.Canceled)

	_, err = runner.Execute(script.Command{Line: 1, Verb: script.Verb("push")})
	require.ErrorIs(t, err, script.ErrInvalidCommand)
}

func TestRunner_NilElements(t *testing.T) {
	queue := priorityqueue.NewWithComparator(func(a, b *string) int {
		return lo.Compare(*a, *b)
	})
	runner := script.NewRunner[*string](queue, func(token string) (*string, error) {
		if token == "nil" {
			return nil, nil
		}

		return &token, nil
	}, nil)

	_, err := runner.Execute(script.Command{Line: 1, Verb: script.VerbAdd, Arguments: []string{"nil"}})
	require.ErrorIs(t, err, priorityqueue.ErrInvalidArgument)
}

func TestRunner_RunConcurrently(t *testing.T) {
	const scriptCount = 6

	queue := priorityqueue.NewThreadSafe[int]()
	runner := script.NewRunner[int](queue, script.IntParser, nil)

	scripts := make([][]script.Command, scriptCount)
	for i := range scripts {
		scripts[i] = parse(t, fmt.Sprintf("addall %d %d %d\ncontains %d\ncheck", 3*i, 3*i+1, 3*i+2, 3*i))
	}

	outputs, err := runner.RunConcurrently(context.Background(), scripts, 3)
	require.NoError(t, err)
	require.Len(t, outputs, scriptCount)
	for _, output := range outputs {
		require.Equal(t, "ok\ntrue\ntrue\n", output)
	}

	require.EqualValues(t, 3*scriptCount, runner.Executed())
	require.Equal(t, 3*scriptCount, queue.Size())

	elements := queue.PopAll()
	for i, element := range elements {
		require.Equal(t, i, element)
	}

	outputs, err = runner.RunConcurrently(context.Background(), [][]script.Command{parse(t, "size"), parse(t, "add x")}, 2)
	require.ErrorIs(t, err, script.ErrInvalidValue)
	require.Equal(t, "0\n", outputs[0])
	require.Empty(t, outputs[1])
}
