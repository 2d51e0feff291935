package script

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
)

// emptyResult is printed for operations on an empty queue.
const emptyResult = "empty"

// Queue is the queue API a Runner operates on.
type Queue[T comparable] interface {
	IsEmpty() bool
	Size() int
	Add(value T) error
	AddAll(values ...T) error
	Peek() (T, bool)
	Poll() (T, bool)
	Contains(value T) bool
	Remove(value T) bool
	Clear()
	IsMinHeap(k int) bool
	String() string
}

// Runner executes commands against a queue and writes one result line per command.
type Runner[T comparable] struct {
	queue      Queue[T]
	parseValue ValueParser[T]
	executed   *atomic.Int64
	logger     log.Logger
}

// NewRunner creates a Runner for the given queue. The logger may be nil.
func NewRunner[T comparable](queue Queue[T], parseValue ValueParser[T], logger log.Logger) *Runner[T] {
	return &Runner[T]{
		queue:      queue,
		parseValue: parseValue,
		executed:   atomic.NewInt64(0),
		logger:     lo.Cond(logger != nil, logger, log.EmptyLogger),
	}
}

// Run executes the commands in order. It stops at the first failing command or when the context is done.
func (r *Runner[T]) Run(ctx context.Context, commands []Command, output io.Writer) error {
	for _, command := range commands {
		if err := ctx.Err(); err != nil {
			return ierrors.Wrapf(err, "script aborted before line %d", command.Line)
		}

		result, err := r.Execute(command)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(output, result); err != nil {
			return ierrors.Wrapf(err, "failed to write result of line %d", command.Line)
		}
	}

	r.logger.LogDebug("script finished", "commands", len(commands), "size", r.queue.Size())

	return nil
}

// Execute runs a single command and returns its result.
func (r *Runner[T]) Execute(command Command) (result string, err error) {
	defer func() {
		if err != nil {
			err = ierrors.Wrapf(err, "line %d: %s failed", command.Line, command.Verb)
			return
		}

		r.executed.Inc()
	}()

	switch command.Verb {
	case VerbAdd, VerbAddAll:
		values, err := ParseValues(r.parseValue, command.Arguments)
		if err != nil {
			return "", err
		}

		if err := r.queue.AddAll(values...); err != nil {
			return "", err
		}

		return "ok", nil
	case VerbRemove, VerbContains:
		value, err := r.parseValue(command.Arguments[0])
		if err != nil {
			return "", err
		}

		if command.Verb == VerbRemove {
			return strconv.FormatBool(r.queue.Remove(value)), nil
		}

		return strconv.FormatBool(r.queue.Contains(value)), nil
	case VerbPeek:
		return formatElement(r.queue.Peek()), nil
	case VerbPoll:
		return formatElement(r.queue.Poll()), nil
	case VerbSize:
		return strconv.Itoa(r.queue.Size()), nil
	case VerbEmpty:
		return strconv.FormatBool(r.queue.IsEmpty()), nil
	case VerbClear:
		r.queue.Clear()

		return "ok", nil
	case VerbPrint:
		return r.queue.String(), nil
	case VerbCheck:
		return strconv.FormatBool(r.queue.IsMinHeap(0)), nil
	case VerbDrain:
		return r.drain(), nil
	default:
		return "", ierrors.Wrapf(ErrInvalidCommand, "unknown verb %q", command.Verb)
	}
}

// Executed returns the number of successfully executed commands.
func (r *Runner[T]) Executed() int64 {
	return r.executed.Load()
}

func (r *Runner[T]) drain() string {
	elements := make([]string, 0, r.queue.Size())
	for element, exists := r.queue.Poll(); exists; element, exists = r.queue.Poll() {
		elements = append(elements, fmt.Sprint(element))
	}

	return lo.Cond(len(elements) == 0, emptyResult, strings.Join(elements, " "))
}

func formatElement[T any](element T, exists bool) string {
	if !exists {
		return emptyResult
	}

	return fmt.Sprint(element)
}
