package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidCommand is returned when a script line can not be parsed into a Command.
	ErrInvalidCommand = ierrors.New("invalid command")

	// ErrInvalidValue is returned when a command argument can not be converted into an element.
	ErrInvalidValue = ierrors.New("invalid value")
)

// Verb names an operation of a script.
type Verb string

const (
	VerbAdd      Verb = "add"
	VerbAddAll   Verb = "addall"
	VerbPeek     Verb = "peek"
	VerbPoll     Verb = "poll"
	VerbRemove   Verb = "remove"
	VerbContains Verb = "contains"
	VerbSize     Verb = "size"
	VerbEmpty    Verb = "empty"
	VerbClear    Verb = "clear"
	VerbPrint    Verb = "print"
	VerbCheck    Verb = "check"
	VerbDrain    Verb = "drain"
)

// variadic marks verbs that take one or more arguments.
const variadic = -1

// arities holds the number of arguments of every verb.
var arities = map[Verb]int{
	VerbAdd:      1,
	VerbAddAll:   variadic,
	VerbPeek:     0,
	VerbPoll:     0,
	VerbRemove:   1,
	VerbContains: 1,
	VerbSize:     0,
	VerbEmpty:    0,
	VerbClear:    0,
	VerbPrint:    0,
	VerbCheck:    0,
	VerbDrain:    0,
}

// Command is a single parsed script line.
type Command struct {
	// Line is the 1-based line number of the command in its script.
	Line int

	// Verb is the operation to execute.
	Verb Verb

	// Arguments are the raw argument tokens.
	Arguments []string
}

// Parse reads a script and returns its commands. Empty lines and lines starting with '#' are skipped.
func Parse(reader io.Reader) ([]Command, error) {
	commands := make([]Command, 0)

	scanner := bufio.NewScanner(reader)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		command, err := newCommand(line, fields)
		if err != nil {
			return nil, err
		}

		commands = append(commands, command)
	}

	if err := scanner.Err(); err != nil {
		return nil, ierrors.Wrap(err, "failed to read script")
	}

	return commands, nil
}

func newCommand(line int, fields []string) (Command, error) {
	verb := Verb(strings.ToLower(fields[0]))

	arity, exists := arities[verb]
	if !exists {
		return Command{}, ierrors.Wrapf(ErrInvalidCommand, "line %d: unknown verb %q", line, fields[0])
	}

	arguments := fields[1:]
	switch {
	case arity == variadic && len(arguments) == 0:
		return Command{}, ierrors.Wrapf(ErrInvalidCommand, "line %d: %s expects at least one argument", line, verb)
	case arity != variadic && len(arguments) != arity:
		return Command{}, ierrors.Wrapf(ErrInvalidCommand, "line %d: %s expects %d argument(s), got %d", line, verb, arity, len(arguments))
	}

	return Command{
		Line:      line,
		Verb:      verb,
		Arguments: arguments,
	}, nil
}
