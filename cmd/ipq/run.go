package main

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"

	"github.com/iotaledger/indexedpq/configuration"
	"github.com/iotaledger/indexedpq/priorityqueue"
	"github.com/iotaledger/indexedpq/script"
)

// ErrUnknownElementType is returned if the configured element type is not supported.
var ErrUnknownElementType = ierrors.New("unknown element type")

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	parameters, err := loadParameters(args)
	if err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	level, err := log.LevelFromString(parameters.Logger.Level)
	if err != nil {
		return ierrors.Wrapf(err, "invalid log level %q", parameters.Logger.Level)
	}
	logger := log.NewLogger(log.WithName(parameters.Logger.Name), log.WithLevel(level), log.WithOutput(stderr))

	scripts, err := loadScripts(parameters.Scripts, stdin)
	if err != nil {
		return err
	}

	switch parameters.Queue.ElementType {
	case "int":
		return execute(ctx, parameters, scripts, script.IntParser, stdout, logger)
	case "float":
		return execute(ctx, parameters, scripts, script.FloatParser, stdout, logger)
	case "string":
		return execute(ctx, parameters, scripts, script.StringParser, stdout, logger)
	default:
		return ierrors.Wrapf(ErrUnknownElementType, "%q", parameters.Queue.ElementType)
	}
}

// loadParameters merges the config file, the command line flags and the environment variables (in this order of
// precedence, lowest first).
func loadParameters(args []string) (*Parameters, error) {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	config := configuration.New()
	if configFilePath := lo.Return1(flagSet.GetString("config")); configFilePath != "" {
		if err := config.LoadFile(configFilePath); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "unable to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "unable to load environment variables")
	}

	parameters := new(Parameters)
	if err := config.Unmarshal("", parameters); err != nil {
		return nil, err
	}

	return parameters, nil
}

// loadScripts parses the given script files. Without paths the script is read from stdin.
func loadScripts(paths []string, stdin io.Reader) ([][]script.Command, error) {
	if len(paths) == 0 {
		paths = []string{stdinScript}
	}

	scripts := make([][]script.Command, len(paths))
	for i, path := range paths {
		commands, err := parseScript(path, stdin)
		if err != nil {
			return nil, ierrors.Wrapf(err, "unable to load script %s", path)
		}

		scripts[i] = commands
	}

	return scripts, nil
}

func parseScript(path string, stdin io.Reader) ([]script.Command, error) {
	if path == stdinScript {
		return script.Parse(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return script.Parse(file)
}

// execute runs the scripts against a queue heapified from the initial elements. A single script runs on the plain
// queue, several scripts run concurrently on the synchronized queue.
func execute[T constraints.Ordered](ctx context.Context, parameters *Parameters, scripts [][]script.Command, parseValue script.ValueParser[T], stdout io.Writer, logger log.Logger) error {
	initialElements, err := script.ParseValues(parseValue, parameters.Queue.Initial)
	if err != nil {
		return ierrors.Wrap(err, "invalid initial elements")
	}

	queue, err := priorityqueue.NewFromSlice(initialElements, priorityqueue.WithCapacity(parameters.Queue.Capacity), priorityqueue.WithLogger(logger))
	if err != nil {
		return err
	}

	if len(scripts) == 1 {
		runner := script.NewRunner[T](queue, parseValue, logger)
		if err := runner.Run(ctx, scripts[0], stdout); err != nil {
			return err
		}

		logger.LogInfo("script executed", "commands", runner.Executed(), "size", queue.Size())

		return nil
	}

	synchronizedQueue := priorityqueue.Synchronized(queue)
	runner := script.NewRunner[T](synchronizedQueue, parseValue, logger)

	outputs, err := runner.RunConcurrently(ctx, scripts, parameters.Workers)
	for i, output := range outputs {
		if _, writeErr := fmt.Fprintf(stdout, "== %s\n%s", parameters.Scripts[i], output); writeErr != nil {
			err = ierrors.Join(err, ierrors.Wrapf(writeErr, "failed to write output of %s", parameters.Scripts[i]))

			break
		}
	}

	logger.LogInfo("scripts executed", "scripts", len(scripts), "commands", runner.Executed(), "size", synchronizedQueue.Size())

	return err
}
