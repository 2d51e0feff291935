package main

import (
	flag "github.com/spf13/pflag"
)

const (
	// envPrefix is the prefix of environment variables overriding parameters, e.g. IPQ_QUEUE_CAPACITY.
	envPrefix = "IPQ"

	// stdinScript is the script name that selects stdin.
	stdinScript = "-"
)

// Parameters are the parameters of the ipq command.
type Parameters struct {
	Queue struct {
		// ElementType is the type of the queue elements: int, float or string.
		ElementType string `koanf:"elementtype"`
		// Capacity is the number of pre-allocated heap slots.
		Capacity int `koanf:"capacity"`
		// Initial are the elements the queue is heapified from.
		Initial []string `koanf:"initial"`
	} `koanf:"queue"`

	// Scripts are the paths of the scripts to execute.
	Scripts []string `koanf:"scripts"`

	// Workers is the number of goroutines executing scripts concurrently.
	Workers int `koanf:"workers"`

	Logger struct {
		// Level is the log level (trace, debug, info, warning, error).
		Level string `koanf:"level"`
		// Name is the name of the root logger.
		Name string `koanf:"name"`
	} `koanf:"logger"`
}

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("ipq", flag.ContinueOnError)
	flagSet.String("config", "", "path to a JSON, YAML or TOML config file")
	flagSet.String("queue.elementType", "int", "type of the queue elements (int, float, string)")
	flagSet.Int("queue.capacity", 0, "number of pre-allocated heap slots")
	flagSet.StringSlice("queue.initial", nil, "elements the queue is heapified from")
	flagSet.StringArray("scripts", nil, "script to execute (repeatable, '-' reads stdin)")
	flagSet.Int("workers", 4, "number of goroutines executing scripts concurrently")
	flagSet.String("logger.level", "info", "log level")
	flagSet.String("logger.name", "ipq", "name of the root logger")

	return flagSet
}
