// Command ipq executes operation scripts against an indexed minimum priority queue.
//
// Usage:
//
//	ipq [--config config.yaml] [--queue.elementType int|float|string] [--queue.initial 5,3,8] [--scripts file]...
//
// Every script line is one operation (add, addall, peek, poll, remove, contains, size, empty, clear, print, check,
// drain) and produces one output line. A single script runs on a plain queue; several scripts run concurrently on a
// shared thread-safe queue. Without --scripts the script is read from stdin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ipq: %s\n", err)
		os.Exit(1)
	}
}
