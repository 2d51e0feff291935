package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/indexedpq/script"
)

var errClosedOutput = ierrors.New("output closed")

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errClosedOutput
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func TestRun_Stdin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--queue.initial=5,3,8", "--logger.level=debug"}, strings.NewReader("print\npoll\nadd 1\nsize\ndrain\n"), &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "[3, 5, 8]\n3\nok\n3\n1 5 8\n", stdout.String())
}

func TestRun_ConfigFile(t *testing.T) {
	configFilePath := writeFile(t, "config.yaml", "queue:\n  elementType: string\n  initial: [pear, apple]\nlogger:\n  level: warning\n")
	scriptPath := writeFile(t, "script.txt", "add fig\nremove pear\ndrain\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--config", configFilePath, "--scripts", scriptPath}, strings.NewReader(""), &stdout, &stderr))
	require.Equal(t, "ok\ntrue\napple fig\n", stdout.String())
}

func TestRun_EnvironmentOverride(t *testing.T) {
	t.Setenv("IPQ_QUEUE_ELEMENTTYPE", "float")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), nil, strings.NewReader("addall 2.5 -1\npeek\n"), &stdout, &stderr))
	require.Equal(t, "ok\n-1\n", stdout.String())
}

func TestRun_ConcurrentScripts(t *testing.T) {
	firstScript := writeFile(t, "first.txt", "addall 1 2 3\ncontains 2\n")
	secondScript := writeFile(t, "second.txt", "addall 4 5\ncheck\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--scripts", firstScript, "--scripts", secondScript, "--workers=2"}, strings.NewReader(""), &stdout, &stderr))
	require.Equal(t, fmt.Sprintf("== %s\nok\ntrue\n== %s\nok\ntrue\n", firstScript, secondScript), stdout.String())
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.ErrorIs(t, run(context.Background(), []string{"--queue.elementType=bool"}, strings.NewReader(""), &stdout, &stderr), ErrUnknownElementType)
	require.Error(t, run(context.Background(), []string{"--queue.initial=a"}, strings.NewReader(""), &stdout, &stderr))
	require.ErrorIs(t, run(context.Background(), []string{"--queue.elementType=float", "--queue.initial=NaN,1"}, strings.NewReader(""), &stdout, &stderr), script.ErrInvalidValue)
	require.ErrorIs(t, run(context.Background(), []string{"--queue.elementType=float"}, strings.NewReader("add 1\nadd NaN\n"), &stdout, &stderr), script.ErrInvalidValue)
	require.Error(t, run(context.Background(), []string{"--logger.level=loud"}, strings.NewReader(""), &stdout, &stderr))
	require.Error(t, run(context.Background(), []string{"--scripts", filepath.Join(t.TempDir(), "missing.txt")}, strings.NewReader(""), &stdout, &stderr))
	require.Error(t, run(context.Background(), nil, strings.NewReader("jump\n"), &stdout, &stderr))
	require.NoError(t, run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr))
}

func TestRun_OutputErrors(t *testing.T) {
	firstScript := writeFile(t, "first.txt", "add 1\n")
	secondScript := writeFile(t, "second.txt", "add 2\n")

	var stderr bytes.Buffer
	require.ErrorIs(t, run(context.Background(), nil, strings.NewReader("size\n"), failingWriter{}, &stderr), errClosedOutput)
	require.ErrorIs(t, run(context.Background(), []string{"--scripts", firstScript, "--scripts", secondScript}, strings.NewReader(""), failingWriter{}, &stderr), errClosedOutput)
}
