package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	var buf []byte
	buf, err = io.ReadAll(r)
	require.NoError(t, err)
	return string(buf)
}

// withBackend points the CLI config at url for the duration of the test.
func withBackend(t *testing.T, url string) {
	t.Helper()

	old := cliConfig.BackendURL
	cliConfig.BackendURL = url
	t.Cleanup(func() { cliConfig.BackendURL = old })
}
