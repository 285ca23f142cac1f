package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runSearchAction parses args the way main wires the root command and returns
// the error SearchAction produced, before urfave/cli's exit handling runs.
func runSearchAction(t *testing.T, args ...string) error {
	t.Helper()

	var actionErr error
	app := &cli.Command{
		Name: "snix",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{Name: "debug"},
			&cli.StringFlag{Name: "config", Value: filepath.Join(t.TempDir(), "config.toml")},
		}, SearchFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			actionErr = SearchAction(ctx, c)
			return nil
		},
	}

	require.NoError(t, app.Run(context.Background(), append([]string{"snix"}, args...)))
	return actionErr
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	coder, ok := err.(cli.ExitCoder)
	require.True(t, ok, "expected an exit-coded error, got %T: %v", err, err)
	return coder.ExitCode()
}

func TestSearchActionUpstreamFailureExitsThree(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := runSearchAction(t, "--base-url", server.URL, "firefox")
	require.Error(t, err)
	assert.Equal(t, exitRequest, exitCode(t, err))
	assert.Contains(t, err.Error(), "503")
}

func TestSearchActionBadPaginationExitsTwo(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	err := runSearchAction(t, "--base-url", server.URL, "--size", "0", "firefox")
	require.Error(t, err)
	assert.Equal(t, exitValidation, exitCode(t, err))
	assert.Equal(t, 0, calls, "validation failures must never reach the network")
}

func TestSearchActionBadTypeExitsTwo(t *testing.T) {
	err := runSearchAction(t, "--type", "modules", "firefox")
	require.Error(t, err)
	assert.Equal(t, exitValidation, exitCode(t, err))
}
