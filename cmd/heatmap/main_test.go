package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	today := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC).Unix()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/alice/heatmap" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `[{"timestamp":%d,"contributions":1234}]`, today)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	upstream := setupUpstream(t)

	t.Run("Success: writes SVG to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "graph.svg")

		err := run(context.Background(), []string{
			"--user", "alice", "--theme", "github", "--out", out, "--base-url", upstream.URL,
		}, &bytes.Buffer{})
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "1,234 contributions in the last year")
		assert.Contains(t, string(data), "#0d1117")
	})

	t.Run("Success: writes SVG to stdout", func(t *testing.T) {
		var stdout bytes.Buffer

		err := run(context.Background(), []string{"-u", "alice", "--base-url", upstream.URL}, &stdout)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "<svg")
	})

	t.Run("Fail: unknown user still writes the error card", func(t *testing.T) {
		var stdout bytes.Buffer

		err := run(context.Background(), []string{"-u", "ghost", "--base-url", upstream.URL}, &stdout)
		assert.ErrorContains(t, err, "status 404")
		assert.Contains(t, stdout.String(), "not found on Codeberg")
	})

	t.Run("Fail: missing --user", func(t *testing.T) {
		err := run(context.Background(), []string{"--base-url", upstream.URL}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("Fail: bad timezone", func(t *testing.T) {
		err := run(context.Background(), []string{"-u", "alice", "--timezone", "Mars/Olympus"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "invalid timezone")
	})
}
