package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInitLoggingWritesToLogDir exercises the --log-dir flag end to end:
// it should make alog route the app channel's log lines through a rotating
// file writer in addition to stderr.
func TestInitLoggingWritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	flagLogDir = dir
	defer func() { flagLogDir = "" }()

	initLogging(true)
	logger().Info().Msg("hello from test")

	path := filepath.Join(dir, "app.log")
	_, err := os.Stat(path)
	require.NoError(t, err, "expected a log file at %s", path)
}
