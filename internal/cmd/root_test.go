package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/systools/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points the default config location at a file that does not
// exist so a developer's own config cannot leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands_Help(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		cmd  *cobra.Command
		want []string
	}{
		{name: "fstype", cmd: NewFSTypeCommand(), want: []string{"fstype <path>", "--magic"}},
		{name: "tinyfind", cmd: NewFindCommand(), want: []string{"-w, --where", "-r, --regex", "-e, --exclude", "-h, --help"}},
		{name: "qsort", cmd: NewSortCommand(), want: []string{"--container", "--random", "--reverse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.cmd, "", "--help")
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.Contains(t, out, "--log-level")
		})
	}
}

func TestLoadConfig_RejectsBadLogLevel(t *testing.T) {
	isolateConfig(t)

	_, _, err := execute(t, NewFSTypeCommand(), "", "--log-level", "loud", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestLoadConfig_ExplicitMalformedFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, writeFile(path, "find: [\n"))

	_, _, err := execute(t, NewFindCommand(), "", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from")
}

func TestNewLogger_Quiet(t *testing.T) {
	isolateConfig(t)

	_, errOut, err := execute(t, NewSortCommand(), "", "--quiet", "--log-level", "trace", "2", "1")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestNewLogger_TraceReportsLevel(t *testing.T) {
	isolateConfig(t)

	_, errOut, err := execute(t, NewSortCommand(), "", "--log-level", "trace", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[TRACE] qsort: log level trace")
}
