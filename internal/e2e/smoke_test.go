package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home))

	_, stderr, err := runMeow(t, binaryPath, home, "food", "log", "--name", "Greek Yogurt", "--amount", "200", "--date", "2026-03-14")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runMeow(t, binaryPath, home, "workout", "start", "B")
	require.NoError(t, err, "stderr: %s", stderr)
	_, stderr, err = runMeow(t, binaryPath, home, "workout", "finish", "--duration", "20", "--date", "2026-03-14")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runMeow(t, binaryPath, home, "summary", "--date", "2026-03-14")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Greek Yogurt")
	assert.Contains(t, stdout, "+120 burned")

	data, err := os.ReadFile(filepath.Join(home, ".meow", "data", "meow_data_v10.dat"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "version = 1"))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "meow-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/meow")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build meow binary: %s", string(output))
	return binaryPath
}

func runMeow(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "MEOW_CONFIG=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".meow")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `[log]
level = "debug"

[training]
burn_rate_per_minute = 6
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}
