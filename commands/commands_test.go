package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRendersBuiltinRegister(t *testing.T) {
	out := filepath.Join(t.TempDir(), "updated_risk_heatmap.png")
	_, err := run(t, "-q", "--dpi", "30", "-o", out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderFromRegisterFile(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "risks.yaml")
	require.NoError(t, os.WriteFile(regPath, []byte(`
risks:
  - name: Venue Overbooking
    severity: 40
    probability: 65
`), 0644))

	out := filepath.Join(dir, "heatmap.svg")
	_, err := run(t, "render", "-q", "--register", regPath, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRenderRejectsBadOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "heatmap.gif")
	_, err := run(t, "render", "-q", "-o", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := run(t, "-q", "extra")
	assert.Error(t, err)
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "riskmap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: from-config.png\ndpi: 20\n"), 0644))

	out := filepath.Join(dir, "from-flag.png")
	_, err := run(t, "render", "-q", "-c", cfgPath, "-o", out)
	require.NoError(t, err)

	_, err = os.Stat(out)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "from-config.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "riskmap "+Version+"\n", out)
}

func TestRegisterCommand(t *testing.T) {
	var table bytes.Buffer
	pterm.SetDefaultOutput(&table)
	t.Cleanup(func() { pterm.SetDefaultOutput(os.Stdout) })

	_, err := run(t, "register", "-q")
	require.NoError(t, err)

	out := pterm.RemoveColorFromString(table.String())
	assert.Contains(t, out, "Risk register (5 entries)")
	for _, want := range []string{"Probability", "Hybrid Delivery", "6400", "CRITICAL", "Speaker Cancellation", "1425", "#fee08b"} {
		assert.Contains(t, out, want)
	}
}

func TestRegisterCommandFromFile(t *testing.T) {
	regPath := filepath.Join(t.TempDir(), "risks.yaml")
	require.NoError(t, os.WriteFile(regPath, []byte(`
risks:
  - name: Venue Overbooking
    severity: 40
    probability: 65
`), 0644))

	var table bytes.Buffer
	pterm.SetDefaultOutput(&table)
	t.Cleanup(func() { pterm.SetDefaultOutput(os.Stdout) })

	_, err := run(t, "register", "-q", "--register", regPath)
	require.NoError(t, err)

	out := pterm.RemoveColorFromString(table.String())
	assert.Contains(t, out, "Venue Overbooking")
	assert.Contains(t, out, "2600")
	assert.NotContains(t, out, "Hybrid Delivery")
}

func TestQuietRequested(t *testing.T) {
	assert.True(t, quietRequested([]string{"render", "--quiet"}))
	assert.True(t, quietRequested([]string{"-q"}))
	assert.False(t, quietRequested([]string{"render", "-o", "q.png"}))
}
