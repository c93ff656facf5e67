package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-outlier/internal/testutil"
	"github.com/cwbudde/algo-outlier/stats/outlier"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("multiplier", outlier.DefaultMultiplier, "")
	fs.StringP("output", "o", DefaultOutput, "")
	fs.String("fill", DefaultFill, "")
	fs.String("fill-text", DefaultText, "")
	fs.Bool("dedupe", false, "")
	fs.StringSlice("columns", nil, "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iqrcap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, outlier.DefaultMultiplier, cfg.Multiplier)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, FillNone, cfg.Fill)
	assert.Equal(t, FillTextNone, cfg.FillText)
	assert.False(t, cfg.Dedupe)
	assert.Empty(t, cfg.Columns)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
multiplier: 3
output: json
fill: mean
fill_text: Mode
dedupe: true
columns:
  - sale_price
  - area
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Multiplier)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, FillMean, cfg.Fill)
	assert.Equal(t, FillTextMode, cfg.FillText)
	assert.True(t, cfg.Dedupe)
	assert.Equal(t, []string{"sale_price", "area"}, cfg.Columns)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "multiplier: 3\noutput: json\n")
	t.Setenv("IQRCAP_MULTIPLIER", "2")
	t.Setenv("IQRCAP_COLUMNS", "a, b,,c")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Columns)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("IQRCAP_OUTPUT", "json")
	t.Setenv("IQRCAP_FILL", "zero")

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--output", "csv", "--columns", "x,y", "--multiplier", "0"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, OutputCSV, cfg.Output)
	assert.Equal(t, FillZero, cfg.Fill, "unchanged flags must not override env")
	assert.Equal(t, []string{"x", "y"}, cfg.Columns)
	assert.Equal(t, 0.0, cfg.Multiplier)
}

func TestLoad_CleaningFlags(t *testing.T) {
	t.Setenv("IQRCAP_DEDUPE", "true")
	t.Setenv("IQRCAP_FILL_TEXT", "none")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Dedupe)
	assert.Equal(t, FillTextNone, cfg.FillText)

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--fill-text", "mode", "--dedupe=false"}))
	cfg, err = Load("", fs)
	require.NoError(t, err)
	assert.False(t, cfg.Dedupe)
	assert.Equal(t, FillTextMode, cfg.FillText)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"output", []string{"--output", "xml"}, "unknown output format"},
		{"fill", []string{"--fill", "median"}, "unknown fill strategy"},
		{"fill text", []string{"--fill-text", "mean"}, "unknown text fill strategy"},
		{"multiplier", []string{"--multiplier", "-1"}, "multiplier must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlags(t)
			require.NoError(t, fs.Parse(tt.args))

			_, err := Load("", fs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{Multiplier: 0}
	out, err := outlier.Cap([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100}, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 4, 5, 6, 7, 7, 7}, out)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	_, err := FromContext(ctx)
	require.Error(t, err)
	require.NotNil(t, Logger(ctx))

	cfg := &Config{Output: OutputText}
	logger := testutil.NewTestLogger(t)
	ctx = WithLogger(WithConfig(ctx, cfg), logger)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, cfg, got)
	assert.Same(t, logger, Logger(ctx))
}
