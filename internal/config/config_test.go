package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, []string{".js", ".mjs", ".cjs"}, cfg.Extensions)
	require.Equal(t, "out", cfg.OutDir)
	require.False(t, cfg.FailOnUnterminated)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blts.yaml")
	body := "extensions: [\".js\"]\nfail_on_unterminated: true\nout_dir: build\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{".js"}, cfg.Extensions)
	require.True(t, cfg.FailOnUnterminated)
	require.Equal(t, "build", cfg.OutDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BLTS_OUT_DIR", "dist")
	t.Setenv("BLTS_EXTENSIONS", ".ts,.js")
	t.Setenv("BLTS_FAIL_ON_UNTERMINATED", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dist", cfg.OutDir)
	require.Equal(t, []string{".ts", ".js"}, cfg.Extensions)
	require.True(t, cfg.FailOnUnterminated)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default_ok", func(*Config) {}, false},
		{"empty_extensions", func(c *Config) { c.Extensions = nil }, true},
		{"missing_dot", func(c *Config) { c.Extensions = []string{"js"} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}
