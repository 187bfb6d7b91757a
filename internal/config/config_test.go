package config

import (
	"log/slog"
	"testing"
)

func withEnv(t *testing.T, key, value string) {
	t.Helper()
	t.Setenv(key, value)
}

func TestFromEnvDefaults(t *testing.T) {
	withEnv(t, "NO_COLOR", "")
	withEnv(t, "MINICLJ_MAX_DEPTH", "")
	cfg := FromEnv(false, false)
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, DefaultMaxDepth)
	}
}

func TestFromEnvNoColorEnvVar(t *testing.T) {
	withEnv(t, "NO_COLOR", "1")
	cfg := FromEnv(false, false)
	if !cfg.NoColor {
		t.Error("NO_COLOR env var should force NoColor true even without the CLI flag")
	}
}

func TestFromEnvMaxDepthOverride(t *testing.T) {
	withEnv(t, "MINICLJ_MAX_DEPTH", "42")
	cfg := FromEnv(false, false)
	if cfg.MaxDepth != 42 {
		t.Errorf("MaxDepth = %d, want 42", cfg.MaxDepth)
	}
}

func TestFromEnvMaxDepthIgnoresInvalidOrNonPositive(t *testing.T) {
	withEnv(t, "MINICLJ_MAX_DEPTH", "not-a-number")
	cfg := FromEnv(false, false)
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default %d for unparsable override", cfg.MaxDepth, DefaultMaxDepth)
	}

	withEnv(t, "MINICLJ_MAX_DEPTH", "-5")
	cfg = FromEnv(false, false)
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default %d for a non-positive override", cfg.MaxDepth, DefaultMaxDepth)
	}
}

func TestLoggerLevelFollowsVerbose(t *testing.T) {
	quiet := FromEnv(false, false).Logger()
	if quiet.Enabled(nil, slog.LevelDebug) {
		t.Error("non-verbose logger should not emit debug-level records")
	}

	verbose := FromEnv(true, false).Logger()
	if !verbose.Enabled(nil, slog.LevelDebug) {
		t.Error("verbose logger should emit debug-level records")
	}
}
