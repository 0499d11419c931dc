package commands

import (
	"log/slog"
	"testing"

	"github.com/thoreinstein/dotstore/internal/config"
)

func resetRootFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		verbosity = 0
		quiet = false
		logFormat = "text"
		logFile = ""
		cfg = nil
		configLoadErr = nil
	})
}

func TestRootCommand_Metadata(t *testing.T) {
	if rootCmd.Use != "dotstore" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "dotstore")
	}
	if !rootCmd.SilenceUsage {
		t.Error("usage output should be silenced so errors are reported once")
	}

	for _, flag := range []string{"verbose", "quiet", "log-format", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s should be defined", flag)
		}
	}
}

func TestSetupLogging_QuietAndVerboseConflict(t *testing.T) {
	resetRootFlags(t)
	quiet = true
	verbosity = 1

	c, _ := newTestCmd()
	if err := setupLogging(c); err == nil {
		t.Error("setupLogging() should reject --quiet with --verbose")
	}
}

func TestSetupLogging_QuietSuppressesInfo(t *testing.T) {
	resetRootFlags(t)
	quiet = true

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	c, buf := newTestCmd()
	if err := setupLogging(c); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}

	slog.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("info log leaked in quiet mode: %q", buf.String())
	}

	slog.Error("should appear")
	if buf.Len() == 0 {
		t.Error("error log suppressed in quiet mode")
	}
}

func TestCheckConfig_InvalidConfig(t *testing.T) {
	resetRootFlags(t)
	cfg = &config.Config{Version: 0, Output: "xml"}

	c, _ := newTestCmd()
	c.Use = "list"
	if err := checkConfig(c); err == nil {
		t.Error("checkConfig() should reject an invalid config")
	}
}

func TestCheckConfig_SkipsHelpAndVersion(t *testing.T) {
	resetRootFlags(t)
	cfg = &config.Config{Version: 0}

	c, _ := newTestCmd()
	c.Use = "version"
	if err := checkConfig(c); err != nil {
		t.Errorf("checkConfig() should skip the version command, got %v", err)
	}
}
