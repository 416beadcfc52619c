package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"qualitybuilt/internal/config"
	"qualitybuilt/internal/nav"
)

func TestViewsCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"views"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("views: %v", err)
	}
	got := strings.Fields(out.String())
	if len(got) != len(nav.Views()) {
		t.Fatalf("listed %v, want %d views", got, len(nav.Views()))
	}
	for i, v := range nav.Views() {
		if got[i] != v.String() {
			t.Errorf("view %d = %q, want %q", i, got[i], v)
		}
	}
}

func TestRootCommand_RejectsUnknownView(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--view", "blog"})

	err := cmd.Execute()
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("QUALITYBUILT_START_VIEW", "gallery")
	t.Setenv("QUALITYBUILT_LOG_LEVEL", "warn")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--view", "Terms", "--log-file", "/tmp/qb.log", "--debug"}); err != nil {
		t.Fatal(err)
	}
	view, _ := cmd.Flags().GetString("view")
	logFile, _ := cmd.Flags().GetString("log-file")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := loadConfig(cmd, rootFlags{view: view, logFile: logFile, debug: debug})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InitialView() != nav.Terms {
		t.Errorf("view = %v, want terms", cfg.InitialView())
	}
	if cfg.LogFile != "/tmp/qb.log" || cfg.LogLevel != "debug" {
		t.Errorf("log settings = %q/%q", cfg.LogFile, cfg.LogLevel)
	}
}

func TestLoadConfig_EnvWithoutFlags(t *testing.T) {
	t.Setenv("QUALITYBUILT_START_VIEW", "privacy")

	cmd := newRootCmd()
	cfg, err := loadConfig(cmd, rootFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InitialView() != nav.Privacy {
		t.Errorf("view = %v, want privacy", cfg.InitialView())
	}
}

func TestLoadConfig_FlagRescuesBadEnvView(t *testing.T) {
	t.Setenv("QUALITYBUILT_START_VIEW", "blog")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--view", "home"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(cmd, rootFlags{view: "home"})
	if err != nil {
		t.Fatalf("--view home should override the env value: %v", err)
	}
	if cfg.InitialView() != nav.Home {
		t.Errorf("view = %v, want home", cfg.InitialView())
	}

	if _, err := loadConfig(newRootCmd(), rootFlags{}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("without the flag err = %v, want ErrInvalid", err)
	}
}
