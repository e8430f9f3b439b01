package config

import (
	"flag"
	"strings"
	"testing"
)

type envTestConfig struct {
	Count int `env:"PURERAND_TEST_COUNT" envDefault:"123"`
}

// TestParseEnvDefaults ensures envDefault values load without environment.
func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Count != 123 {
		t.Fatalf("expected default count 123, got %d", cfg.Count)
	}
}

// TestParseEnvOverride ensures set variables beat defaults.
func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PURERAND_TEST_COUNT", "7")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Count != 7 {
		t.Fatalf("expected count 7, got %d", cfg.Count)
	}
}

// TestParseEnvError ensures malformed values surface with context.
func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PURERAND_TEST_COUNT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

// TestParseArgsNilFlagSet ensures a missing flag parser is rejected.
func TestParseArgsNilFlagSet(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

// TestParseArgsNilArgs ensures nil args parse as empty.
func TestParseArgsNilArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("parse nil args: %v", err)
	}
}
