package main

import "testing"

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "panic"},
		{"3", "error"},
		{"6", "info"},
		{"7", "debug"},
		{"debug", "debug"},
		{"warn", "warn"},
	}
	for _, tt := range tests {
		got := resolveLogLevel(tt.input)
		if got != tt.want {
			t.Errorf("resolveLogLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"serve", "config", "version", "repl"} {
		if !names[want] {
			t.Errorf("expected rootCmd to register %q subcommand", want)
		}
	}
}

func TestConfigCommandRegistersShow(t *testing.T) {
	for _, cmd := range configCmd.Commands() {
		if cmd.Name() == "show" {
			return
		}
	}
	t.Fatal("expected configCmd to register a \"show\" subcommand")
}
