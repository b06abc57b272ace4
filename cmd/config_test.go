package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShowConfig_Defaults(t *testing.T) {
	env := setupTest(t)

	showConfig()

	assertNoError(t, env)
	out := env.stdout.String()
	assertContains(t, out, "Config file: "+filepath.Join(env.configDir, "config.toml"))
	assertContains(t, out, "storage.backend     file")
	assertContains(t, out, "storage.dir         "+env.configDir)
	assertContains(t, out, "voice.command       (not set)")
	assertContains(t, out, "sound.output        none")
	assertContains(t, out, "ui.dark_theme       dracula")
}

func TestShowConfig_FileAndOverrides(t *testing.T) {
	env := setupTest(t)
	env.writeConfig(t, `[storage]
backend = "sqlite"

[voice]
command = ["vosk-stream", "--json"]
locale = "ar-EG"
`)

	showConfig()
	out := env.stdout.String()
	assertContains(t, out, "storage.backend     sqlite")
	assertContains(t, out, "voice.command       vosk-stream --json")
	assertContains(t, out, "voice.locale        ar-EG")

	t.Setenv(envBackend, "memory")
	t.Setenv(envDataDir, "/tmp/tasbih-data")

	env.reset()
	showConfig()
	out = env.stdout.String()
	assertContains(t, out, "storage.backend     memory")
	assertContains(t, out, "storage.dir         /tmp/tasbih-data")
}

func TestShowConfig_Invalid(t *testing.T) {
	env := setupTest(t)
	env.writeConfig(t, "[sound]\nfrequency = 5\n")

	showConfig()

	assertExitError(t, env, "Invalid configuration")
	assertContains(t, env.stderr.String(), "invalid sound frequency")
}

func TestInitConfig(t *testing.T) {
	env := setupTest(t)
	path := filepath.Join(env.configDir, "config.toml")
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	initConfig()

	assertNoError(t, env)
	assertContains(t, env.stdout.String(), "Created config file: "+path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected config file to exist: %v", err)
	}
	if !strings.Contains(string(data), "[voice]") {
		t.Errorf("Sample config missing [voice] section: %s", data)
	}

	env.reset()
	initConfig()
	assertExitError(t, env, "Failed to create config file")
	assertContains(t, env.stderr.String(), "already exists")
}

func TestShowConfigPath(t *testing.T) {
	env := setupTest(t)

	showConfigPath()

	assertNoError(t, env)
	if got := strings.TrimSpace(env.stdout.String()); got != filepath.Join(env.configDir, "config.toml") {
		t.Errorf("config path = %q", got)
	}
}

func TestEnvOverridesBackend(t *testing.T) {
	env := setupTest(t)
	t.Setenv(envBackend, "sqlite")

	cfg, _, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite from %s", cfg.Storage.Backend, envBackend)
	}
	if env.exitCode != 0 {
		t.Errorf("Unexpected exit %d", env.exitCode)
	}
}
