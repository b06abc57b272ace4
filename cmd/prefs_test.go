package cmd

import (
	"testing"
)

func TestSetSound(t *testing.T) {
	env := setupTest(t)

	setSound(nil)
	assertContains(t, env.stdout.String(), "Sound: on")

	env.reset()
	setSound([]string{"off"})
	assertNoError(t, env)
	assertContains(t, env.stdout.String(), "Sound: off")
	if env.snapshot(t).SoundEnabled {
		t.Error("Expected soundEnabled false to be persisted")
	}

	env.reset()
	setSound([]string{"on"})
	assertContains(t, env.stdout.String(), "Sound: on")
	if !env.snapshot(t).SoundEnabled {
		t.Error("Expected soundEnabled true to be persisted")
	}
}

func TestSetTheme(t *testing.T) {
	env := setupTest(t)
	env.writeConfig(t, "[sound]\noutput = \"none\"\n\n[ui]\ndark_theme = \"nord\"\n")

	setTheme(nil)
	assertContains(t, env.stdout.String(), "Theme: light (github)")

	env.reset()
	setTheme([]string{"dark"})
	assertNoError(t, env)
	assertContains(t, env.stdout.String(), "Theme: dark (nord)")
	if !env.snapshot(t).DarkMode {
		t.Error("Expected darkMode true to be persisted")
	}
}

func TestPrefsCommands_RejectInvalidArgs(t *testing.T) {
	if err := soundCmd.Args(soundCmd, []string{"loud"}); err == nil {
		t.Error("Expected sound to reject 'loud'")
	}
	if err := themeCmd.Args(themeCmd, []string{"blue"}); err == nil {
		t.Error("Expected theme to reject 'blue'")
	}
	if err := themeCmd.Args(themeCmd, []string{"dark"}); err != nil {
		t.Errorf("Expected theme to accept 'dark', got %v", err)
	}
}
