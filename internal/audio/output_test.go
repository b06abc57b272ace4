package audio

import (
	"bytes"
	"errors"
	"testing"
)

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestFindPlayer(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      string
		wantErr   bool
	}{
		{"prefers paplay", []string{"aplay", "paplay"}, "paplay", false},
		{"falls back to aplay", []string{"aplay"}, "aplay", false},
		{"afplay on macOS", []string{"afplay"}, "afplay", false},
		{"nothing installed", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FindPlayer(lookPathFor(tt.available...))
			if tt.wantErr {
				if !errors.Is(err, ErrNoPlayer) {
					t.Errorf("FindPlayer() error = %v, want ErrNoPlayer", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindPlayer() error: %v", err)
			}
			if out.Player.Name != tt.want || out.Path != "/usr/bin/"+tt.want {
				t.Errorf("FindPlayer() = %+v, want %s", out, tt.want)
			}
		})
	}
}

func TestFindPlayer_AplayIsQuiet(t *testing.T) {
	out, err := FindPlayer(lookPathFor("aplay"))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Player.Args) != 1 || out.Player.Args[0] != "-q" {
		t.Errorf("aplay args = %v, want [-q]", out.Player.Args)
	}
}

func TestNewOutput(t *testing.T) {
	var bell bytes.Buffer

	tests := []struct {
		name      string
		kind      string
		available []string
		check     func(Output) bool
		wantErr   error
	}{
		{"auto with player", "auto", []string{"paplay"}, func(o Output) bool { _, ok := o.(*CommandOutput); return ok }, nil},
		{"auto without player", "", nil, func(o Output) bool { _, ok := o.(BellOutput); return ok }, nil},
		{"command", "Command", []string{"aplay"}, func(o Output) bool { _, ok := o.(*CommandOutput); return ok }, nil},
		{"command without player", "command", nil, nil, ErrNoPlayer},
		{"bell", "bell", []string{"paplay"}, func(o Output) bool { _, ok := o.(BellOutput); return ok }, nil},
		{"none", "none", nil, func(o Output) bool { _, ok := o.(NopOutput); return ok }, nil},
		{"unknown", "speaker", nil, nil, ErrUnknownOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewOutput(tt.kind, &bell, lookPathFor(tt.available...))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewOutput(%q) error = %v, want %v", tt.kind, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOutput(%q) error: %v", tt.kind, err)
			}
			if !tt.check(out) {
				t.Errorf("NewOutput(%q) = %T", tt.kind, out)
			}
		})
	}
}

func TestBellOutput_WritesBEL(t *testing.T) {
	var buf bytes.Buffer
	if err := (BellOutput{W: &buf}).Play(nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\a" {
		t.Errorf("bell wrote %q", buf.String())
	}
}

func TestNopOutput(t *testing.T) {
	if err := (NopOutput{}).Play([]byte("x")); err != nil {
		t.Errorf("NopOutput.Play() error: %v", err)
	}
}
