package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Output kinds accepted by NewOutput.
const (
	OutputAuto    = "auto"
	OutputCommand = "command"
	OutputBell    = "bell"
	OutputNone    = "none"
)

var (
	// ErrNoPlayer is returned when no supported audio player is installed.
	ErrNoPlayer = errors.New("no audio player found (tried paplay, aplay, afplay)")
	// ErrUnknownOutput is returned for an unsupported output kind.
	ErrUnknownOutput = errors.New("unknown sound output")
)

// Output plays a rendered WAV document.
type Output interface {
	Play(wav []byte) error
}

// Player describes an external command able to play a WAV document.
type Player struct {
	Name string
	Args []string
	// FromFile means the player cannot read stdin and needs a file argument.
	FromFile bool
}

// Players are tried in order by FindPlayer.
var Players = []Player{
	{Name: "paplay"},
	{Name: "aplay", Args: []string{"-q"}},
	{Name: "afplay", FromFile: true},
}

// FindPlayer returns a CommandOutput for the first player lookPath resolves.
func FindPlayer(lookPath func(string) (string, error)) (*CommandOutput, error) {
	for _, p := range Players {
		path, err := lookPath(p.Name)
		if err == nil {
			return &CommandOutput{Path: path, Player: p}, nil
		}
	}
	return nil, ErrNoPlayer
}

// CommandOutput pipes the tone to an external player process.
type CommandOutput struct {
	Path   string
	Player Player
}

// Play runs the player and waits for it to exit.
func (o *CommandOutput) Play(wav []byte) error {
	args := append([]string(nil), o.Player.Args...)

	if o.Player.FromFile {
		f, err := os.CreateTemp("", "tasbih-*.wav")
		if err != nil {
			return fmt.Errorf("failed to create temp file: %w", err)
		}
		defer func() { _ = os.Remove(f.Name()) }()
		if _, err := f.Write(wav); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write temp file: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		args = append(args, f.Name())
	}

	cmd := exec.Command(o.Path, args...)
	if !o.Player.FromFile {
		cmd.Stdin = bytes.NewReader(wav)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", o.Player.Name, err, msg)
		}
		return fmt.Errorf("%s failed: %w", o.Player.Name, err)
	}
	return nil
}

// BellOutput rings the terminal bell instead of playing the tone.
type BellOutput struct {
	W io.Writer
}

func (o BellOutput) Play([]byte) error {
	_, err := io.WriteString(o.W, "\a")
	return err
}

// NopOutput discards the tone.
type NopOutput struct{}

func (NopOutput) Play([]byte) error { return nil }

// NewOutput builds the output for kind. "auto" prefers an external player
// and falls back to the terminal bell.
func NewOutput(kind string, bell io.Writer, lookPath func(string) (string, error)) (Output, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", OutputAuto:
		if p, err := FindPlayer(lookPath); err == nil {
			return p, nil
		}
		return BellOutput{W: bell}, nil
	case OutputCommand:
		return FindPlayer(lookPath)
	case OutputBell:
		return BellOutput{W: bell}, nil
	case OutputNone:
		return NopOutput{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, kind)
	}
}
