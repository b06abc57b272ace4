package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/session"
	"github.com/xolan/tasbih/internal/voice"
)

// listenQueueSize is the number of engine events that may wait for the loop.
const listenQueueSize = 64

// listenCmd represents the listen command
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Count by voice without the terminal UI",
	Long: `Listen for the selected phrase and count every time it is recognized.

Recognition runs the speech-to-text program set in voice.command of the
config file. It is restarted whenever it ends on its own, until you press
Ctrl-C.

Examples:
  tasbih listen                  Listen until Ctrl-C
  tasbih listen --until-target   Stop once the target is reached`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		untilTarget, _ := cmd.Flags().GetBool("until-target")
		listen(untilTarget)
	},
}

func init() {
	listenCmd.Flags().Bool("until-target", false, "Stop listening once the target is reached")
	rootCmd.AddCommand(listenCmd)
}

// listen runs the voice adapter on a session loop until interrupted
func listen(untilTarget bool) {
	a := mustOpenApp()
	if a == nil {
		return
	}
	defer a.Close()

	delay, _ := a.cfg.Voice.RestartDelayDuration()
	sigCtx, stopSignals := deps.SignalContext()
	defer stopSignals()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	loop := session.NewLoop(listenQueueSize)
	var adapter *voice.Adapter
	adapter = voice.NewAdapter(voice.Config{
		Engine: deps.NewEngine(a.cfg.Voice.Command, deps.LookPath, a.logger),
		Locale: a.cfg.Voice.Locale,
		Post: func(ev voice.Event) {
			loop.Post(func() { adapter.Handle(ev) })
		},
		Selected: a.session.Selected,
		OnMatch: func(p phrase.Phrase) {
			wasCompleted := a.session.State().Completed()
			res, err := a.session.Handle(session.Increment{Source: session.SourceVoice})
			if err != nil {
				a.logger.Error("failed to count", "error", err)
				return
			}
			loop.After(res.ClearPulseAfter, func() {
				_, _ = a.session.Handle(session.ClearPulse{Seq: res.PulseSeq})
			})
			s := a.session.State()
			_, _ = fmt.Fprintf(deps.Stdout, "%s: %s\n", p.Latin, formatCount(s))
			if s.Completed() && !wasCompleted {
				_, _ = fmt.Fprintf(deps.Stdout, "Target of %d reached\n", s.Target)
				if untilTarget {
					adapter.Stop()
					cancel()
				}
			}
		},
		Logger:       a.logger,
		RestartDelay: delay,
	})

	var startErr error
	loop.Post(func() {
		if err := adapter.Start(); err != nil {
			startErr = err
			cancel()
			return
		}
		sel := a.session.Selected()
		_, _ = fmt.Fprintf(deps.Stdout, "Listening for %s (%s). Press Ctrl-C to stop.\n", sel.Latin, a.cfg.Voice.Locale)
	})
	loop.Run(ctx)
	adapter.Close()

	if startErr != nil {
		if errors.Is(startErr, voice.ErrUnavailable) {
			exitWithError("Voice recognition is not available", nil,
				"Set voice.command in "+configPathHint()+" to a speech-to-text program")
			return
		}
		exitWithError("Failed to start listening", startErr, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Stopped. Count: %s\n", formatCount(a.session.State()))
}
