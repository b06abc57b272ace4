// Package voice turns a continuous speech-to-text stream into increments of
// the selected phrase.
package voice

import "strings"

// Error kinds reported by engines. Kinds outside this list are passed
// through as reported.
const (
	ErrorNoSpeech = "no-speech"
	ErrorAborted  = "aborted"
	ErrorAudio    = "audio-capture"
	ErrorProcess  = "process"
)

// Options configures a recognition.
type Options struct {
	Continuous     bool
	InterimResults bool
	Locale         string
}

// Alternative is one candidate transcript of a result.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Result is one segment of recognized speech. Interim results may still
// change; final ones will not.
type Result struct {
	Final        bool          `json:"isFinal"`
	Alternatives []Alternative `json:"alternatives"`
}

// ResultEvent is one delivery of recognized speech. Results before
// ResultIndex were delivered by earlier events.
type ResultEvent struct {
	ResultIndex int      `json:"resultIndex"`
	Results     []Result `json:"results"`
}

// Transcript concatenates the best alternative of every final result from
// ResultIndex on. When none of them is final the interim results are used
// instead.
func (e ResultEvent) Transcript() string {
	start := e.ResultIndex
	if start < 0 {
		start = 0
	}

	var final, interim strings.Builder
	for i := start; i < len(e.Results); i++ {
		r := e.Results[i]
		if len(r.Alternatives) == 0 {
			continue
		}
		if r.Final {
			final.WriteString(r.Alternatives[0].Transcript)
		} else {
			interim.WriteString(r.Alternatives[0].Transcript)
		}
	}
	if final.Len() > 0 {
		return final.String()
	}
	return interim.String()
}

// ErrorEvent reports a recognition error.
type ErrorEvent struct {
	Kind    string
	Message string
}

// Benign reports whether the error is expected during normal listening and
// should not be surfaced.
func (e ErrorEvent) Benign() bool {
	return e.Kind == ErrorNoSpeech || e.Kind == ErrorAborted
}

// Handlers receive recognition callbacks. They may be called from any
// goroutine.
type Handlers struct {
	OnStart  func()
	OnResult func(ResultEvent)
	OnError  func(ErrorEvent)
	OnEnd    func()
}

// Engine creates recognitions.
type Engine interface {
	// Available reports whether speech recognition can run on this host.
	Available() bool
	Create(opts Options, h Handlers) (Recognition, error)
}

// Recognition is one capture handle. After it ends it may be started again.
type Recognition interface {
	Start() error
	Stop() error
}
