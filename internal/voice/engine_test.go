package voice

import "testing"

func result(final bool, text string) Result {
	return Result{Final: final, Alternatives: []Alternative{{Transcript: text}}}
}

func TestResultEvent_Transcript(t *testing.T) {
	tests := []struct {
		name  string
		event ResultEvent
		want  string
	}{
		{
			name:  "single final",
			event: ResultEvent{Results: []Result{result(true, "subhan allah")}},
			want:  "subhan allah",
		},
		{
			name:  "finals concatenated from result index",
			event: ResultEvent{ResultIndex: 1, Results: []Result{result(true, "old "), result(true, "i said "), result(true, "subhanallah")}},
			want:  "i said subhanallah",
		},
		{
			name:  "final wins over interim",
			event: ResultEvent{Results: []Result{result(true, "final"), result(false, "interim")}},
			want:  "final",
		},
		{
			name:  "interim fallback",
			event: ResultEvent{Results: []Result{result(false, "subhana"), result(false, "llah")}},
			want:  "subhanallah",
		},
		{
			name:  "empty alternatives skipped",
			event: ResultEvent{Results: []Result{{Final: true}, result(false, "x")}},
			want:  "x",
		},
		{
			name:  "index past results",
			event: ResultEvent{ResultIndex: 3, Results: []Result{result(true, "ignored")}},
			want:  "",
		},
		{
			name:  "negative index treated as zero",
			event: ResultEvent{ResultIndex: -1, Results: []Result{result(true, "a")}},
			want:  "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Transcript(); got != tt.want {
				t.Errorf("Transcript() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorEvent_Benign(t *testing.T) {
	for kind, want := range map[string]bool{
		ErrorNoSpeech: true,
		ErrorAborted:  true,
		ErrorAudio:    false,
		ErrorProcess:  false,
		"network":     false,
	} {
		if got := (ErrorEvent{Kind: kind}).Benign(); got != want {
			t.Errorf("Benign(%q) = %v, want %v", kind, got, want)
		}
	}
}
