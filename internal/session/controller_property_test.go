package session

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/xolan/tasbih/internal/phrase"
	"github.com/xolan/tasbih/internal/storage"
	"github.com/xolan/tasbih/internal/tally"
)

func drawCommand(rt *rapid.T, label string) Command {
	switch rapid.IntRange(0, 7).Draw(rt, label) {
	case 0, 1, 2:
		return Increment{Source: SourceTap}
	case 3:
		return Decrement{}
	case 4:
		return SelectPhrase{ID: rapid.SampledFrom(phrase.Catalog()).Draw(rt, label+"_phrase").ID}
	case 5:
		return SetTarget{Target: rapid.SampledFrom(tally.Targets).Draw(rt, label+"_target")}
	case 6:
		return SetSound{Enabled: rapid.Bool().Draw(rt, label+"_sound")}
	default:
		return Reset{}
	}
}

// Whatever sequence of commands runs, the history length matches the count
// and the stored document hydrates back into the same session.
func TestProperty_StoredSnapshotMatchesLiveState(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		store := storage.NewMemoryStore()
		c := New(Options{Store: store, Logger: discardLogger(), NewID: sequentialIDs(), Now: func() time.Time { return fixedNow }})

		n := rapid.IntRange(1, 60).Draw(rt, "commands")
		for i := 0; i < n; i++ {
			if _, err := c.Handle(drawCommand(rt, fmt.Sprintf("cmd_%d", i))); err != nil {
				rt.Fatalf("command %d failed: %v", i, err)
			}
			if c.Count() < 0 || len(c.State().History) != c.Count() {
				rt.Fatalf("count %d, history %d", c.Count(), len(c.State().History))
			}
		}

		if _, ok, _ := store.Get(StateKey); !ok {
			// Nothing observable changed, so nothing was written.
			return
		}
		reloaded := New(Options{Store: store, Logger: discardLogger(), NewID: fixedID})
		reloaded.Hydrate()

		got, want := reloaded.Snapshot(), c.Snapshot()
		if got.Count != want.Count || got.Target != want.Target || got.SelectedZikr != want.SelectedZikr ||
			got.SoundEnabled != want.SoundEnabled || got.DeviceID != want.DeviceID ||
			len(got.History) != len(want.History) || tally.TotalCount(got.DailyRecords) != tally.TotalCount(want.DailyRecords) {
			rt.Fatalf("hydrated %+v, live %+v", got, want)
		}
	})
}
