// Package phrase holds the fixed catalog of phrases that can be counted.
package phrase

import (
	"strconv"
	"strings"
)

// Phrase is a single countable utterance. Values returned by the catalog are
// copies; mutating them does not affect the catalog.
type Phrase struct {
	ID       string   // Stable identifier, persisted in history and snapshots
	Arabic   string   // Display form in Arabic script
	Latin    string   // Display form in Latin transliteration
	Variants []string // Lowercase spoken forms recognized in transcripts
}

// Display returns the name shown next to counts and stored in daily records.
func (p Phrase) Display() string {
	return p.Latin
}

// Matches reports whether the transcript contains any of the phrase's
// spoken variants. Matching is a case-insensitive substring search.
func (p Phrase) Matches(transcript string) bool {
	text := Normalize(transcript)
	if text == "" {
		return false
	}
	for _, v := range p.Variants {
		if v != "" && strings.Contains(text, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims a transcript before matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var catalog = []Phrase{
	{
		ID:       "subhanallah",
		Arabic:   "سُبْحَانَ ٱللَّٰهِ",
		Latin:    "SubhanAllah",
		Variants: []string{"subhanallah", "subhan allah", "subhana allah", "سبحان الله"},
	},
	{
		ID:       "alhamdulillah",
		Arabic:   "ٱلْحَمْدُ لِلَّٰهِ",
		Latin:    "Alhamdulillah",
		Variants: []string{"alhamdulillah", "alhamdu lillah", "al hamdu lillah", "الحمد لله"},
	},
	{
		ID:       "allahuakbar",
		Arabic:   "ٱللَّٰهُ أَكْبَرُ",
		Latin:    "Allahu Akbar",
		Variants: []string{"allahu akbar", "allahuakbar", "allah akbar", "الله اكبر", "الله أكبر"},
	},
	{
		ID:       "lailahaillallah",
		Arabic:   "لَا إِلَٰهَ إِلَّا ٱللَّٰهُ",
		Latin:    "La ilaha illallah",
		Variants: []string{"la ilaha illallah", "la ilaha illa allah", "lailahaillallah", "لا إله إلا الله", "لا اله الا الله"},
	},
	{
		ID:       "astaghfirullah",
		Arabic:   "أَسْتَغْفِرُ ٱللَّٰهَ",
		Latin:    "Astaghfirullah",
		Variants: []string{"astaghfirullah", "astaghfir allah", "astagfirullah", "استغفر الله", "أستغفر الله"},
	},
	{
		ID:       "subhanallahibihamdihi",
		Arabic:   "سُبْحَانَ ٱللَّٰهِ وَبِحَمْدِهِ",
		Latin:    "SubhanAllahi wa bihamdihi",
		Variants: []string{"subhanallahi wa bihamdihi", "subhan allahi wa bihamdihi", "wa bihamdihi", "سبحان الله وبحمده"},
	},
}

// Catalog returns every phrase in display order.
func Catalog() []Phrase {
	out := make([]Phrase, len(catalog))
	for i, p := range catalog {
		out[i] = clone(p)
	}
	return out
}

// Default returns the first catalog entry, selected when nothing else is.
func Default() Phrase {
	return clone(catalog[0])
}

// Lookup finds a phrase by its ID.
func Lookup(id string) (Phrase, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return clone(p), true
		}
	}
	return Phrase{}, false
}

// Find resolves user input to a phrase. It accepts the ID, the Latin display
// form (case-insensitive, spaces ignored) or a 1-based catalog position.
func Find(query string) (Phrase, bool) {
	q := squash(query)
	if q == "" {
		return Phrase{}, false
	}
	for i, p := range catalog {
		if p.ID == q || squash(p.Latin) == q || strconv.Itoa(i+1) == q {
			return clone(p), true
		}
	}
	return Phrase{}, false
}

// Index returns the catalog position of the phrase with the given ID, or -1.
func Index(id string) int {
	for i, p := range catalog {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Cycle returns the phrase delta steps away from id, wrapping around.
// Unknown IDs start from the first entry.
func Cycle(id string, delta int) Phrase {
	i := Index(id)
	if i < 0 {
		i = 0
	}
	n := len(catalog)
	return clone(catalog[((i+delta)%n+n)%n])
}

func clone(p Phrase) Phrase {
	p.Variants = append([]string(nil), p.Variants...)
	return p
}

func squash(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", "")
}
