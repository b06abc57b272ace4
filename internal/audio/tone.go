// Package audio plays the short feedback tone that confirms a count.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// Tone describes a sine tone whose gain decays exponentially from Gain to
// FloorGain over Duration.
type Tone struct {
	Frequency  float64
	Duration   time.Duration
	Gain       float64
	FloorGain  float64
	SampleRate int
}

// DefaultTone is the 800 Hz, 100 ms confirmation tone.
func DefaultTone() Tone {
	return Tone{
		Frequency:  800,
		Duration:   100 * time.Millisecond,
		Gain:       0.3,
		FloorGain:  0.01,
		SampleRate: 44100,
	}
}

// Samples returns the number of samples in the rendered tone.
func (t Tone) Samples() int {
	return int(float64(t.SampleRate) * t.Duration.Seconds())
}

// GainAt returns the envelope at time offset s seconds.
func (t Tone) GainAt(s float64) float64 {
	d := t.Duration.Seconds()
	if d <= 0 || t.Gain <= 0 {
		return 0
	}
	if s >= d {
		return t.FloorGain
	}
	return t.Gain * math.Pow(t.FloorGain/t.Gain, s/d)
}

// PCM renders the tone as signed 16-bit mono samples.
func (t Tone) PCM() []int16 {
	n := t.Samples()
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		s := float64(i) / float64(t.SampleRate)
		v := t.GainAt(s) * math.Sin(2*math.Pi*t.Frequency*s)
		out[i] = int16(math.Round(v * math.MaxInt16))
	}
	return out
}

// wavHeader is the canonical 44-byte header of a PCM WAVE file.
type wavHeader struct {
	RIFF          [4]byte
	ChunkSize     uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// WAV renders the tone as a 16-bit mono RIFF/WAVE file.
func (t Tone) WAV() []byte {
	pcm := t.PCM()
	dataSize := uint32(len(pcm) * 2)

	h := wavHeader{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		Channels:      1,
		SampleRate:    uint32(t.SampleRate),
		ByteRate:      uint32(t.SampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}

	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))
	_ = binary.Write(&buf, binary.LittleEndian, h)
	_ = binary.Write(&buf, binary.LittleEndian, pcm)
	return buf.Bytes()
}
