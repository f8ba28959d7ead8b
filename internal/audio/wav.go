// Package audio is the boundary to the WAV codec. Voice-note payloads are
// mono 16-bit PCM at 44100 Hz; everything else in the system deals in raw
// []int16 sample buffers.
package audio

import (
	"fmt"
	"math"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	sampleRate  = 44100
	bitDepth    = 16
	numChannels = 1
)

// Encode writes samples to path as a mono 44100 Hz 16-bit PCM WAV file.
// An empty sample slice produces a valid zero-length file.
func Encode(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChannels, 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return nil
}

// Decode reads a 16-bit PCM WAV file back into samples. Malformed input is
// a hard failure; it is never retried here.
func Decode(path string) ([]int16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("decode %s: not a valid wav file", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = clamp(v)
	}
	return out, nil
}

// FromFloats converts normalized float samples to 16-bit integers,
// x -> round(x*32767).
func FromFloats(fs []float64) []int16 {
	out := make([]int16, len(fs))
	for i, x := range fs {
		out[i] = clamp(int(math.Round(x * 32767)))
	}
	return out
}

func clamp(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
