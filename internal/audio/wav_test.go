package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	samples := []int16{0, 16384, -16384, 32767, -32768, 1, -1}
	path := filepath.Join(t.TempDir(), "note.wav")

	if err := Encode(path, samples); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("sample[%d] = %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestEncodeEmptyProducesValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	if err := Encode(path, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("decoded %d samples, want 0", len(got))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("not a riff header"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Decode(path); err == nil {
		t.Fatal("Decode accepted garbage input")
	}
}

func TestFromFloats(t *testing.T) {
	got := FromFloats([]float64{0, 1, -1, 0.5, -0.5})
	want := []int16{0, 32767, -32767, 16384, -16384}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FromFloats[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFromFloatsClampsOverrange(t *testing.T) {
	got := FromFloats([]float64{2.0, -2.0})
	if got[0] != 32767 || got[1] != -32768 {
		t.Fatalf("FromFloats overrange = %v, want clamped extremes", got)
	}
}
