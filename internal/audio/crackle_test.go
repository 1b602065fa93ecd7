package audio

import (
	"math"
	"testing"
	"time"
)

func energy(samples [][2]float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += math.Abs(s[0])
	}
	return sum
}

func TestCrackleSilentWithoutFire(t *testing.T) {
	c := NewCrackle(SampleRate, 1)
	samples := make([][2]float64, 4410)
	n, ok := c.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	if e := energy(samples); e != 0 {
		t.Fatalf("expected silence, got energy %f", e)
	}
}

func TestCrackleFollowsFire(t *testing.T) {
	c := NewCrackle(SampleRate, 2)
	c.SetFire(FullFire * 3)
	if got := c.Intensity(); got != 1 {
		t.Fatalf("intensity = %f, want clamp to 1", got)
	}

	samples := make([][2]float64, SampleRate.N(time.Second))
	c.Stream(samples)
	if energy(samples) == 0 {
		t.Fatal("expected pops at full intensity over one second")
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, s)
		}
	}

	c.SetFire(-5)
	if got := c.Intensity(); got != 0 {
		t.Fatalf("intensity = %f, want 0", got)
	}
}

func TestWithVolumeSilences(t *testing.T) {
	c := NewCrackle(SampleRate, 3)
	c.SetFire(FullFire)
	s := withVolume(c, 0)
	samples := make([][2]float64, 44100)
	s.Stream(samples)
	if e := energy(samples); e != 0 {
		t.Fatalf("muted stream produced energy %f", e)
	}
	if s.Err() != nil {
		t.Fatalf("unexpected error %v", s.Err())
	}
}
