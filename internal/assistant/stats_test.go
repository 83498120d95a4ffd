package assistant

import (
	"testing"
	"time"
)

func TestReplyStats_EmptySnapshot(t *testing.T) {
	s := NewReplyStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zeroed snapshot, got %+v", snap)
	}
}

func TestReplyStats_Aggregates(t *testing.T) {
	s := NewReplyStats(time.Hour)
	for _, ms := range []int64{100, 200, 300} {
		s.Record(time.Duration(ms) * time.Millisecond)
	}
	snap := s.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("expected 3 samples, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 300 {
		t.Errorf("unexpected min/max %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 200 {
		t.Errorf("expected avg 200, got %v", snap.AvgMs)
	}
	if snap.P50Ms != 200 {
		t.Errorf("expected p50 200, got %v", snap.P50Ms)
	}
}

func TestReplyStats_NegativeClampedToZero(t *testing.T) {
	s := NewReplyStats(time.Hour)
	s.Record(-5 * time.Millisecond)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %d", snap.MinMs)
	}
}

func TestReplyStats_WindowPrunes(t *testing.T) {
	s := NewReplyStats(10 * time.Millisecond)
	s.Record(50 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if snap := s.Snapshot(); snap.Count != 0 {
		t.Errorf("expected expired samples pruned, got %d", snap.Count)
	}
}
