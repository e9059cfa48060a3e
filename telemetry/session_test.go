package telemetry

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestCollectorLifecycle(t *testing.T) {
	c := NewCollector(7)

	if _, ok := c.End(10, 1, OutcomeDied); ok {
		t.Fatal("End without Begin should report no session")
	}

	c.RecordPickups(4) // ignored, no session yet
	c.Begin(100, 10, 8)
	if !c.Active() {
		t.Fatal("expected active session after Begin")
	}
	c.RecordPickups(3)
	c.RecordPickups(2)
	c.RecordBounces(6)
	c.RecordSystemError()

	rec, ok := c.End(220, 2.0, OutcomeCleared)
	if !ok {
		t.Fatal("expected a record")
	}
	if c.Active() {
		t.Error("session should be closed after End")
	}

	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Errorf("record ID is not a uuid: %v", err)
	}
	if rec.Seed != 7 || rec.StartTick != 100 || rec.EndTick != 220 {
		t.Errorf("unexpected ticks/seed: %+v", rec)
	}
	if rec.PeepsCollected != 5 || rec.PeepsSpawned != 10 || rec.Walls != 8 {
		t.Errorf("unexpected counts: %+v", rec)
	}
	if rec.Bounces != 6 || rec.SystemErrors != 1 {
		t.Errorf("unexpected bounce/error counts: %+v", rec)
	}
	if rec.Outcome != OutcomeCleared {
		t.Errorf("expected outcome %q, got %q", OutcomeCleared, rec.Outcome)
	}

	c.Begin(300, 10, 8)
	next, _ := c.End(301, 0.1, OutcomeSkipped)
	if next.ID == rec.ID {
		t.Error("sessions should get distinct IDs")
	}
	if len(c.History()) != 2 {
		t.Errorf("expected 2 sessions in history, got %d", len(c.History()))
	}
}

func TestSummarize(t *testing.T) {
	records := []SessionRecord{
		{Outcome: OutcomeCleared, DurationSec: 10, PeepsSpawned: 10, PeepsCollected: 10},
		{Outcome: OutcomeDied, DurationSec: 20, PeepsSpawned: 10, PeepsCollected: 4},
		{Outcome: OutcomeDied, DurationSec: 30, PeepsSpawned: 10, PeepsCollected: 1},
		{Outcome: OutcomeSkipped, DurationSec: 40, PeepsSpawned: 10, PeepsCollected: 5},
	}

	s := Summarize(records)

	if s.Sessions != 4 || s.Cleared != 1 || s.Died != 2 || s.Skipped != 1 {
		t.Errorf("unexpected outcome counts: %+v", s)
	}
	if s.ClearRate != 0.25 {
		t.Errorf("expected clear rate 0.25, got %f", s.ClearRate)
	}
	if s.DurationMean != 25 {
		t.Errorf("expected mean duration 25, got %f", s.DurationMean)
	}
	// Sample standard deviation of 10,20,30,40
	if math.Abs(s.DurationStd-12.909944) > 1e-4 {
		t.Errorf("expected std ~12.91, got %f", s.DurationStd)
	}
	if s.DurationMedian != 20 {
		t.Errorf("expected empirical median 20, got %f", s.DurationMedian)
	}
	if s.CollectedMean != 5 {
		t.Errorf("expected mean collected 5, got %f", s.CollectedMean)
	}
	if s.CollectedRatio != 0.5 {
		t.Errorf("expected collected ratio 0.5, got %f", s.CollectedRatio)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if s := Summarize(nil); s.Sessions != 0 || s.ClearRate != 0 {
		t.Errorf("empty summary should be zero, got %+v", s)
	}

	s := Summarize([]SessionRecord{{Outcome: OutcomeDied, DurationSec: 3}})
	if s.DurationMean != 3 || s.DurationStd != 0 || s.DurationMedian != 3 {
		t.Errorf("single session summary wrong: %+v", s)
	}
	if s.CollectedRatio != 0 {
		t.Error("zero spawned should not divide")
	}
}
