package main

import (
	"slices"
	"testing"
	"time"
)

func TestRespawnQueueDueOrder(t *testing.T) {
	var q RespawnQueue
	t0 := time.Unix(1000, 0)
	q.Schedule("late", t0.Add(3*time.Second))
	q.Schedule("early", t0.Add(time.Second))
	q.Schedule("tie1", t0.Add(2*time.Second))
	q.Schedule("tie2", t0.Add(2*time.Second))

	if got := q.Due(t0); len(got) != 0 {
		t.Fatalf("nothing should be due at t0, got %v", got)
	}
	if got := q.Due(t0.Add(2 * time.Second)); !slices.Equal(got, []string{"early", "tie1", "tie2"}) {
		t.Errorf("unexpected due order %v", got)
	}
	if q.Len() != 1 {
		t.Errorf("expected 1 pending, got %d", q.Len())
	}
	if got := q.Due(t0.Add(time.Hour)); !slices.Equal(got, []string{"late"}) {
		t.Errorf("expected late, got %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty")
	}
}

func TestRespawnQueueFiresAtExactDeadline(t *testing.T) {
	var q RespawnQueue
	at := time.Unix(50, 0).Add(RespawnDelay)
	q.Schedule("p", at)
	if got := q.Due(at.Add(-time.Nanosecond)); len(got) != 0 {
		t.Errorf("fired early: %v", got)
	}
	if got := q.Due(at); !slices.Equal(got, []string{"p"}) {
		t.Errorf("expected p at the deadline, got %v", got)
	}
}
