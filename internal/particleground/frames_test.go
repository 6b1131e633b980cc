package particleground

import "testing"

func TestFrameQueueOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []int

	q.RequestFrame(func() { got = append(got, 1) })
	q.RequestFrame(func() { got = append(got, 2) })
	q.RequestFrame(func() { got = append(got, 3) })

	if n := q.Tick(); n != 3 {
		t.Errorf("expected 3 callbacks, got %d", n)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("unexpected order %v", got)
	}
	if q.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", q.Pending())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false

	id := q.RequestFrame(func() { ran = true })
	if id == 0 {
		t.Fatal("frame ids must be non-zero")
	}
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(12345)

	if n := q.Tick(); n != 0 || ran {
		t.Errorf("cancelled frame ran (n=%d)", n)
	}
}

func TestFrameQueueDefersNewRequests(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	var loop func()
	loop = func() {
		count++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 0; i < 4; i++ {
		if n := q.Tick(); n != 1 {
			t.Fatalf("tick %d ran %d callbacks", i, n)
		}
	}
	if count != 4 {
		t.Errorf("expected 4 runs, got %d", count)
	}
	if q.Pending() != 1 {
		t.Errorf("expected one pending frame, got %d", q.Pending())
	}
}

func TestFrameQueueCancelDuringTick(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	var second FrameID

	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })

	if n := q.Tick(); n != 1 {
		t.Errorf("expected 1 callback, got %d", n)
	}
	if ran {
		t.Error("frame cancelled mid-tick still ran")
	}
}
