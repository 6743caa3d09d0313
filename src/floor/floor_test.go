package floor

import (
	"testing"

	"elevsim/src/types"
)

func TestEnqueueRoutesByDirection(t *testing.T) {
	f := New(3)
	f.Enqueue(types.Passenger{ID: 1, Origin: 3, Dest: 7})
	f.Enqueue(types.Passenger{ID: 2, Origin: 3, Dest: 0})

	if !f.HasUpRequest() || !f.HasDownRequest() {
		t.Fatalf("Expected both queues to be non-empty, got up=%d down=%d", len(f.UpQueue), len(f.DownQueue))
	}
	if f.UpQueue[0].ID != 1 {
		t.Errorf("Expected passenger 1 in up queue, got %v", f.UpQueue)
	}
	if f.DownQueue[0].ID != 2 {
		t.Errorf("Expected passenger 2 in down queue, got %v", f.DownQueue)
	}
	if f.Waiting() != 2 {
		t.Errorf("Expected 2 waiting, got %d", f.Waiting())
	}
}

func TestPopIsFIFO(t *testing.T) {
	f := New(0)
	for id := 1; id <= 4; id++ {
		f.Enqueue(types.Passenger{ID: id, Origin: 0, Dest: id, ArrivalTick: id})
	}
	for want := 1; want <= 4; want++ {
		p, ok := f.Pop(types.DirUp)
		if !ok {
			t.Fatalf("Expected passenger %d, queue empty", want)
		}
		if p.ID != want {
			t.Errorf("Expected passenger %d, got %d", want, p.ID)
		}
	}
	if _, ok := f.Pop(types.DirUp); ok {
		t.Errorf("Expected empty queue after draining")
	}
	if f.HasRequest() {
		t.Errorf("Expected no pending request")
	}
}

func TestPopStopHasNoQueue(t *testing.T) {
	f := New(1)
	f.Enqueue(types.Passenger{ID: 1, Origin: 1, Dest: 2})
	if _, ok := f.Pop(types.DirStop); ok {
		t.Errorf("Expected DirStop pop to fail")
	}
	if f.HasRequestIn(types.DirStop) {
		t.Errorf("Expected DirStop to report no request")
	}
	if f.Len(types.DirUp) != 1 {
		t.Errorf("Expected up queue untouched, got %d", f.Len(types.DirUp))
	}
}
