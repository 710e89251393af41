package engo

import (
	"testing"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

func TestInputState_KeyState(t *testing.T) {
	s := NewInputState()

	for _, k := range []entity.Key{entity.KeyUp, entity.KeyLeft, entity.KeyRight} {
		if s.KeyState(k) {
			t.Errorf("%v held before any input", k)
		}
	}

	s.Set(true, false, true)
	tests := []struct {
		key  entity.Key
		want bool
	}{
		{entity.KeyUp, true},
		{entity.KeyLeft, false},
		{entity.KeyRight, true},
	}
	for _, tt := range tests {
		if got := s.KeyState(tt.key); got != tt.want {
			t.Errorf("KeyState(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestInputState_ReadControls(t *testing.T) {
	s := NewInputState()
	s.Set(true, true, true)

	got := entity.ReadControls(s)
	want := physics.ControlInput{Up: true, Left: true, Right: true}
	if got != want {
		t.Errorf("ReadControls = %+v, want %+v", got, want)
	}
}

func TestInputState_QuitIsSticky(t *testing.T) {
	s := NewInputState()

	if events := s.PollEvents(); len(events) != 0 {
		t.Fatalf("PollEvents = %v before quit, want none", events)
	}

	s.RequestQuit()
	for i := 0; i < 3; i++ {
		if !entity.HasQuit(s.PollEvents()) {
			t.Errorf("poll %d after RequestQuit reported no quit", i+1)
		}
	}
}
