package tabstop_test

import (
	"testing"

	"github.com/tetherssh/vtcore/internal/tabstop"
)

func TestDefaultInterval(t *testing.T) {
	s := tabstop.New(26, 8)

	want := map[int]bool{7: true, 15: true, 23: true}
	for x, expect := range want {
		if s.Get(x) != expect {
			t.Errorf("Get(%d) = %v, want %v", x, s.Get(x), expect)
		}
	}
	for _, x := range []int{0, 1, 8, 16, 24, 25} {
		if s.Get(x) {
			t.Errorf("Get(%d) = true, want false", x)
		}
	}
}

func TestSetUnset(t *testing.T) {
	s := tabstop.New(10, 0)
	if s.Get(3) {
		t.Fatalf("interval 0 should install no default stops")
	}
	s.Set(3)
	if !s.Get(3) {
		t.Fatalf("Set(3) did not stick")
	}
	s.Unset(3)
	if s.Get(3) {
		t.Fatalf("Unset(3) did not clear")
	}
}

func TestResetAll(t *testing.T) {
	s := tabstop.New(20, 8)
	s.Reset(0)
	for x := 0; x < 20; x++ {
		if s.Get(x) {
			t.Fatalf("Reset(0) left a stop at %d", x)
		}
	}
}

func TestOutOfRangeIsIgnored(t *testing.T) {
	s := tabstop.New(5, 0)
	s.Set(-1)
	s.Set(100)
	if s.Get(-1) || s.Get(100) {
		t.Fatalf("out-of-range Set should have no effect")
	}
}

func TestResizeRebuildsAtInterval(t *testing.T) {
	s := tabstop.New(10, 8)
	s.Set(3)
	s.Resize(24, 8)
	if s.Cols() != 24 {
		t.Fatalf("Cols() = %d, want 24", s.Cols())
	}
	if s.Get(3) {
		t.Fatalf("Resize should discard custom stops")
	}
	if !s.Get(7) || !s.Get(15) || !s.Get(23) {
		t.Fatalf("Resize should reinstate default interval stops")
	}
}
