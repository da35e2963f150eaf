package auth

import "testing"

func TestServiceAllowlist(t *testing.T) {
	s := New([]int64{3, 1, 2, 1})
	if !s.IsAllowed(1) || !s.IsAllowed(3) {
		t.Fatalf("expected allowed users")
	}
	if s.IsAllowed(4) {
		t.Fatalf("unexpected allowed user 4")
	}
	got := s.List()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected list: %v", got)
	}
	if New(nil).IsAllowed(0) {
		t.Fatalf("empty allowlist must deny everyone")
	}
}
