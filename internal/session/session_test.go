package session

import "testing"

func TestManagerBeginCompleteReset(t *testing.T) {
	m := NewManager()
	chatA := int64(1)
	chatB := int64(2)

	if _, ok := m.Pending(chatA); ok {
		t.Fatalf("new manager should have nothing pending")
	}

	m.Begin(chatA, "first")
	m.Begin(chatA, "second")
	m.Begin(chatB, "other")

	if p, ok := m.Pending(chatA); !ok || p != "second" {
		t.Fatalf("unexpected pending for A: %q %v", p, ok)
	}

	p, ok := m.Complete(chatA)
	if !ok || p != "second" {
		t.Fatalf("unexpected complete for A: %q %v", p, ok)
	}
	if _, ok := m.Complete(chatA); ok {
		t.Fatalf("complete should clear the pending prompt")
	}

	m.Reset(chatB)
	if _, ok := m.Pending(chatB); ok {
		t.Fatalf("reset did not clear chat B")
	}
}
