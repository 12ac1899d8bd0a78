package tui

import "testing"

func TestHistory_PrevNext(t *testing.T) {
	h := NewHistory(10)
	h.Push("look")
	h.Push("take lamp")

	prev, ok := h.Prev()
	if !ok || prev != "take lamp" {
		t.Fatalf("Prev() = %q, %v, want take lamp, true", prev, ok)
	}
	prev, ok = h.Prev()
	if !ok || prev != "look" {
		t.Fatalf("Prev() = %q, %v, want look, true", prev, ok)
	}
	next, ok := h.Next()
	if !ok || next != "take lamp" {
		t.Fatalf("Next() = %q, %v, want take lamp, true", next, ok)
	}
	if _, ok := h.Next(); ok {
		t.Fatal("Next() past the end should return false")
	}
}

func TestHistory_SkipsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(10)
	h.Push("look")
	h.Push("look")
	if len(h.entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(h.entries))
	}
}

func TestClassifyLine(t *testing.T) {
	cases := map[string]lineKind{
		"You see: a lamp, a key.":    kindYouSee,
		"Exits: north, south.":       kindExits,
		"[Game saved to quicksave.]": kindSystem,
		"You don't see that here.":   kindError,
		"[trace] turn=3":             kindTrace,
		"A dusty attic.":             kindRoomDesc,
	}
	for line, want := range cases {
		if got := classifyLine(line); got != want {
			t.Errorf("classifyLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestRoomDisplayName(t *testing.T) {
	if got := roomDisplayName("great_hall"); got != "Great Hall" {
		t.Errorf("roomDisplayName() = %q, want Great Hall", got)
	}
}

func TestWordWrap(t *testing.T) {
	wrapped := wordWrap("the quick brown fox jumps", 10)
	if wrapped == "" {
		t.Fatal("wordWrap returned empty string")
	}
}
