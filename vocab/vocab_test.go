package vocab

import (
	"testing"

	"github.com/nathoo/gnusto/types"
)

func TestMatchVerb(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		wantID   string
		wantN    int
		wantOK   bool
	}{
		{name: "single word", words: []string{"take", "lamp"}, wantID: "take", wantN: 1, wantOK: true},
		{name: "two word phrase preferred over prefix", words: []string{"pick", "up", "lamp"}, wantID: "take", wantN: 2, wantOK: true},
		{name: "look at expands to examine", words: []string{"look", "at", "troll"}, wantID: "examine", wantN: 2, wantOK: true},
		{name: "bare look stays look", words: []string{"look"}, wantID: "look", wantN: 1, wantOK: true},
		{name: "unknown verb", words: []string{"frobnicate", "lamp"}, wantOK: false},
		{name: "empty input", words: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, n, ok := MatchVerb(tt.words)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if id != tt.wantID || n != tt.wantN {
				t.Errorf("MatchVerb(%v) = (%q, %d), want (%q, %d)", tt.words, id, n, tt.wantID, tt.wantN)
			}
		})
	}
}

func TestBuildNounIndex(t *testing.T) {
	items := map[string]*types.Item{
		"brass_lamp": {
			ID:         "brass_lamp",
			Name:       "lamp",
			Adjectives: map[string]bool{"brass": true},
			Synonyms:   map[string]bool{"lantern": true},
		},
		"rusty_key": {
			ID:         "rusty_key",
			Name:       "key",
			Adjectives: map[string]bool{"rusty": true, "brass": true},
		},
	}
	idx := BuildNounIndex(items)

	if got := idx.CandidatesForNoun("lamp"); len(got) != 1 || got[0] != "brass_lamp" {
		t.Errorf("CandidatesForNoun(lamp) = %v", got)
	}
	if got := idx.CandidatesForNoun("lantern"); len(got) != 1 || got[0] != "brass_lamp" {
		t.Errorf("CandidatesForNoun(lantern) = %v", got)
	}
	if got := idx.CandidatesForAdjective("brass"); len(got) != 2 {
		t.Errorf("CandidatesForAdjective(brass) = %v, want 2 matches", got)
	}
	if idx.KnowsNoun("gronk") {
		t.Errorf("KnowsNoun(gronk) = true, want false")
	}
}

func TestIsDirection(t *testing.T) {
	if d, ok := IsDirection("NE"); !ok || d != "northeast" {
		t.Errorf("IsDirection(NE) = (%q, %v), want (northeast, true)", d, ok)
	}
	if _, ok := IsDirection("sideways"); ok {
		t.Errorf("IsDirection(sideways) = true, want false")
	}
}

func TestVerbsRegistryCoversContractTable(t *testing.T) {
	required := []string{
		"take", "drop", "put_on", "insert", "open", "close", "lock", "unlock",
		"wear", "remove", "turn_on", "turn_off", "burn", "extinguish", "go",
		"enter", "climb", "attack", "read", "examine", "look", "inventory",
		"score", "wait", "save", "restore", "restart", "quit", "script",
		"unscript", "verbose", "brief", "ask", "tell", "yes", "no", "debug", "xyzzy",
	}
	for _, id := range required {
		if _, ok := Verbs[id]; !ok {
			t.Errorf("Verbs missing contract verb %q", id)
		}
	}
}
