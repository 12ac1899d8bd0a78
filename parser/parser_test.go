package parser

import (
	"testing"

	"github.com/nathoo/gnusto/types"
	"github.com/nathoo/gnusto/vocab"
)

func testWorld() World {
	s := types.NewGameState()
	loc := &types.Location{ID: "attic", Name: "Attic", Flags: types.LocInherentlyLit}
	s.Locations["attic"] = loc

	s.Items["brass_lamp"] = &types.Item{
		ID: "brass_lamp", Name: "lamp",
		Adjectives: map[string]bool{"brass": true},
		Parent:     types.Parent{Kind: types.ParentLocation, ID: "attic"},
	}
	s.Items["rusty_key"] = &types.Item{
		ID: "rusty_key", Name: "key",
		Adjectives: map[string]bool{"rusty": true},
		Parent:     types.Parent{Kind: types.ParentPlayer},
	}
	s.Items["brass_key"] = &types.Item{
		ID: "brass_key", Name: "key",
		Adjectives: map[string]bool{"brass": true},
		Parent:     types.Parent{Kind: types.ParentLocation, ID: "attic"},
	}

	idx := vocab.BuildNounIndex(s.Items)
	return World{State: s, Location: loc, NounIndex: idx}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("   ", testWorld())
	if _, ok := err.(EmptyInputError); !ok {
		t.Fatalf("got %v, want EmptyInputError", err)
	}
}

func TestParse_UnknownVerb(t *testing.T) {
	_, err := Parse("frobnicate", testWorld())
	if _, ok := err.(UnknownVerbError); !ok {
		t.Fatalf("got %v, want UnknownVerbError", err)
	}
}

func TestParse_BareDirection(t *testing.T) {
	cmd, err := Parse("n", testWorld())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Verb != "go" || cmd.Direction != "north" {
		t.Errorf("got %+v", cmd)
	}
}

func TestParse_TakeWithArticle(t *testing.T) {
	cmd, err := Parse("take the brass lamp", testWorld())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Verb != "take" || cmd.DirectObject == nil || cmd.DirectObject.ID != "brass_lamp" {
		t.Errorf("got %+v", cmd)
	}
}

func TestParse_AmbiguousNoun(t *testing.T) {
	_, err := Parse("take key", testWorld())
	ae, ok := err.(AmbiguityError)
	if !ok {
		t.Fatalf("got %v, want AmbiguityError", err)
	}
	if len(ae.Candidates) != 2 {
		t.Errorf("candidates = %v, want 2", ae.Candidates)
	}
}

func TestParse_AdjectiveDisambiguates(t *testing.T) {
	cmd, err := Parse("take rusty key", testWorld())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.DirectObject.ID != "rusty_key" {
		t.Errorf("got %+v", cmd)
	}
}

func TestParse_ModifierMismatch(t *testing.T) {
	_, err := Parse("take silver key", testWorld())
	if _, ok := err.(ModifierMismatchError); !ok {
		t.Fatalf("got %v, want ModifierMismatchError", err)
	}
}

func TestParse_ItemNotInScope(t *testing.T) {
	w := testWorld()
	w.Location = &types.Location{ID: "cellar", Name: "Cellar"}
	w.State.Locations["cellar"] = w.Location
	_, err := Parse("take brass lamp", w)
	if _, ok := err.(ItemNotInScopeError); !ok {
		t.Fatalf("got %v, want ItemNotInScopeError", err)
	}
}

func TestParse_PronounNotSet(t *testing.T) {
	_, err := Parse("take it", testWorld())
	if _, ok := err.(PronounNotSetError); !ok {
		t.Fatalf("got %v, want PronounNotSetError", err)
	}
}

func TestParse_PronounResolves(t *testing.T) {
	w := testWorld()
	w.State.Pronouns["it"] = map[string]bool{"brass_lamp": true}
	cmd, err := Parse("take it", w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.DirectObject.ID != "brass_lamp" {
		t.Errorf("got %+v", cmd)
	}
}

func TestParse_PutOnWithPreposition(t *testing.T) {
	w := testWorld()
	w.State.Items["shelf"] = &types.Item{
		ID: "shelf", Name: "shelf", Flags: types.FlagSurface,
		Parent: types.Parent{Kind: types.ParentLocation, ID: "attic"},
	}
	w.NounIndex = vocab.BuildNounIndex(w.State.Items)

	cmd, err := Parse("put rusty key on shelf", w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Verb != "put_on" || cmd.DirectObject.ID != "rusty_key" || cmd.IndirectObject.ID != "shelf" {
		t.Errorf("got %+v", cmd)
	}
}
