package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathoo/gnusto/types"
)

func writeGame(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MinimalGame(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, "game.lua", `
Game { title = "Test", start = "hall", max_carry = 10 }

Room "hall" {
	name = "Entrance Hall",
	description = "A bare hall.",
	lit = true,
	exits = { { dir = "north", to = "cellar" } },
}

Room "cellar" {
	name = "Cellar",
	description = "Dark and damp.",
	exits = { { dir = "south", to = "hall" } },
}

Item "lamp" {
	name = "brass lamp",
	adjectives = {"brass"},
	location = "hall",
	flags = {"takable", "light_source"},
}
`)

	defs, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if defs.Game.Start != "hall" {
		t.Errorf("Start = %q, want hall", defs.Game.Start)
	}
	if len(defs.Locations) != 2 {
		t.Errorf("len(Locations) = %d, want 2", len(defs.Locations))
	}
	lamp, ok := defs.Items["lamp"]
	if !ok {
		t.Fatal("lamp not compiled")
	}
	lightSource, _ := types.ItemFlagByName("light_source")
	if !lamp.Flags.Has(lightSource) {
		t.Error("lamp should have FlagLightSource set")
	}
	if !lamp.Parent.IsLocation("hall") {
		t.Errorf("lamp.Parent = %+v, want location hall", lamp.Parent)
	}
}

func TestLoad_MissingGameBlock(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, "game.lua", `Room "hall" { name = "Hall" }`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for missing Game{} block")
	}
}

func TestLoad_RejectsBadExitReference(t *testing.T) {
	dir := t.TempDir()
	writeGame(t, dir, "game.lua", `
Game { title = "Test", start = "hall" }
Room "hall" { name = "Hall", exits = { { dir = "north", to = "nowhere" } } }
`)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error for dangling exit")
	}
}

func TestLoad_NoLuaFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for empty game directory")
	}
}
