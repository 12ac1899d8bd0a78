package handlers

import (
	"testing"

	"github.com/nathoo/gnusto/types"
)

// sequenceDice returns a fixed sequence of rolls, repeating the last value
// once exhausted — enough determinism for assertions without depending on
// the engine's concrete RNG.
type sequenceDice struct {
	rolls []int
	i     int
}

func (d *sequenceDice) Roll(sides int) int {
	if d.i >= len(d.rolls) {
		return d.rolls[len(d.rolls)-1]
	}
	r := d.rolls[d.i]
	d.i++
	if r > sides {
		return sides
	}
	return r
}

func combatContext(dice Dice) (Context, *types.GameState) {
	ctx, s := testContext()
	s.Items["goblin"] = &types.Item{
		ID: "goblin", Name: "goblin",
		Parent: types.Parent{Kind: types.ParentLocation, ID: "hall"},
		Flags:  types.FlagCharacter | types.FlagIsEnemy,
		Character: &types.CharacterSheet{
			Health: 10, MaxHealth: 10, Attack: 3, Defense: 1,
		},
	}
	ctx.Dice = dice
	return ctx, s
}

func TestAttack_MissDoesNotDamageEnemy(t *testing.T) {
	// roll 1 on a d20 is a guaranteed miss against any reasonable defense.
	ctx, s := combatContext(&sequenceDice{rolls: []int{1}})
	ctx.Command = types.Command{Verb: "attack", DirectObject: ptr(types.ItemRef("goblin"))}

	res := AttackHandler{}.Process(ctx)
	if len(res.Changes) != 0 {
		t.Fatalf("a miss should produce no StateChanges, got %v", res.Changes)
	}
	if s.Items["goblin"].Character.Health != 10 {
		t.Fatal("enemy health must be untouched on a miss")
	}
}

func TestAttack_HitReducesHealthAndEnemyCountersBack(t *testing.T) {
	// 20 on the player's d20 guarantees a hit; the enemy's d6 counter-roll
	// follows.
	ctx, s := combatContext(&sequenceDice{rolls: []int{20, 4}})
	ctx.Command = types.Command{Verb: "attack", DirectObject: ptr(types.ItemRef("goblin"))}

	res := AttackHandler{}.Process(ctx)
	for _, c := range res.Changes {
		if c.Attribute == types.AttrCharacterHealth {
			s.Items[c.TargetID].Character.Health = c.NewValue.(int)
		}
		if c.Attribute == types.AttrPlayerHealth {
			s.Player.Health = c.NewValue.(int)
		}
	}
	if s.Items["goblin"].Character.Health >= 10 {
		t.Fatalf("expected goblin health to drop below 10, got %d", s.Items["goblin"].Character.Health)
	}
	if s.Player.Health >= 100 {
		t.Fatalf("expected player to take counter-attack damage, got health %d", s.Player.Health)
	}
}

func TestAttack_DefeatDropsLoot(t *testing.T) {
	ctx, s := combatContext(&sequenceDice{rolls: []int{20}})
	s.Items["goblin"].Character.Health = 1
	s.Items["ear"] = &types.Item{ID: "ear", Name: "goblin ear", Parent: types.Parent{Kind: types.ParentNowhere}}
	s.Items["goblin"].Character.Loot = []types.LootEntry{{ItemID: "ear", Chance: 100}}
	ctx.Command = types.Command{Verb: "attack", DirectObject: ptr(types.ItemRef("goblin"))}

	res := AttackHandler{}.Process(ctx)
	applyChanges(s, res.Changes)
	if !s.Items["ear"].Parent.IsLocation("hall") {
		t.Fatal("a 100%% loot chance must always drop on defeat")
	}
	if s.Items["goblin"].Flags.Has(types.FlagIsEnemy) {
		t.Fatal("defeated enemy should lose its is_enemy flag")
	}
}

func TestAttack_RequiresWeaponWhenDemanded(t *testing.T) {
	ctx, s := combatContext(&sequenceDice{rolls: []int{20}})
	s.Items["goblin"].Character.RequiresWeapon = true
	ctx.Command = types.Command{Verb: "attack", DirectObject: ptr(types.ItemRef("goblin"))}

	res := AttackHandler{}.Process(ctx)
	if len(res.Changes) != 0 {
		t.Fatal("attacking bare-handed against a weapon-requiring enemy must produce no changes")
	}
}
