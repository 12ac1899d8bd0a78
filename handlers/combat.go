package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/types"
)

// AttackHandler implements ATTACK/HIT/FIGHT <enemy> [WITH <weapon>]. One
// player blow per call; when the enemy survives, its reply
// (enemyCounterAttack) is resolved in the same call, so both sides route
// through this handler's StateChanges.
type AttackHandler struct{}

func (AttackHandler) Verb() string        { return "attack" }
func (AttackHandler) RequiresLight() bool { return true }
func (AttackHandler) ConsumesTurn() bool  { return true }

func (AttackHandler) Process(ctx Context) types.ActionResult {
	enemy := objectItem(ctx.State, ctx.Command.DirectObject)
	if enemy == nil {
		return msg("Attack what?")
	}
	if enemy.Character == nil || !enemy.Flags.Has(types.FlagIsEnemy) {
		return msg(fmt.Sprintf("Attacking the %s would accomplish nothing.", enemy.Name))
	}

	weapon := objectItem(ctx.State, ctx.Command.IndirectObject)
	if enemy.Character.RequiresWeapon {
		wantWeapon := enemy.Character.PreferredWeapon
		if weapon == nil || (wantWeapon != "" && weapon.ID != wantWeapon) {
			return msg(fmt.Sprintf("You need %s to fight the %s effectively.", describeNeededWeapon(wantWeapon), enemy.Name))
		}
	}

	roll := ctx.Dice.Roll(20)
	playerAttack := 5
	if weapon != nil {
		if bonus, ok := weapon.Props["attack_bonus"].(int); ok {
			playerAttack += bonus
		}
	}
	hit := roll+playerAttack > 10+enemy.Character.Defense
	if !hit {
		return types.ActionResult{
			Message:     fmt.Sprintf("You attack the %s, but miss.", enemy.Name),
			SideEffects: startCombatIfNeeded(ctx, enemy.ID),
		}
	}

	damage := 3 + roll%4
	newHP := enemy.Character.Health - damage
	changes := []types.StateChange{
		types.CharacterHealthChange(enemy.ID, newHP),
	}
	sideEffects := startCombatIfNeeded(ctx, enemy.ID)
	message := fmt.Sprintf("You strike the %s for %d damage.", enemy.Name, damage)

	if newHP <= 0 {
		changes = append(changes, types.FlagChange(enemy.ID, types.FlagIsEnemy, false))
		sideEffects = append(sideEffects, types.SideEffect{Type: types.SideEndCombat})
		lootChanges, lootLines := processLoot(ctx, enemy)
		changes = append(changes, lootChanges...)
		message = fmt.Sprintf("You strike the %s for %d damage, defeating it!", enemy.Name, damage)
		for _, line := range lootLines {
			message += "\n" + line
		}
		return types.ActionResult{Message: message, Changes: changes, SideEffects: sideEffects}
	}

	// The enemy survives this round and strikes back.
	counterChanges, counterLine, defeated := enemyCounterAttack(ctx, enemy)
	changes = append(changes, counterChanges...)
	if counterLine != "" {
		message += "\n" + counterLine
	}
	if defeated {
		sideEffects = append(sideEffects, types.SideEffect{Type: types.SideEndCombat})
	}

	return types.ActionResult{
		Message:     message,
		Changes:     changes,
		SideEffects: sideEffects,
	}
}

// enemyCounterAttack selects the enemy's action via its weighted behavior
// table (empty table defaults to always attacking) and, on an "attack"
// action, rolls damage against the player. defeated reports whether the
// player's health reached zero.
func enemyCounterAttack(ctx Context, enemy *types.Item) ([]types.StateChange, string, bool) {
	action := "attack"
	if len(enemy.Character.Behavior) > 0 {
		weights := make([]int, len(enemy.Character.Behavior))
		for i, b := range enemy.Character.Behavior {
			weights[i] = b.Weight
		}
		action = enemy.Character.Behavior[weightedIndex(ctx.Dice, weights)].Action
	}
	if action != "attack" {
		return nil, fmt.Sprintf("The %s hesitates.", enemy.Name), false
	}

	roll := ctx.Dice.Roll(6)
	damage := roll + enemy.Character.Attack - 2
	if damage < 1 {
		damage = 1
	}
	newHealth := ctx.State.Player.Health - damage
	defeated := newHealth <= 0
	if newHealth < 0 {
		newHealth = 0
	}
	line := fmt.Sprintf("The %s strikes back for %d damage!", enemy.Name, damage)
	changes := []types.StateChange{{TargetID: "player", Attribute: types.AttrPlayerHealth, NewValue: newHealth}}
	if defeated {
		changes = append(changes, types.StateChange{TargetID: "game_over", Attribute: types.AttrGlobalFlag, NewValue: true})
		line += fmt.Sprintf(" You have been defeated by the %s.", enemy.Name)
	}
	return changes, line, defeated
}

// weightedIndex picks an index from weights proportional to their size,
// without requiring handlers to depend on the engine's concrete RNG type.
func weightedIndex(dice Dice, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	roll := dice.Roll(total) - 1
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// processLoot rolls the enemy's loot table on defeat, moving successful
// drops to the current location and reporting a line per drop.
func processLoot(ctx Context, enemy *types.Item) ([]types.StateChange, []string) {
	var changes []types.StateChange
	var lines []string
	for _, entry := range enemy.Character.Loot {
		if ctx.Dice.Roll(100) > entry.Chance {
			continue
		}
		loot := ctx.State.Items[entry.ItemID]
		if loot == nil {
			continue
		}
		changes = append(changes, types.ReparentChange(loot.ID, types.Parent{Kind: types.ParentLocation, ID: ctx.Location.ID}))
		lines = append(lines, fmt.Sprintf("The %s dropped: %s.", enemy.Name, loot.Name))
	}
	return changes, lines
}

func describeNeededWeapon(id string) string {
	if id == "" {
		return "a weapon"
	}
	return "the right weapon"
}

func startCombatIfNeeded(ctx Context, enemyID string) []types.SideEffect {
	if ctx.State.InCombat() && ctx.State.Combat.EnemyID == enemyID {
		return nil
	}
	return []types.SideEffect{{Type: types.SideStartCombat, Params: map[string]any{"enemy_id": enemyID}}}
}

