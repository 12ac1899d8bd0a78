package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// roomDisplayName derives a human-readable name from a room ID.
// "great_hall" -> "Great Hall", "castle_gates" -> "Castle Gates".
func roomDisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing
// current room, exits, inventory, and turn count.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	loc := s.Locations[s.Player.Location]

	roomName := roomDisplayName(s.Player.Location)
	if loc != nil && loc.Name != "" {
		roomName = loc.Name
	}

	var dirs []string
	if loc != nil {
		for _, exit := range loc.Exits {
			dirs = append(dirs, exit.Direction)
		}
	}
	sort.Strings(dirs)
	exitStr := strings.Join(dirs, ",")

	inv := s.Inventory()

	left := fmt.Sprintf(" %s | Exits: %s", roomName, exitStr)
	right := fmt.Sprintf("T:%d ", s.TurnCount)

	if len(inv) > 0 {
		var names []string
		for _, id := range inv {
			name := id
			if it, ok := s.Items[id]; ok && it.Name != "" {
				name = it.Name
			}
			names = append(names, name)
		}
		invStr := strings.Join(names, ", ")
		candidate := fmt.Sprintf("Inv: %s | T:%d ", invStr, s.TurnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(inv), s.TurnCount)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
