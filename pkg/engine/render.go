package engine

import (
	"sort"
	"strings"

	"github.com/jwebster45206/breadcrumb/pkg/state"
	"github.com/jwebster45206/breadcrumb/pkg/world"
)

// RenderRoom produces the textual view of the session's current room:
// title, description, available exits (static plus dynamically revealed),
// any visible unclaimed floor item, and any fixture with its status. It
// has no side effects and is safe to call repeatedly.
func RenderRoom(w *world.World, sess *state.Session) string {
	room := w.Rooms[sess.CurrentRoom]

	var lines []string
	lines = append(lines, "== "+room.Title+" ==")
	lines = append(lines, "")
	lines = append(lines, room.Description)
	lines = append(lines, "")

	exits := make(map[string]bool)
	for direction := range room.Exits {
		exits[direction] = true
	}
	for direction := range sess.DynamicExits[room.ID] {
		exits[direction] = true
	}
	if len(exits) == 0 {
		lines = append(lines, "Exits: none")
	} else {
		sorted := make([]string, 0, len(exits))
		for direction := range exits {
			sorted = append(sorted, direction)
		}
		sort.Strings(sorted)
		lines = append(lines, "Exits: "+strings.Join(sorted, ", "))
	}

	if room.FloorItem != "" &&
		sess.ItemVisible(room.FloorItem) &&
		!sess.RoomItemTaken[room.ID] {
		lines = append(lines, "You see: "+w.Items[room.FloorItem].Name)
	}

	if u := room.Usable; u != nil {
		lines = append(lines, "Interactable: "+u.Name+" ("+usableStatus(u, sess)+")")
	}

	return strings.Join(lines, "\n")
}

func usableStatus(u *world.Usable, sess *state.Session) string {
	status, ok := sess.UsableState[u.ID]
	if !ok {
		status = state.UsableStatus{Locked: u.Locked}
	}

	switch {
	case status.Locked:
		return "locked"
	case status.Used:
		return "used"
	case u.Type == world.TypeButton:
		return "unused"
	default:
		return "open"
	}
}
