package world

import (
	"fmt"
	"strings"
)

// Validate checks the structural integrity of a world against a catalog of
// known fixture types. All violations are collected and reported together.
// The input is never mutated.
func Validate(w *World, catalog TypeCatalog) error {
	v := &validator{catalog: catalog}
	v.validateWorld(w)

	if len(v.errors) > 0 {
		return fmt.Errorf("invalid world %q:\n%s", w.WorldID, strings.Join(v.errors, "\n"))
	}
	return nil
}

type validator struct {
	catalog TypeCatalog
	errors  []string
}

func (v *validator) addError(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *validator) validateWorld(w *World) {
	if _, ok := w.Rooms[w.StartRoom]; !ok {
		v.addError("start_room %q does not exist", w.StartRoom)
	}

	seenUsables := make(map[string]string) // usable ID → room ID
	for roomID, room := range w.Rooms {
		v.validateRoom(w, roomID, room, seenUsables)
	}
}

func (v *validator) validateRoom(w *World, roomID string, room *Room, seenUsables map[string]string) {
	for direction, target := range room.Exits {
		if !ValidDirections[direction] {
			v.addError("room %q: invalid exit direction %q", roomID, direction)
		}
		if _, ok := w.Rooms[target]; !ok {
			v.addError("room %q: exit %s points to unknown room %q", roomID, direction, target)
		}
	}

	if room.FloorItem != "" {
		if _, ok := w.Items[room.FloorItem]; !ok {
			v.addError("room %q: unknown floor_item %q", roomID, room.FloorItem)
		}
	}

	if room.Usable != nil {
		v.validateUsable(w, roomID, room.Usable, seenUsables)
	}
}

func (v *validator) validateUsable(w *World, roomID string, u *Usable, seenUsables map[string]string) {
	if _, ok := v.catalog[u.Type]; !ok {
		v.addError("room %q: unknown usable type %q", roomID, u.Type)
	}

	if prev, dup := seenUsables[u.ID]; dup {
		v.addError("room %q: usable id %q already used in room %q", roomID, u.ID, prev)
	} else {
		seenUsables[u.ID] = roomID
	}

	if u.RequiresItem != "" {
		if _, ok := w.Items[u.RequiresItem]; !ok {
			v.addError("room %q: unknown requires_item %q", roomID, u.RequiresItem)
		}
		if !u.Locked {
			v.addError("room %q: usable %q has requires_item but locked=false", roomID, u.ID)
		}
	}

	if u.Type == TypeDoor {
		if u.RevealsExit == nil {
			v.addError("room %q: door %q has no reveals_exit", roomID, u.ID)
			return
		}
		if !ValidDirections[u.RevealsExit.Direction] {
			v.addError("room %q: door %q has invalid direction %q", roomID, u.ID, u.RevealsExit.Direction)
		}
		if _, ok := w.Rooms[u.RevealsExit.ToRoom]; !ok {
			v.addError("room %q: door %q points to unknown room %q", roomID, u.ID, u.RevealsExit.ToRoom)
		}
	}
}
