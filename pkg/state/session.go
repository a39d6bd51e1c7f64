// Package state holds the mutable per-agent progress record for one
// labyrinth session, and its (de)serialization to the flat JSON record
// written to the session store between commands.
package state

import (
	"encoding/json"
	"fmt"
)

// UsableStatus is the current lock/used status of one fixture.
type UsableStatus struct {
	Locked bool `json:"locked"`
	Used   bool `json:"used"`
}

// Session is the complete progress record for one agent playing one world.
// It is owned by exactly one agent and is never mutated concurrently.
type Session struct {
	Started        bool                         `json:"started"`
	CurrentRoom    string                       `json:"current_room"`
	Inventory      []string                     `json:"inventory"` // Ordered by pickup.
	RoomItemTaken  map[string]bool              `json:"room_item_taken"`
	ItemVisibility map[string]bool              `json:"item_visibility"`
	UsableState    map[string]UsableStatus      `json:"usable_state"`
	DynamicExits   map[string]map[string]string `json:"dynamic_exits"` // Room ID → direction → room ID.
	StepCount      int                          `json:"step_count"`
}

// New returns an empty, normalized session. The engine's InitialState is
// responsible for populating it from a world.
func New() *Session {
	s := &Session{}
	s.normalize()
	return s
}

// Holds reports whether the inventory contains the given item ID.
func (s *Session) Holds(itemID string) bool {
	for _, id := range s.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// ItemVisible reports whether an item is currently visible. Items with no
// recorded override are visible.
func (s *Session) ItemVisible(itemID string) bool {
	if visible, ok := s.ItemVisibility[itemID]; ok {
		return visible
	}
	return true
}

// DynamicExit returns the dynamically revealed exit target for a room and
// direction, or "" if none has been revealed.
func (s *Session) DynamicExit(roomID, direction string) string {
	return s.DynamicExits[roomID][direction]
}

// RevealExit records a dynamic exit scoped to the given room.
func (s *Session) RevealExit(roomID, direction, toRoom string) {
	if s.DynamicExits[roomID] == nil {
		s.DynamicExits[roomID] = map[string]string{}
	}
	s.DynamicExits[roomID][direction] = toRoom
}

// normalize replaces nil containers with empty ones so that decoded
// records compare field-for-field equal to freshly built sessions, and so
// records written by older builds (missing fields) still load.
func (s *Session) normalize() {
	if s.Inventory == nil {
		s.Inventory = []string{}
	}
	if s.RoomItemTaken == nil {
		s.RoomItemTaken = map[string]bool{}
	}
	if s.ItemVisibility == nil {
		s.ItemVisibility = map[string]bool{}
	}
	if s.UsableState == nil {
		s.UsableState = map[string]UsableStatus{}
	}
	if s.DynamicExits == nil {
		s.DynamicExits = map[string]map[string]string{}
	}
}

// Encode serializes the session to its stored JSON form.
func (s *Session) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	return data, nil
}

// Decode parses a stored session record. Missing fields default to empty
// containers and zero values; a record of the wrong shape is an error.
func Decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	s.normalize()
	return &s, nil
}
