package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() TypeCatalog {
	return TypeCatalog{
		TypeChest:  nil,
		TypeButton: nil,
		TypeDoor:   nil,
	}
}

// validTestWorld builds a small world that passes validation. Tests mutate
// a fresh copy to trigger individual violations.
func validTestWorld() *World {
	return &World{
		WorldID:   "test_world",
		StartRoom: "room1",
		Fairness:  map[string]bool{},
		Items: map[string]*Item{
			"key_bronze": {ID: "key_bronze", Name: "Bronze Key", InitiallyVisible: false},
			"paper_guid": {ID: "paper_guid", Name: "Crumpled Paper", InitiallyVisible: true},
		},
		Rooms: map[string]*Room{
			"room1": {
				ID:        "room1",
				Title:     "Room 1",
				Exits:     map[string]string{"E": "room2"},
				FloorItem: "key_bronze",
				Usable: &Usable{
					ID:          "button_room1",
					Type:        TypeButton,
					Name:        "Stone Button",
					RevealsItem: "key_bronze",
				},
			},
			"room2": {
				ID:    "room2",
				Title: "Room 2",
				Exits: map[string]string{"W": "room1"},
				Usable: &Usable{
					ID:           "door_room2",
					Type:         TypeDoor,
					Name:         "Oak Door",
					Locked:       true,
					RequiresItem: "key_bronze",
					RevealsExit:  &ExitReveal{Direction: "E", ToRoom: "room3"},
				},
			},
			"room3": {
				ID:    "room3",
				Title: "Room 3",
				Exits: map[string]string{},
			},
		},
	}
}

func TestValidate_ValidWorld(t *testing.T) {
	require.NoError(t, Validate(validTestWorld(), testCatalog()))
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(w *World)
		wantErr string
	}{
		{
			name:    "unknown start room",
			mutate:  func(w *World) { w.StartRoom = "nope" },
			wantErr: `start_room "nope" does not exist`,
		},
		{
			name:    "invalid exit direction",
			mutate:  func(w *World) { w.Rooms["room1"].Exits["UP"] = "room2" },
			wantErr: `invalid exit direction "UP"`,
		},
		{
			name:    "exit to unknown room",
			mutate:  func(w *World) { w.Rooms["room1"].Exits["N"] = "nope" },
			wantErr: `exit N points to unknown room "nope"`,
		},
		{
			name:    "unknown floor item",
			mutate:  func(w *World) { w.Rooms["room1"].FloorItem = "nope" },
			wantErr: `unknown floor_item "nope"`,
		},
		{
			name:    "unknown usable type",
			mutate:  func(w *World) { w.Rooms["room1"].Usable.Type = "Lamp" },
			wantErr: `unknown usable type "Lamp"`,
		},
		{
			name:    "duplicate usable id",
			mutate:  func(w *World) { w.Rooms["room2"].Usable.ID = "button_room1" },
			wantErr: `usable id "button_room1" already used`,
		},
		{
			name:    "unknown requires_item",
			mutate:  func(w *World) { w.Rooms["room2"].Usable.RequiresItem = "nope" },
			wantErr: `unknown requires_item "nope"`,
		},
		{
			name: "requires_item without locked",
			mutate: func(w *World) {
				w.Rooms["room2"].Usable.Locked = false
			},
			wantErr: `has requires_item but locked=false`,
		},
		{
			name: "door with invalid direction",
			mutate: func(w *World) {
				w.Rooms["room2"].Usable.RevealsExit.Direction = "Q"
			},
			wantErr: `invalid direction "Q"`,
		},
		{
			name: "door to unknown room",
			mutate: func(w *World) {
				w.Rooms["room2"].Usable.RevealsExit.ToRoom = "nope"
			},
			wantErr: `points to unknown room "nope"`,
		},
		{
			name: "door without reveals_exit",
			mutate: func(w *World) {
				w.Rooms["room2"].Usable.RevealsExit = nil
			},
			wantErr: `has no reveals_exit`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validTestWorld()
			tt.mutate(w)

			err := Validate(w, testCatalog())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	w := validTestWorld()
	w.StartRoom = "nope"
	w.Rooms["room1"].FloorItem = "missing_item"

	err := Validate(w, testCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `start_room "nope" does not exist`)
	assert.Contains(t, err.Error(), `unknown floor_item "missing_item"`)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	w := validTestWorld()
	w.StartRoom = "nope"

	_ = Validate(w, testCatalog())
	assert.Equal(t, "nope", w.StartRoom)
	assert.Len(t, w.Rooms, 3)
}
