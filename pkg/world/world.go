package world

import "encoding/json"

// Fixture type tags. The set is closed from the engine's point of view:
// every tag here has a handler, and the validator rejects worlds that
// reference a type the catalog does not know.
const (
	TypeChest  = "Chest"
	TypeButton = "Button"
	TypeDoor   = "Door"
)

// Fairness option names. Options are boolean toggles that change engine
// leniency or verbosity without changing puzzle logic.
const (
	FairMovementFailureRepeatsRoom  = "movement_failure_repeats_room"
	FairAutoDescribeItemsOnAcquire  = "auto_describe_items_on_acquire"
	FairRevealRequiredItemName      = "reveal_required_item_name"
	FairAcceptCaseInsensitiveSubmit = "accept_case_insensitive_submit"
)

// ValidDirections are the only legal exit directions.
var ValidDirections = map[string]bool{
	"N": true,
	"E": true,
	"S": true,
	"W": true,
}

// Item is a world-defined object a player can hold. Items are never
// created or destroyed at runtime.
type Item struct {
	ID               string `json:"-"` // Also the key in World.Items.
	Name             string `json:"name,omitempty"`
	Description      string `json:"description,omitempty"`
	InitiallyVisible bool   `json:"initially_visible"`
}

// UnmarshalJSON defaults initially_visible to true when the field is
// absent from the world document.
func (i *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	tmp := alias{InitiallyVisible: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*i = Item(tmp)
	return nil
}

// UnlockEffect describes what happens when a Chest is opened.
type UnlockEffect struct {
	Message   string `json:"message,omitempty"`
	GrantItem string `json:"grant_item,omitempty"`
}

// ExitReveal describes the exit a Door adds to its room when unlocked.
type ExitReveal struct {
	Direction string `json:"direction"`
	ToRoom    string `json:"to_room"`
}

// Usable is an interactable fixture attached to a room. The definition is
// immutable; the current locked/used status of a fixture lives in the
// session state, keyed by the fixture ID.
type Usable struct {
	ID              string        `json:"id"`
	Type            string        `json:"type"`
	Name            string        `json:"name,omitempty"`
	Locked          bool          `json:"locked,omitempty"`
	RequiresItem    string        `json:"requires_item,omitempty"`
	Message         string        `json:"message,omitempty"`          // Button press message
	MessageLocked   string        `json:"message_locked,omitempty"`   // Chest/Door
	MessageUnlocked string        `json:"message_unlocked,omitempty"` // Door
	OnUnlock        *UnlockEffect `json:"on_unlock,omitempty"`        // Chest
	RevealsItem     string        `json:"reveals_item,omitempty"`     // Button
	RevealsExit     *ExitReveal   `json:"reveals_exit,omitempty"`     // Door
}

// Room is a location in the world.
type Room struct {
	ID          string            `json:"-"` // Also the key in World.Rooms.
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Exits       map[string]string `json:"exits,omitempty"` // Direction → room ID
	FloorItem   string            `json:"floor_item,omitempty"`
	Usable      *Usable           `json:"usable,omitempty"`
}

// World is the immutable description of a playable labyrinth. It is loaded
// once, validated once, and shared read-only across all sessions.
type World struct {
	WorldID   string           `json:"world_id"`
	StartRoom string           `json:"start_room"`
	Fairness  map[string]bool  `json:"fairness,omitempty"`
	Items     map[string]*Item `json:"items"`
	Rooms     map[string]*Room `json:"rooms"`
	Win       map[string]any   `json:"win,omitempty"` // Free-form; not read by the engine.
}

// Fair reports whether the named fairness option is enabled.
func (w *World) Fair(option string) bool {
	return w.Fairness[option]
}

// TypeCatalog maps fixture type names to their (opaque) definitions. Only
// the key set matters to validation.
type TypeCatalog map[string]json.RawMessage
