// Package engine is the command interpreter for the breadcrumb labyrinth.
// It processes one text command at a time against a read-only world and a
// per-agent session, and reports whether the session changed and whether a
// SUBMIT succeeded.
package engine

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jwebster45206/breadcrumb/pkg/state"
	"github.com/jwebster45206/breadcrumb/pkg/world"
)

// PaperItemID is the designated item whose description carries the secret
// token a player must SUBMIT.
const PaperItemID = "paper_guid"

// guidRE matches the canonical 8-4-4-4-12 UUID shape.
var guidRE = regexp.MustCompile(`[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}`)

// Engine drives sessions through a single validated world. It holds no
// mutable state of its own and is safe to share across sessions.
type Engine struct {
	world *world.World
}

// Result is the outcome of handling one command.
type Result struct {
	Output  string
	State   *state.Session
	Changed bool // State was mutated and should be persisted.
	Passed  bool // A SUBMIT matched the secret token.
}

// New builds an engine over a world, validating it against the catalog
// first. An invalid world never yields an engine.
func New(w *world.World, catalog world.TypeCatalog) (*Engine, error) {
	if err := world.Validate(w, catalog); err != nil {
		return nil, err
	}
	return &Engine{world: w}, nil
}

// NewFromDir loads usable_types.json and world.json from dir.
func NewFromDir(dir string) (*Engine, error) {
	catalog, err := world.LoadTypeCatalog(filepath.Join(dir, "usable_types.json"))
	if err != nil {
		return nil, err
	}
	w, err := world.LoadWorld(filepath.Join(dir, "world.json"), catalog)
	if err != nil {
		return nil, err
	}
	return &Engine{world: w}, nil
}

// World returns the engine's world.
func (e *Engine) World() *world.World {
	return e.world
}

// InitialState builds a fresh session at the world's start room: empty
// inventory, world-default item visibility, world-default fixture locks.
func (e *Engine) InitialState() *state.Session {
	sess := state.New()
	sess.Started = true
	sess.CurrentRoom = e.world.StartRoom

	for itemID, item := range e.world.Items {
		sess.ItemVisibility[itemID] = item.InitiallyVisible
	}
	for _, room := range e.world.Rooms {
		if room.Usable != nil {
			sess.UsableState[room.Usable.ID] = state.UsableStatus{Locked: room.Usable.Locked}
		}
	}
	return sess
}

// Handle processes a single command. The first whitespace-delimited token
// selects the verb (case-insensitive); the rest is the argument. Commands
// that fail preconditions return a message and leave the session untouched.
func (e *Engine) Handle(sess *state.Session, command string) Result {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Result{Output: "ERROR: Empty command.", State: sess}
	}

	verb := strings.ToUpper(fields[0])
	arg := strings.Join(fields[1:], " ")

	if verb == "ENTER" {
		fresh := e.InitialState()
		return Result{Output: RenderRoom(e.world, fresh), State: fresh, Changed: true}
	}

	if sess == nil || !sess.Started {
		return Result{Output: "ERROR: You must Enter first.", State: sess}
	}

	switch verb {
	case "N", "E", "S", "W":
		return e.move(sess, verb)
	case "LOOK":
		return Result{Output: RenderRoom(e.world, sess), State: sess}
	case "INVENTORY":
		return Result{Output: e.describeInventory(sess), State: sess}
	case "GET":
		return e.get(sess)
	case "USE":
		return e.use(sess, arg)
	case "SUBMIT":
		return e.submit(sess, arg)
	}

	return Result{Output: "ERROR: Unknown command.", State: sess}
}

func (e *Engine) move(sess *state.Session, direction string) Result {
	room := e.world.Rooms[sess.CurrentRoom]

	target := room.Exits[direction]
	if target == "" {
		target = sess.DynamicExit(room.ID, direction)
	}

	if target == "" {
		msg := "You cannot go that way."
		if e.world.Fair(world.FairMovementFailureRepeatsRoom) {
			msg += "\n\n" + RenderRoom(e.world, sess)
		}
		return Result{Output: msg, State: sess}
	}

	sess.CurrentRoom = target
	sess.StepCount++
	return Result{Output: RenderRoom(e.world, sess), State: sess, Changed: true}
}

func (e *Engine) describeInventory(sess *state.Session) string {
	if len(sess.Inventory) == 0 {
		return "Inventory: (empty)"
	}
	names := make([]string, 0, len(sess.Inventory))
	for _, itemID := range sess.Inventory {
		names = append(names, e.world.Items[itemID].Name)
	}
	return "Inventory: " + strings.Join(names, ", ")
}

func (e *Engine) get(sess *state.Session) Result {
	room := e.world.Rooms[sess.CurrentRoom]
	if room.FloorItem == "" {
		return Result{Output: "Nothing to get here.", State: sess}
	}
	if !sess.ItemVisible(room.FloorItem) {
		return Result{Output: "Nothing to get here.", State: sess}
	}
	if sess.RoomItemTaken[room.ID] {
		return Result{Output: "Nothing to get here.", State: sess}
	}

	sess.Inventory = append(sess.Inventory, room.FloorItem)
	sess.RoomItemTaken[room.ID] = true
	sess.StepCount++

	item := e.world.Items[room.FloorItem]
	msg := "You pick up " + item.Name + "."
	if e.world.Fair(world.FairAutoDescribeItemsOnAcquire) {
		msg = item.Description
	}
	return Result{Output: msg + "\n\n" + RenderRoom(e.world, sess), State: sess, Changed: true}
}

// resolveItem matches an item argument against the inventory by ID or
// display name. Matching is case-insensitive via Unicode case folding.
func (e *Engine) resolveItem(sess *state.Session, arg string) string {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(arg))

	for _, itemID := range sess.Inventory {
		if fold.String(itemID) == want {
			return itemID
		}
		if item, ok := e.world.Items[itemID]; ok && fold.String(item.Name) == want {
			return itemID
		}
	}
	return ""
}

// submit compares the token against the secret extracted from the paper
// item. It always counts as a step and always reports a change, whether or
// not the token matched.
func (e *Engine) submit(sess *state.Session, token string) Result {
	sess.StepCount++

	secret := e.secretToken()
	if secret == "" {
		return Result{Output: "FAIL: GUID not found in world.", State: sess, Changed: true}
	}

	if !sess.Holds(PaperItemID) {
		return Result{Output: "FAIL: You do not possess the paper.", State: sess, Changed: true}
	}

	token = strings.TrimSpace(token)
	ok := token == secret
	if e.world.Fair(world.FairAcceptCaseInsensitiveSubmit) {
		ok = strings.EqualFold(token, secret)
	}

	if ok {
		return Result{Output: "PASS: Correct GUID submitted.", State: sess, Changed: true, Passed: true}
	}
	return Result{Output: "FAIL: Incorrect GUID.", State: sess, Changed: true}
}

// secretToken extracts the first UUID-shaped substring from the paper
// item's description. The match is re-parsed so only a canonical UUID
// counts as the secret.
func (e *Engine) secretToken() string {
	paper, ok := e.world.Items[PaperItemID]
	if !ok {
		return ""
	}
	match := guidRE.FindString(paper.Description)
	if match == "" {
		return ""
	}
	if _, err := uuid.Parse(match); err != nil {
		return ""
	}
	return match
}
